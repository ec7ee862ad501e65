package dllist

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

// Action решение процедуры обхода о дальнейших действиях.
type Action int

const (
	// Continue продолжить обход.
	Continue Action = iota

	// Stop немедленно прекратить обход.
	Stop

	// Delete удалить только что обработанную запись и продолжить обход.
	Delete
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Proc процедура обхода вызываемая для каждой записи с контекстом ctx.
type Proc[T, C any] func(entry T, ctx C) Action

// Traverse обход списка от начала с вызовом proc для каждой записи.
func Traverse[T, K, C any](l *List[T, K], proc Proc[T, C], ctx C) error {
	if proc == nil {
		return errors.Wrap(dserr.NewInvalidArgument("procedure is required"), "traverse")
	}

	return l.walk("traverse", func(entry T) Action {
		return proc(entry, ctx)
	}, false)
}

// TraverseRev обход списка от конца с вызовом proc для каждой записи.
func TraverseRev[T, K, C any](l *List[T, K], proc Proc[T, C], ctx C) error {
	if proc == nil {
		return errors.Wrap(dserr.NewInvalidArgument("procedure is required"), "traverse rev")
	}

	return l.walk("traverse rev", func(entry T) Action {
		return proc(entry, ctx)
	}, true)
}

// Walk обход списка от начала. Процедура не должна менять список
// иначе чем через возвращаемое действие.
func (l *List[T, K]) Walk(proc func(entry T) Action) error {
	if proc == nil {
		return errors.Wrap(dserr.NewInvalidArgument("procedure is required"), "walk")
	}

	return l.walk("walk", proc, false)
}

// WalkRev обход списка от конца.
func (l *List[T, K]) WalkRev(proc func(entry T) Action) error {
	if proc == nil {
		return errors.Wrap(dserr.NewInvalidArgument("procedure is required"), "walk rev")
	}

	return l.walk("walk rev", proc, true)
}

func (l *List[T, K]) walk(op string, proc func(entry T) Action, rev bool) error {
	if l.released() {
		return errReleased(op)
	}

	first, end := l.head.next, l.tail
	if rev {
		first, end = l.tail.prev, l.head
	}

	var pos int
	for n := first; n != end; {
		// Следующий узел нужно запомнить до вызова: при удалении связи n обнуляются.
		next := n.next
		if rev {
			next = n.prev
		}

		switch act := proc(n.entry); act {
		case Continue:
			pos++
		case Stop:
			return l.check(op)
		case Delete:
			l.unlink(n)
			l.log.ListEntryDeleted(pos)
		default:
			return errors.Wrap(dserr.NewInvalidArgument("unknown traversal action"), op).
				Int("action", int(act)).
				Int("position", pos)
		}

		n = next
	}

	return l.check(op)
}
