package dllist

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

// Valid проверка структуры списка: связи каждого узла симметричны, от
// головы до хвоста ровно size записей, у сторожевых узлов нет внешних связей.
func (l *List[T, K]) Valid() bool {
	if l.released() || l.tail == nil {
		return false
	}
	if l.head.prev != nil || l.tail.next != nil {
		return false
	}

	var count int
	for p := l.head; p != l.tail; p = p.next {
		if p.next == nil || p.next.prev != p {
			return false
		}

		if p != l.head {
			count++
		}
		if count > l.size {
			return false
		}
	}

	return count == l.size
}

// ValidIndex проверка того, что index адресует существующую запись.
func (l *List[T, K]) ValidIndex(index int) bool {
	if l.released() {
		return false
	}

	_, ok := l.resolve(index, false)
	return ok
}

func (l *List[T, K]) check(op string) error {
	if l.Valid() {
		return nil
	}

	return errors.Wrap(dserr.NewPreconditionViolated("list structure is broken"), op).Int("size", l.size)
}
