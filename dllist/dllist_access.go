package dllist

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

// Get первая от начала списка запись с данным ключом.
func (l *List[T, K]) Get(key K) (T, error) {
	return l.getKey("get", key, false)
}

// GetRev первая от конца списка запись с данным ключом.
func (l *List[T, K]) GetRev(key K) (T, error) {
	return l.getKey("get rev", key, true)
}

// At запись с данным индексом. Допустимы 0 ≤ index < size и отрицательные
// индексы с -index ≤ size.
func (l *List[T, K]) At(index int) (res T, _ error) {
	if l.released() {
		return res, errReleased("at")
	}

	pos, ok := l.resolve(index, false)
	if !ok {
		return res, errIndex("at", index, l.size)
	}

	return l.nodeAt(pos).entry, nil
}

// Head первая запись списка.
func (l *List[T, K]) Head() (res T, _ error) {
	if l.released() {
		return res, errReleased("head")
	}
	if l.size == 0 {
		return res, errEmpty("head")
	}

	return l.head.next.entry, nil
}

// Tail последняя запись списка.
func (l *List[T, K]) Tail() (res T, _ error) {
	if l.released() {
		return res, errReleased("tail")
	}
	if l.size == 0 {
		return res, errEmpty("tail")
	}

	return l.tail.prev.entry, nil
}

// Update замена первой от начала записи с данным ключом на entry.
// При freeOld и наличии деструктора старая запись уничтожается и
// возвращается нулевое значение, иначе старая запись возвращается
// пользователю.
func (l *List[T, K]) Update(key K, entry T, freeOld bool) (old T, _ error) {
	if l.released() {
		return old, errReleased("update")
	}

	n := l.find(key, false)
	if n == nil {
		return old, errors.Wrap(dserr.NewNotFound(), "update").Any("key", key)
	}

	return l.replace(n, entry, freeOld), nil
}

// UpdateAt замена записи с данным индексом на entry. Индекс проверяется
// так же как в At, freeOld работает так же как в Update.
func (l *List[T, K]) UpdateAt(index int, entry T, freeOld bool) (old T, _ error) {
	if l.released() {
		return old, errReleased("update at")
	}
	if l.size == 0 {
		return old, errEmpty("update at")
	}

	pos, ok := l.resolve(index, false)
	if !ok {
		return old, errIndex("update at", index, l.size)
	}

	return l.replace(l.nodeAt(pos), entry, freeOld), nil
}

// Values записи списка от начала к концу.
func (l *List[T, K]) Values() []T {
	if l.released() {
		return nil
	}

	res := make([]T, 0, l.size)
	for n := l.head.next; n != l.tail; n = n.next {
		res = append(res, n.entry)
	}

	return res
}

func (l *List[T, K]) getKey(op string, key K, rev bool) (res T, _ error) {
	if l.released() {
		return res, errReleased(op)
	}

	n := l.find(key, rev)
	if n == nil {
		return res, errors.Wrap(dserr.NewNotFound(), op).Any("key", key)
	}

	return n.entry, nil
}

func (l *List[T, K]) replace(n *node[T], entry T, freeOld bool) (old T) {
	old = n.entry
	n.entry = entry

	if freeOld && l.free != nil {
		l.free(old)
		var zero T
		return zero
	}

	return old
}
