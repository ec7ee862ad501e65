package dllist

// Delete удаление первой от начала списка записи с данным ключом.
// Возвращает false если такой записи нет.
func (l *List[T, K]) Delete(key K) (bool, error) {
	return l.deleteKey("delete", key, false)
}

// DeleteRev удаление первой от конца списка записи с данным ключом.
// Возвращает false если такой записи нет.
func (l *List[T, K]) DeleteRev(key K) (bool, error) {
	return l.deleteKey("delete rev", key, true)
}

// DeleteHead удаление первой записи.
func (l *List[T, K]) DeleteHead() error {
	if l.released() {
		return errReleased("delete head")
	}
	if l.size == 0 {
		return errEmpty("delete head")
	}

	l.unlink(l.head.next)
	return nil
}

// DeleteTail удаление последней записи.
func (l *List[T, K]) DeleteTail() error {
	if l.released() {
		return errReleased("delete tail")
	}
	if l.size == 0 {
		return errEmpty("delete tail")
	}

	l.unlink(l.tail.prev)
	return nil
}

// DeleteAt удаление записи с данным индексом. Допустимы 0 ≤ index < size и
// отрицательные индексы с -index ≤ size.
func (l *List[T, K]) DeleteAt(index int) error {
	if l.released() {
		return errReleased("delete at")
	}
	if l.size == 0 {
		return errEmpty("delete at")
	}

	pos, ok := l.resolve(index, false)
	if !ok {
		return errIndex("delete at", index, l.size)
	}

	l.unlink(l.nodeAt(pos))
	return nil
}

func (l *List[T, K]) deleteKey(op string, key K, rev bool) (bool, error) {
	if l.released() {
		return false, errReleased(op)
	}

	n := l.find(key, rev)
	if n == nil {
		return false, nil
	}

	l.unlink(n)
	return true, nil
}
