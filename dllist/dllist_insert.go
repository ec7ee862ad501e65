package dllist

// Insert вставка записи в начало списка.
func (l *List[T, K]) Insert(entry T) error {
	if l.released() {
		return errReleased("insert")
	}

	l.link(entry, l.head.next)
	return nil
}

// InsertTail вставка записи в конец списка.
func (l *List[T, K]) InsertTail(entry T) error {
	if l.released() {
		return errReleased("insert tail")
	}

	l.link(entry, l.tail)
	return nil
}

// InsertAt вставка записи перед записью с данным индексом, после вставки
// новая запись занимает этот индекс. Допустимы 0 ≤ index ≤ size и
// отрицательные индексы с -index ≤ size, где -1 – позиция последней записи.
func (l *List[T, K]) InsertAt(entry T, index int) error {
	if l.released() {
		return errReleased("insert at")
	}

	pos, ok := l.resolve(index, true)
	if !ok {
		return errIndex("insert at", index, l.size)
	}

	l.link(entry, l.nodeAt(pos))
	return nil
}
