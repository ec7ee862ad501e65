package dllist

// resolve перевод индекса, возможно отрицательного, в позицию от начала.
// withEnd разрешает позицию size, т.е. место после последней записи.
func (l *List[T, K]) resolve(index int, withEnd bool) (int, bool) {
	if index < 0 {
		if -index > l.size {
			return 0, false
		}

		return l.size + index, true
	}

	if index < l.size || (withEnd && index == l.size) {
		return index, true
	}

	return 0, false
}

// nodeAt узел в позиции pos ∈ [0, size], позиции size соответствует
// хвостовой сторожевой узел. Проход идёт от ближайшего конца.
func (l *List[T, K]) nodeAt(pos int) *node[T] {
	if pos < l.size/2 {
		n := l.head.next
		for i := 0; i < pos; i++ {
			n = n.next
		}
		return n
	}

	n := l.tail
	for i := l.size; i > pos; i-- {
		n = n.prev
	}
	return n
}

// find поиск первого узла с данным ключом от начала или от конца списка.
func (l *List[T, K]) find(key K, rev bool) *node[T] {
	if rev {
		for n := l.tail.prev; n != l.head; n = n.prev {
			if l.cmp(l.key(n.entry), key) == 0 {
				return n
			}
		}
		return nil
	}

	for n := l.head.next; n != l.tail; n = n.next {
		if l.cmp(l.key(n.entry), key) == 0 {
			return n
		}
	}
	return nil
}

// link вставка новой записи перед узлом before.
func (l *List[T, K]) link(entry T, before *node[T]) {
	n := &node[T]{
		prev:  before.prev,
		next:  before,
		entry: entry,
	}
	before.prev.next = n
	before.prev = n
	l.size++
}

// unlink исключение узла из списка с уничтожением записи при наличии деструктора.
func (l *List[T, K]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.size--

	if l.free != nil {
		l.free(n.entry)
	}
	n.cleanup()
}
