package dllist

// node узел списка. У сторожевых узлов entry не задаётся.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	entry T
}

func (n *node[T]) cleanup() {
	var zero T
	n.prev = nil
	n.next = nil // для упрощения работы GC
	n.entry = zero
}
