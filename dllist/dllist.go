// Package dllist двусвязный список со сторожевыми узлами в начале и конце,
// поиском по ключу, позиционным доступом с отрицательными индексами и
// обходом в обоих направлениях.
//
// Отрицательный индекс -k адресует k-ю запись с конца: -1 – последняя.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
package dllist

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/dsa/logging"
	"github.com/sirkon/errors"
	"golang.org/x/exp/constraints"
)

// New конструктор пустого списка. cmp сравнивает ключи и возвращает
// отрицательное число, ноль или положительное число для меньше, равно и
// больше соответственно. key извлекает ключ записи и не должен её менять.
func New[T, K any](cmp func(a, b K) int, key func(entry T) K, opts ...Option[T]) (*List[T, K], error) {
	if cmp == nil {
		return nil, errors.Wrap(dserr.NewInvalidArgument("key comparator is required"), "new list")
	}
	if key == nil {
		return nil, errors.Wrap(dserr.NewInvalidArgument("key extractor is required"), "new list")
	}

	var o options[T]
	for _, opt := range opts {
		opt(&o, optRestriction{})
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}

	l := &List[T, K]{
		head: &node[T]{},
		tail: &node[T]{},
		cmp:  cmp,
		key:  key,
		free: o.free,
		log:  o.logger,
	}
	l.head.next = l.tail
	l.tail.prev = l.head

	return l, nil
}

// Compare сравнение упорядоченных ключей для использования в New.
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// List двусвязный список записей T с ключами K.
type List[T, K any] struct {
	head *node[T]
	tail *node[T]
	size int

	cmp  func(a, b K) int
	key  func(entry T) K
	free func(T)
	log  logging.Logger
}

// Free освобождение списка: уничтожение записей при наличии деструктора и
// разрыв всех связей. После этого любые операции над списком возвращают ошибку.
func (l *List[T, K]) Free() error {
	if l.released() {
		return errReleased("free")
	}

	n := l.head.next
	for n != l.tail {
		next := n.next
		if l.free != nil {
			l.free(n.entry)
		}
		n.cleanup()
		n = next
	}

	l.head.cleanup()
	l.tail.cleanup()
	l.head = nil
	l.tail = nil
	l.size = 0
	return nil
}

// Size число записей в списке.
func (l *List[T, K]) Size() int {
	return l.size
}

// Empty проверка на отсутствие записей.
func (l *List[T, K]) Empty() bool {
	return l.size == 0
}

func (l *List[T, K]) released() bool {
	return l.head == nil
}
