// Package slots буфер слотов с учётом занятости, общий для вариантов
// неограниченного массива.
package slots

import (
	"math"

	"github.com/sirkon/dsa/logging"
)

// MaxLimit максимально допустимое число слотов буфера. Половина от
// максимального int, чтобы удвоение ёмкости не переполнялось.
const MaxLimit = math.MaxInt / 2

// New конструктор буфера на limit слотов.
func New[T any](limit int, free func(T), logger logging.Logger) Buffer[T] {
	if logger == nil {
		logger = logging.Nop()
	}

	return Buffer[T]{
		vals: make([]T, limit),
		used: make([]bool, limit),
		free: free,
		log:  logger,
	}
}

// Buffer непрерывный буфер слотов. Деструктор вызывается только для слотов
// в которые была произведена запись и которые с тех пор не очищались.
type Buffer[T any] struct {
	vals []T
	used []bool
	free func(T)
	log  logging.Logger
}

// Released проверка того, что буфер был освобождён.
func (b *Buffer[T]) Released() bool {
	return b.vals == nil
}

// Limit число слотов.
func (b *Buffer[T]) Limit() int {
	return len(b.vals)
}

// Data слоты буфера как есть.
func (b *Buffer[T]) Data() []T {
	return b.vals
}

// Owns проверка того, что буфер владеет записями.
func (b *Buffer[T]) Owns() bool {
	return b.free != nil
}

// Get значение слота.
func (b *Buffer[T]) Get(i int) T {
	return b.vals[i]
}

// Set запись в слот без уничтожения прежнего значения.
func (b *Buffer[T]) Set(i int, v T) {
	b.vals[i] = v
	b.used[i] = true
}

// Clear уничтожение значения слота деструктором, если он задан и слот занят,
// с последующим обнулением слота.
func (b *Buffer[T]) Clear(i int) {
	if b.used[i] && b.Owns() {
		b.free(b.vals[i])
	}
	b.Forget(i)
}

// Forget обнуление слота без вызова деструктора.
func (b *Buffer[T]) Forget(i int) {
	var zero T
	b.vals[i] = zero
	b.used[i] = false
}

// Move перенос слота src в dst. Значение в dst затирается без вызова деструктора.
func (b *Buffer[T]) Move(dst, src int) {
	b.vals[dst] = b.vals[src]
	b.used[dst] = b.used[src]
}

// Realloc перевыделение буфера на limit слотов с копированием первых keep слотов.
func (b *Buffer[T]) Realloc(limit, keep int) {
	vals := make([]T, limit)
	used := make([]bool, limit)
	copy(vals, b.vals[:keep])
	copy(used, b.used[:keep])

	from := len(b.vals)
	b.vals = vals
	b.used = used
	b.log.BufferResized(from, limit)
}

// Release уничтожение занятых слотов из [0, n) и освобождение буфера.
func (b *Buffer[T]) Release(n int) {
	if b.Owns() {
		for i := 0; i < n; i++ {
			if b.used[i] {
				b.free(b.vals[i])
			}
		}
	}

	b.vals = nil
	b.used = nil
}
