// Package uba неограниченный массив: непрерывный буфер слотов с
// амортизированным O(1) добавлением в конец и удвоением ёмкости.
//
// Array ведёт логический размер и проверяет позиции относительно него.
// Raw предоставляет все слоты буфера напрямую без понятия размера.
// WARNING: Не предоставляют гарантий безопасности при многопоточном доступе.
package uba

import (
	"github.com/sirkon/dsa/internal/slots"
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"
)

// MaxLimit максимально допустимая ёмкость массива.
const MaxLimit = slots.MaxLimit

// New конструктор массива с начальной ёмкостью limit, нулевая и отрицательная
// ёмкости приводятся к 1. Ёмкость больше MaxLimit недопустима.
func New[T any](limit int, opts ...Option[T]) (*Array[T], error) {
	limit, err := initialLimit(limit)
	if err != nil {
		return nil, errors.Wrap(err, "new array")
	}

	o := collectOptions(opts)
	return &Array[T]{
		buf: slots.New(limit, o.free, o.logger),
	}, nil
}

// Array массив с логическим размером. Инвариант: 0 ≤ size < limit,
// слоты [0, size) содержат записи.
type Array[T any] struct {
	buf  slots.Buffer[T]
	size int
}

// Free освобождение массива с уничтожением записей [0, size) при наличии
// деструктора. Повторный вызов даёт ошибку.
func (a *Array[T]) Free() error {
	if a.buf.Released() {
		return errReleased("free")
	}

	a.buf.Release(a.size)
	a.size = 0
	return nil
}

// Size логический размер массива.
func (a *Array[T]) Size() int {
	return a.size
}

// Limit текущая ёмкость массива.
func (a *Array[T]) Limit() int {
	return a.buf.Limit()
}

// Raw всегда false для Array.
func (a *Array[T]) Raw() bool {
	return false
}

// Empty проверка на отсутствие записей.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// Data слоты буфера целиком, включая неиспользуемый хвост [size, limit).
// Срез действителен до ближайшего перевыделения.
func (a *Array[T]) Data() []T {
	return a.buf.Data()
}

// Values копия записей [0, size).
func (a *Array[T]) Values() []T {
	if a.buf.Released() {
		return nil
	}

	return slices.Clone(a.buf.Data()[:a.size])
}
