package uba

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/dsa/internal/slots"
	"github.com/sirkon/errors"
)

// NewRaw конструктор массива без логического размера на limit слотов,
// нулевая и отрицательная ёмкости приводятся к 1. Ёмкость больше MaxLimit
// недопустима.
func NewRaw[T any](limit int, opts ...Option[T]) (*Raw[T], error) {
	limit, err := initialLimit(limit)
	if err != nil {
		return nil, errors.Wrap(err, "new raw array")
	}

	o := collectOptions(opts)
	return &Raw[T]{
		buf: slots.New(limit, o.free, o.logger),
	}, nil
}

// Raw массив фиксированных слотов. Все limit слотов адресуемы напрямую,
// занятостью управляет пользователь. Деструктор, если задан, применяется
// только в Del и к слотам отрезаемым в Resize.
type Raw[T any] struct {
	buf slots.Buffer[T]
}

// Free освобождение буфера. Записи не уничтожаются.
func (r *Raw[T]) Free() error {
	if r.buf.Released() {
		return errReleased("free raw")
	}

	r.buf.Release(0)
	return nil
}

// Limit число слотов.
func (r *Raw[T]) Limit() int {
	return r.buf.Limit()
}

// Raw всегда true для Raw.
func (r *Raw[T]) Raw() bool {
	return true
}

// Data слоты буфера. Срез действителен до ближайшего Resize.
func (r *Raw[T]) Data() []T {
	return r.buf.Data()
}

// Get значение слота index ∈ [0, limit).
func (r *Raw[T]) Get(index int) (T, error) {
	if err := r.check("get raw", index); err != nil {
		var zero T
		return zero, err
	}

	return r.buf.Get(index), nil
}

// Set запись в слот index ∈ [0, limit) без уничтожения прежнего значения.
func (r *Raw[T]) Set(index int, v T) error {
	if err := r.check("set raw", index); err != nil {
		return err
	}

	r.buf.Set(index, v)
	return nil
}

// Del уничтожение и обнуление слота index ∈ [0, limit).
func (r *Raw[T]) Del(index int) error {
	if err := r.check("del raw", index); err != nil {
		return err
	}

	r.buf.Clear(index)
	return nil
}

// Resize установка числа слотов 0 < newLimit ≤ MaxLimit. Слоты за новой
// границей уничтожаются.
func (r *Raw[T]) Resize(newLimit int) error {
	if r.buf.Released() {
		return errReleased("resize raw")
	}

	if newLimit <= 0 || newLimit > MaxLimit {
		return errors.Wrap(dserr.NewPreconditionViolated("limit out of bounds"), "resize raw").
			Int("invalid-limit", newLimit).
			Int("max-limit", MaxLimit)
	}

	keep := r.buf.Limit()
	for i := newLimit; i < keep; i++ {
		r.buf.Clear(i)
	}
	if newLimit < keep {
		keep = newLimit
	}

	r.buf.Realloc(newLimit, keep)
	return nil
}

func (r *Raw[T]) check(op string, index int) error {
	if r.buf.Released() {
		return errReleased(op)
	}

	if index < 0 || index >= r.buf.Limit() {
		return errIndex(op, index, r.buf.Limit())
	}

	return nil
}
