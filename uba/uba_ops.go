package uba

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

// Push добавление записи в конец.
func (a *Array[T]) Push(v T) error {
	if a.buf.Released() {
		return errReleased("push")
	}

	if err := a.grow(); err != nil {
		return errors.Wrap(err, "push")
	}

	a.buf.Set(a.size, v)
	a.size++
	return nil
}

// Pop удаление последней записи.
func (a *Array[T]) Pop() error {
	if a.buf.Released() {
		return errReleased("pop")
	}

	if a.size == 0 {
		return errors.Wrap(dserr.NewPreconditionViolated("array is empty"), "pop")
	}

	a.size--
	a.buf.Clear(a.size)
	return nil
}

// InsertAt вставка записи в позицию index ∈ [0, size] со сдвигом
// последующих записей вправо.
func (a *Array[T]) InsertAt(index int, v T) error {
	if a.buf.Released() {
		return errReleased("insert at")
	}

	if index < 0 || index > a.size {
		return errIndex("insert at", index, a.size)
	}

	if err := a.grow(); err != nil {
		return errors.Wrap(err, "insert at").Int("index", index)
	}

	// Идём от нового конца к index, иначе значения затрут друг друга.
	for i := a.size; i > index; i-- {
		a.buf.Move(i, i-1)
	}
	a.buf.Set(index, v)
	a.size++

	return nil
}

// RemoveAt удаление записи в позиции index ∈ [0, size) со сдвигом
// последующих записей влево.
func (a *Array[T]) RemoveAt(index int) error {
	if a.buf.Released() {
		return errReleased("remove at")
	}

	if index < 0 || index >= a.size {
		return errIndex("remove at", index, a.size)
	}

	a.buf.Clear(index)
	for i := index; i < a.size-1; i++ {
		a.buf.Move(i, i+1)
	}
	a.size--
	a.buf.Forget(a.size)

	return nil
}

// UpdateAt замена записи в позиции index ∈ [0, size), прежняя запись
// уничтожается при наличии деструктора.
func (a *Array[T]) UpdateAt(index int, v T) error {
	if a.buf.Released() {
		return errReleased("update at")
	}

	if index < 0 || index >= a.size {
		return errIndex("update at", index, a.size)
	}

	a.buf.Clear(index)
	a.buf.Set(index, v)
	return nil
}

// Get запись в позиции index ∈ [0, size).
func (a *Array[T]) Get(index int) (T, error) {
	if a.buf.Released() {
		var zero T
		return zero, errReleased("get")
	}

	if index < 0 || index >= a.size {
		var zero T
		return zero, errIndex("get", index, a.size)
	}

	return a.buf.Get(index), nil
}

// Set прямая запись в слот index ∈ [0, size]. Размер не меняется,
// прежнее значение не уничтожается.
func (a *Array[T]) Set(index int, v T) error {
	if a.buf.Released() {
		return errReleased("set")
	}

	if index < 0 || index > a.size {
		return errIndex("set", index, a.size)
	}

	a.buf.Set(index, v)
	return nil
}

// Del уничтожение и обнуление слота index ∈ [0, size] без сдвига и
// без изменения размера.
func (a *Array[T]) Del(index int) error {
	if a.buf.Released() {
		return errReleased("del")
	}

	if index < 0 || index > a.size {
		return errIndex("del", index, a.size)
	}

	a.buf.Clear(index)
	return nil
}

// Shrink уменьшение ёмкости до size+1.
func (a *Array[T]) Shrink() error {
	if err := a.Resize(a.size + 1); err != nil {
		return errors.Wrap(err, "shrink")
	}

	return nil
}

// Resize установка ёмкости newLimit. Допустимо только при
// size < newLimit ≤ MaxLimit.
func (a *Array[T]) Resize(newLimit int) error {
	if a.buf.Released() {
		return errReleased("resize")
	}

	if newLimit <= a.size || newLimit > MaxLimit {
		return errors.Wrap(dserr.NewPreconditionViolated("limit out of bounds"), "resize").
			Int("invalid-limit", newLimit).
			Int("size", a.size).
			Int("max-limit", MaxLimit)
	}

	a.buf.Realloc(newLimit, a.size)
	return nil
}

// grow удвоение ёмкости если после добавления ещё одной записи не останется
// свободного слота.
func (a *Array[T]) grow() error {
	limit := a.buf.Limit()
	if a.size+1 < limit {
		return nil
	}

	if err := a.Resize(limit * 2); err != nil {
		return errors.Wrap(err, "grow")
	}

	return nil
}
