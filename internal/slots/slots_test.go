package slots

import (
	"testing"

	"github.com/sirkon/deepequal"
)

func TestBufferWithoutDestructor(t *testing.T) {
	b := New[string](2, nil, nil)
	if b.Owns() {
		t.Fatal("buffer without destructor must not own entries")
	}

	b.Set(0, "a")
	b.Clear(0)
	b.Set(1, "b")
	b.Release(2)
	if !b.Released() {
		t.Error("buffer must be released")
	}
}

func TestBuffer(t *testing.T) {
	var freed []int
	b := New[int](4, func(v int) {
		freed = append(freed, v)
	}, nil)
	if !b.Owns() {
		t.Fatal("buffer with destructor must own entries")
	}

	b.Set(0, 10)
	b.Set(1, 0)
	b.Set(2, 30)

	t.Run("clear unused slot", func(t *testing.T) {
		b.Clear(3)
		if len(freed) != 0 {
			t.Errorf("no destruction expected for unused slot, got %v", freed)
		}
	})

	t.Run("clear zero value in used slot", func(t *testing.T) {
		b.Clear(1)
		if !deepequal.Equal([]int{0}, freed) {
			t.Errorf("zero value must be destroyed as well, got %v", freed)
		}
	})

	t.Run("move keeps occupancy", func(t *testing.T) {
		b.Move(1, 2)
		b.Forget(2)
		if !b.used[1] || b.used[2] {
			t.Error("occupancy must follow moved value")
		}
	})

	t.Run("realloc", func(t *testing.T) {
		b.Realloc(8, 2)
		if b.Limit() != 8 {
			t.Errorf("unexpected limit %d", b.Limit())
		}
		deepequal.SideBySide(t, "data", []int{10, 30, 0, 0, 0, 0, 0, 0}, b.Data())
	})

	t.Run("release", func(t *testing.T) {
		b.Release(b.Limit())
		if !b.Released() {
			t.Error("buffer must be released")
		}
		if !deepequal.Equal([]int{0, 10, 30}, freed) {
			t.Error("unexpected destruction sequence")
			deepequal.SideBySide(t, "freed", []int{0, 10, 30}, freed)
		}
	})
}
