package dllist

import "github.com/sirkon/dsa/logging"

// Option опция конструктора списка.
type Option[T any] func(o *options[T], _ optRestriction)

type optRestriction struct{}

type options[T any] struct {
	free   func(T)
	logger logging.Logger
}

// WithFree задаёт деструктор записей. С ним список владеет записями и
// уничтожает их при удалении, замене с флагом freeOld и освобождении списка.
// Без него записями владеет пользователь.
func WithFree[T any](free func(T)) Option[T] {
	return func(o *options[T], _ optRestriction) {
		o.free = free
	}
}

// WithLogger задаёт логгер событий списка.
func WithLogger[T any](logger logging.Logger) Option[T] {
	return func(o *options[T], _ optRestriction) {
		o.logger = logger
	}
}
