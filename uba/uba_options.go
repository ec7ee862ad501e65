package uba

import "github.com/sirkon/dsa/logging"

// Option опция конструкторов массивов.
type Option[T any] func(o *options[T], _ optRestriction)

type optRestriction struct{}

type options[T any] struct {
	free   func(T)
	logger logging.Logger
}

// WithFree задаёт деструктор записей. С ним массив владеет записями и
// уничтожает их при удалении, перезаписи через UpdateAt и освобождении.
func WithFree[T any](free func(T)) Option[T] {
	return func(o *options[T], _ optRestriction) {
		o.free = free
	}
}

// WithLogger задаёт логгер событий перевыделения буфера.
func WithLogger[T any](logger logging.Logger) Option[T] {
	return func(o *options[T], _ optRestriction) {
		o.logger = logger
	}
}

func collectOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o, optRestriction{})
	}

	return o
}
