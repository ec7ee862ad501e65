package logging

//go:generate mockgen -destination=../internal/mocks/logger.go -package=mocks github.com/sirkon/dsa/logging Logger

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// BufferResized вызывается при каждом перевыделении буфера массива.
	BufferResized(from, to int)

	// ListEntryDeleted вызывается при удалении записи списка во время обхода,
	// pos – позиция записи на момент удаления, считая от начала обхода.
	ListEntryDeleted(pos int)
}

// Nop логгер ничего не делающий.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) BufferResized(from, to int) {}

func (nopLogger) ListEntryDeleted(pos int) {}
