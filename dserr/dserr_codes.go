package dserr

import "errors"

// AsCode получить код соответствующий ошибке.
func AsCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}

	var target Error
	if !errors.As(err, &target) {
		return CodeInternal
	}

	return target.Code
}

// IsPreconditionViolated проверка на ошибку нарушения предусловия.
func IsPreconditionViolated(err error) bool {
	return AsCode(err) == CodePreconditionViolated
}

// IsIndexOutOfRange проверка на ошибку выхода за границы.
func IsIndexOutOfRange(err error) bool {
	return AsCode(err) == CodeIndexOutOfRange
}

// IsNotFound проверка на ошибку отсутствия записи.
func IsNotFound(err error) bool {
	return AsCode(err) == CodeNotFound
}

// IsInvalidArgument проверка на ошибку недопустимого аргумента.
func IsInvalidArgument(err error) bool {
	return AsCode(err) == CodeInvalidArgument
}

// ErrorCode коды ошибок контейнеров.
type ErrorCode int32

const (
	// CodeUnknown неиспользуемый код ошибки.
	CodeUnknown ErrorCode = 0

	// CodeOK всё нормально
	CodeOK ErrorCode = 200

	// CodeInternal ошибка не порождённая контейнером.
	CodeInternal ErrorCode = 1000

	// CodePreconditionViolated операция недопустима в текущем состоянии
	// контейнера: удаление из пустого списка, работа после Free и т.п.
	CodePreconditionViolated ErrorCode = 2000

	// CodeIndexOutOfRange позиционный аргумент вне допустимого диапазона.
	CodeIndexOutOfRange ErrorCode = 2001

	// CodeNotFound запись по ключу не найдена.
	CodeNotFound ErrorCode = 2002

	// CodeInvalidArgument недопустимые параметры пришедшие от пользователя.
	CodeInvalidArgument ErrorCode = 4000
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInternal:
		return "INTERNAL_ERROR"
	case CodeOK:
		return "OK"
	case CodePreconditionViolated:
		return "PRECONDITION_VIOLATED"
	case CodeIndexOutOfRange:
		return "INDEX_OUT_OF_RANGE"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN_ERROR"
	}
}
