package dserr

import "strings"

// Error тип ошибки операции над контейнером.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}

	return e.Code.String() + ": " + e.Msg
}

// newCodedError части сообщения склеиваются через ": ".
func newCodedError(code ErrorCode, parts ...string) Error {
	return Error{
		Code: code,
		Msg:  strings.Join(parts, ": "),
	}
}

// NewPreconditionViolated операция вызвана в недопустимом состоянии контейнера.
func NewPreconditionViolated(msg ...string) Error {
	return newCodedError(CodePreconditionViolated, msg...)
}

// NewIndexOutOfRange позиция вне допустимого для операции диапазона.
func NewIndexOutOfRange(msg ...string) Error {
	return newCodedError(CodeIndexOutOfRange, msg...)
}

// NewNotFound запись с данным ключом не найдена.
func NewNotFound(msg ...string) Error {
	return newCodedError(CodeNotFound, msg...)
}

// NewInvalidArgument недопустимый аргумент.
func NewInvalidArgument(msg ...string) Error {
	return newCodedError(CodeInvalidArgument, msg...)
}
