// Package testlog вывод ошибок контейнеров в тестах: код ошибки, текст и
// структурированный контекст одной строкой.
package testlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

// T часть *testing.T нужная для вывода.
type T interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log вывод ошибки в лог теста.
func Log(t T, err error) {
	t.Helper()
	t.Log(Format(err))
}

// Error вывод ошибки с пометкой теста как упавшего.
func Error(t T, err error) {
	t.Helper()
	t.Error(Format(err))
}

// Check помечает тест упавшим и возвращает true если err не nil.
func Check(t T, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(Format(err))
	return true
}

// Code проверка того, что err несёт код want. Ожидаемая ошибка выводится в
// лог, неожиданная помечает тест упавшим.
func Code(t T, err error, want dserr.ErrorCode) bool {
	t.Helper()

	if err == nil {
		t.Error(fmt.Sprintf("error with code %s expected, got nil", want))
		return false
	}

	if got := dserr.AsCode(err); got != want {
		t.Error(fmt.Sprintf("error with code %s expected, got %s", want, Format(err)))
		return false
	}

	t.Log(Format(err))
	return true
}

// Format представление ошибки вида "text {name=value ...}".
func Format(err error) string {
	if err == nil {
		return "<nil>"
	}

	var fs fields
	if d := errors.GetContextDeliverer(err); d != nil {
		d.Deliver(&fs)
	}

	if len(fs) == 0 {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString(" {")
	for i, f := range fs {
		if i > 0 {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&b, "%s=%v", f.name, f.value)
	}
	b.WriteByte('}')

	return b.String()
}
