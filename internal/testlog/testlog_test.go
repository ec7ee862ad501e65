package testlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/dsa/internal/testlog"
	"github.com/sirkon/errors"
)

type recorder struct {
	logs  []string
	fails []string
}

func (r *recorder) Helper() {}

func (r *recorder) Log(a ...any) {
	r.logs = append(r.logs, a[0].(string))
}

func (r *recorder) Error(a ...any) {
	r.fails = append(r.fails, a[0].(string))
}

func TestFormat(t *testing.T) {
	if got := testlog.Format(nil); got != "<nil>" {
		t.Errorf("unexpected nil rendering %q", got)
	}

	if got := testlog.Format(stderrs.New("plain")); got != "plain" {
		t.Errorf("unexpected plain rendering %q", got)
	}

	err := errors.Wrap(dserr.NewIndexOutOfRange(), "insert at").Int("index", 12).Int("size", 3)
	testlog.Log(t, err)
}

func TestCheck(t *testing.T) {
	var r recorder
	if testlog.Check(&r, nil) {
		t.Error("nil error must not be reported")
	}
	if !testlog.Check(&r, stderrs.New("failure")) {
		t.Error("error must be reported")
	}
	if len(r.fails) != 1 || r.fails[0] != "failure" {
		t.Errorf("unexpected reported errors %q", r.fails)
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		want  dserr.ErrorCode
		ok    bool
		fails int
	}{
		{
			name:  "matching",
			err:   errors.Wrap(dserr.NewNotFound(), "get"),
			want:  dserr.CodeNotFound,
			ok:    true,
			fails: 0,
		},
		{
			name:  "other code",
			err:   errors.Wrap(dserr.NewNotFound(), "get"),
			want:  dserr.CodeIndexOutOfRange,
			ok:    false,
			fails: 1,
		},
		{
			name:  "nil",
			err:   nil,
			want:  dserr.CodeNotFound,
			ok:    false,
			fails: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			if got := testlog.Code(&r, tt.err, tt.want); got != tt.ok {
				t.Errorf("Code = %v, want %v", got, tt.ok)
			}
			if len(r.fails) != tt.fails {
				t.Errorf("%d reported errors expected, got %q", tt.fails, r.fails)
			}
		})
	}
}
