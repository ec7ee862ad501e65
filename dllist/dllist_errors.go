package dllist

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

func errReleased(op string) error {
	return errors.Wrap(dserr.NewPreconditionViolated("list was freed"), op)
}

func errEmpty(op string) error {
	return errors.Wrap(dserr.NewPreconditionViolated("list is empty"), op)
}

func errIndex(op string, index, size int) error {
	return errors.Wrap(dserr.NewIndexOutOfRange(), op).
		Int("invalid-index", index).
		Int("size", size)
}
