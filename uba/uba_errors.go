package uba

import (
	"github.com/sirkon/dsa/dserr"
	"github.com/sirkon/errors"
)

func errReleased(op string) error {
	return errors.Wrap(dserr.NewPreconditionViolated("array was freed"), op)
}

func errIndex(op string, index, bound int) error {
	return errors.Wrap(dserr.NewIndexOutOfRange(), op).
		Int("invalid-index", index).
		Int("bound", bound)
}

func initialLimit(limit int) (int, error) {
	if limit > MaxLimit {
		return 0, errors.Wrap(dserr.NewInvalidArgument("limit out of bounds"), "initial limit").
			Int("invalid-limit", limit).
			Int("max-limit", MaxLimit)
	}

	if limit <= 0 {
		return 1, nil
	}
	return limit, nil
}
