package service

import (
	"errors"
	"fmt"
)

// ErrInvalid marks input rejected by a use case before anything is written.
var ErrInvalid = errors.New("invalid input")

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
