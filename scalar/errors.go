package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is matched by every error an extraction returns.
	ErrKindMismatch = errors.New("scalar: kind mismatch")

	// ErrUnsupportedType is returned by New for Go types outside the kind table.
	ErrUnsupportedType = errors.New("scalar: unsupported type")
)

// MismatchError records the kind an extraction asked for and the kind
// that was actually held.
type MismatchError struct {
	Want Kind
	Got  Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("scalar: kind mismatch: want %s, have %s", e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrKindMismatch
}

func mismatch(want, got Kind) error {
	return &MismatchError{Want: want, Got: got}
}
