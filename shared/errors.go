package shared

import (
	"errors"
	"fmt"
)

var (
	ErrAllocation     = errors.New("storage allocation failed")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrOutOfRange     = errors.New("bit offset out of range")
)

// InvalidDigitError reports a character outside [0-9a-fA-F] encountered
// while decoding hex text.
type InvalidDigitError struct {
	Pos  int
	Char byte
}

func (err InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid hex digit %q at position %d", err.Char, err.Pos)
}

// LengthMismatchError reports two buffers whose bit lengths were expected
// to be equal.
type LengthMismatchError struct {
	LenA uint
	LenB uint
}

func (err LengthMismatchError) Error() string {
	return fmt.Sprintf("bit length mismatch; left: %d, right: %d", err.LenA, err.LenB)
}
