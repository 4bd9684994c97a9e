package gslice

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gslice/internal/conv"
)

var (
	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("slice is empty")

	// ErrOutOfRange is returned when an index lies outside [0, len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrKindMismatch is returned when a value or container does not match the
	// element kind of a Tagged slice.
	ErrKindMismatch = errors.New("element kind mismatch")

	// ErrUnknownKind is returned when constructing a Tagged slice for a kind
	// outside the supported set.
	ErrUnknownKind = errors.New("unknown element kind")

	// ErrOverflow is returned when a number does not fit the element kind of a
	// Tagged slice.
	ErrOverflow = conv.ErrOverflow
)

// IndexError reports an out-of-range index.
//
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// KindError reports a value or container whose element kind differs from the
// kind a Tagged slice was created with.
//
// It unwraps to ErrKindMismatch.
type KindError struct {
	Op   string
	Want Kind
	Got  string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", e.Op, e.Want, e.Got)
}

func (e *KindError) Unwrap() error { return ErrKindMismatch }

func checkIndex(op string, idx, n int) error {
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	if idx < 0 || idx >= n {
		return &IndexError{Op: op, Index: idx, Len: n}
	}
	return nil
}
