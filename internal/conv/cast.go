package conv

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is wrapped by every conversion error.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", ErrOverflow, v)
	}
	return int(v), nil
}

// Int64To converts v to the integer type T, failing if the value does not
// survive the round trip or changes sign.
func Int64To[T constraints.Integer](v int64) (T, error) {
	t := T(v)
	if int64(t) != v || (t < 0) != (v < 0) {
		return 0, fmt.Errorf("%w: %d cannot be converted to %T", ErrOverflow, v, t)
	}
	return t, nil
}

// Uint64To converts v to the integer type T, failing if the value does not
// fit.
func Uint64To[T constraints.Integer](v uint64) (T, error) {
	t := T(v)
	if t < 0 || uint64(t) != v {
		return 0, fmt.Errorf("%w: %d cannot be converted to %T", ErrOverflow, v, t)
	}
	return t, nil
}
