package arrays

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by arrays operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, arrays.ErrIndexOutOfBounds) {
//	    // clamp and retry
//	}
var (
	// ErrInvalidRange indicates from > to.
	ErrInvalidRange = errors.New("arrays: invalid range")

	// ErrIndexOutOfBounds indicates from < 0, to < 0 or to > len.
	ErrIndexOutOfBounds = errors.New("arrays: index out of bounds")

	// ErrTypeMismatch indicates a value whose type cannot be stored in the
	// target's element type. Only [FillValue] can return it; the generic
	// functions reject mismatches at compile time.
	ErrTypeMismatch = errors.New("arrays: type mismatch")

	// ErrNotFillable indicates [FillValue] was given something other than a
	// slice or a pointer to an array.
	ErrNotFillable = errors.New("arrays: can only fill slices and arrays")

	// ErrGenerator wraps a failure returned by a generator passed to
	// [TrySetAll].
	ErrGenerator = errors.New("arrays: generator failed")
)

// RangeError describes a rejected [from, to) range.
type RangeError struct {
	From int
	To   int
	Len  int

	// Err is ErrInvalidRange or ErrIndexOutOfBounds.
	Err error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: from=%d to=%d len=%d", e.Err, e.From, e.To, e.Len)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// CheckRange validates a half-open range against a length.
//
// from > to is reported before any bounds problem, so (5, 2) on a
// length-3 slice is an invalid range, not an out-of-bounds one.
func CheckRange(length, from, to int) error {
	if from > to {
		return &RangeError{From: from, To: to, Len: length, Err: ErrInvalidRange}
	}

	if from < 0 || to < 0 || to > length {
		return &RangeError{From: from, To: to, Len: length, Err: ErrIndexOutOfBounds}
	}

	return nil
}
