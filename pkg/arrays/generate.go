package arrays

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Generator computes the value for a zero-based position.
//
// Any callable with the matching signature converts to a Generator: a named
// function, a function literal, a method value or a closure.
type Generator[T any] func(index int) T

// SetAll assigns arr[i] = gen(i) for every position, in increasing index
// order.
func SetAll[T any](arr []T, gen Generator[T]) {
	for i := range arr {
		arr[i] = gen(i)
	}
}

// TrySetAll is [SetAll] for generators that can fail. It stops at the first
// error: positions before the failing index keep their generated values,
// the failing position and everything after it are left as they were.
func TrySetAll[T any](arr []T, gen func(index int) (T, error)) error {
	for i := range arr {
		value, err := gen(i)
		if err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrGenerator, i, err)
		}

		arr[i] = value
	}

	return nil
}

// Linear returns a generator producing start + step*i.
func Linear[T constraints.Integer | constraints.Float](start, step T) Generator[T] {
	return func(index int) T {
		return start + step*T(index)
	}
}
