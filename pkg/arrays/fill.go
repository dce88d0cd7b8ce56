package arrays

import (
	"fmt"
	"reflect"
)

// Fill replaces every element of arr with value.
func Fill[T any](arr []T, value T) {
	for i := range arr {
		arr[i] = value
	}
}

// FillRange replaces the elements at positions [from, to) with value.
// Positions outside the range are untouched, and from == to is a no-op.
//
// The range is validated with [CheckRange] before anything is written.
func FillRange[T any](arr []T, from, to int, value T) error {
	err := CheckRange(len(arr), from, to)
	if err != nil {
		return err
	}

	Fill(arr[from:to], value)

	return nil
}

// FillValue is the untyped form of [Fill] for callers that only hold
// interface values. target must be a slice or a pointer to an array; value
// must be assignable to its element type. A nil value fills with the
// element type's zero value when that type is nillable.
func FillValue(target any, value any) error {
	targetVal := reflect.ValueOf(target)

	switch targetVal.Kind() {
	case reflect.Slice:
	case reflect.Pointer:
		if targetVal.IsNil() || targetVal.Elem().Kind() != reflect.Array {
			return fmt.Errorf("%w: got %T", ErrNotFillable, target)
		}

		targetVal = targetVal.Elem()
	default:
		return fmt.Errorf("%w: got %T", ErrNotFillable, target)
	}

	elemType := targetVal.Type().Elem()

	fillWith, err := assignableValue(elemType, value)
	if err != nil {
		return fmt.Errorf("%w: cannot fill %s with %T", err, targetVal.Type(), value)
	}

	for i := 0; i < targetVal.Len(); i++ {
		targetVal.Index(i).Set(fillWith)
	}

	return nil
}

func assignableValue(elemType reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		switch elemType.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(elemType), nil
		default:
			return reflect.Value{}, ErrTypeMismatch
		}
	}

	val := reflect.ValueOf(value)
	if !val.Type().AssignableTo(elemType) {
		return reflect.Value{}, ErrTypeMismatch
	}

	return val, nil
}
