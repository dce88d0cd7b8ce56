// Package arrays provides bulk-fill and index-driven generation helpers for
// fixed-length slices.
//
// A slice passed to any function in this package is treated as an array:
// elements are overwritten in place and the length never changes.
//
// # Basic Usage
//
//	nums := []int{1, 2, 3, 4, 5}
//	arrays.Fill(nums, 100) // [100 100 100 100 100]
//
//	chars := []rune("abcqwe")
//	if err := arrays.FillRange(chars, 2, 4, 'h'); err != nil {
//	    return err
//	}
//
//	words := make([]string, 5)
//	arrays.SetAll(words, func(i int) string {
//	    return strconv.Itoa(i) + "-x-" + strconv.Itoa(i)
//	})
//
// # Error Handling
//
// Range validation returns a [*RangeError] that matches either
// [ErrInvalidRange] or [ErrIndexOutOfBounds] with [errors.Is]. A failed call
// leaves the slice untouched. Generators that can fail go through
// [TrySetAll], which reports [ErrGenerator] together with the failing index.
package arrays
