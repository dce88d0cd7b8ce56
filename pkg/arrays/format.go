package arrays

import (
	"fmt"
	"strings"
)

// Format renders each element with [fmt.Sprint] and joins them with sep.
func Format[T any](arr []T, sep string) string {
	var builder strings.Builder

	for i, elem := range arr {
		if i > 0 {
			builder.WriteString(sep)
		}

		builder.WriteString(fmt.Sprint(elem))
	}

	return builder.String()
}
