package utils

import (
	"fmt"

	"github.com/rs/zerolog"
)

func ToZeroLogArray[T fmt.Stringer](arr []T) *zerolog.Array {
	return ToZeroLogArrayFunc(arr, func(e T) string { return e.String() })
}

// ToZeroLogArrayFunc logs each element as the string returned by f.
func ToZeroLogArrayFunc[T any](arr []T, f func(T) string) (ret *zerolog.Array) {
	ret = zerolog.Arr()

	for _, elem := range arr {
		ret = ret.Str(f(elem))
	}

	return ret
}
