package utils

import (
	"unsafe"
)

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)
	return sliceCopy
}

// StringAsBytes returns the bytes of s without copying, the result should not be modified.
func StringAsBytes[T ~string](s T) []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}
