package utils

import (
	"io"
)

// MustWriteMany writes all the slices to w and panics on the first error.
func MustWriteMany(w io.Writer, slices ...[]byte) int {
	total := 0
	for _, b := range slices {
		total += Must(w.Write(b))
	}
	return total
}

// FnWriter is an io.Writer calling a function, mostly useful in tests.
type FnWriter struct {
	fn func(p []byte) (n int, err error)
}

func NewFnWriter(fn func(p []byte) (n int, err error)) FnWriter {
	return FnWriter{fn: fn}
}

func (writer FnWriter) Write(p []byte) (n int, err error) {
	return writer.fn(p)
}
