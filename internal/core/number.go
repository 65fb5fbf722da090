package core

import (
	"math"
	"strconv"
	"strings"
)

var (
	_ = []Number{Int(0), Float(0)}
)

// A Number is either an Int or a Float.
type Number interface {
	Value
	Float64() float64
}

// Int implements Value.
type Int int64

func (i Int) Float64() float64 {
	return float64(i)
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float implements Value.
type Float float64

func (f Float) Float64() float64 {
	return float64(f)
}

// String returns the shortest decimal representation of f, integral values have a .0 suffix.
// Very large and very small magnitudes use the exponent form.
func (f Float) String() string {
	format := byte('f')
	if abs := math.Abs(float64(f)); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'g'
	}
	s := strconv.FormatFloat(float64(f), format, -1, 64)

	//NaN, +Inf, -Inf and exponent forms are left as is
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
