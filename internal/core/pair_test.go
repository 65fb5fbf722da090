package core

import (
	"errors"
	"testing"

	"github.com/inoxlang/substrate/internal/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPair(t *testing.T, car, cdr Value) *Pair {
	t.Helper()
	p, err := NewPair(car, cdr)
	require.NoError(t, err)
	return p
}

func newList(t *testing.T, values ...Value) *Pair {
	t.Helper()
	list, err := List(values...)
	require.NoError(t, err)
	return list.(*Pair)
}

type embeddingPair struct {
	*Pair
}

func TestNewPair(t *testing.T) {
	testconfig.AllowParallelization(t)

	a := Intern("A")
	inner := newPair(t, Int(1), NIL)

	validValues := []struct {
		name  string
		value Value
	}{
		{"int", Int(1)},
		{"negative int", Int(-7)},
		{"float", Float(2.5)},
		{"symbol", a},
		{"terminator", NIL},
		{"pair", inner},
	}

	for _, car := range validValues {
		for _, cdr := range validValues {
			t.Run(car.name+" & "+cdr.name, func(t *testing.T) {
				p, err := NewPair(car.value, cdr.value)
				if !assert.NoError(t, err) {
					return
				}

				assert.Equal(t, car.value, p.Car())
				assert.Equal(t, cdr.value, p.Cdr())
			})
		}
	}

	t.Run("nil car", func(t *testing.T) {
		p, err := NewPair(nil, NIL)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrInvalidValue)

		var invalidValueErr *InvalidValueError
		if !assert.ErrorAs(t, err, &invalidValueErr) {
			return
		}
		assert.Equal(t, CarSlot, invalidValueErr.Slot)
		assert.Equal(t, CONS_OP, invalidValueErr.Op)
	})

	t.Run("nil cdr", func(t *testing.T) {
		p, err := NewPair(Int(1), nil)
		assert.Nil(t, p)

		var invalidValueErr *InvalidValueError
		if !assert.ErrorAs(t, err, &invalidValueErr) {
			return
		}
		assert.Equal(t, CdrSlot, invalidValueErr.Slot)
	})

	t.Run("nil pair pointer", func(t *testing.T) {
		_, err := NewPair((*Pair)(nil), NIL)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("nil symbol pointer", func(t *testing.T) {
		_, err := NewPair(Int(1), (*Symbol)(nil))
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("type embedding *Pair", func(t *testing.T) {
		_, err := NewPair(Int(1), embeddingPair{inner})
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("invalid car is reported before invalid cdr", func(t *testing.T) {
		_, err := NewPair(nil, nil)

		var invalidValueErr *InvalidValueError
		if !assert.ErrorAs(t, err, &invalidValueErr) {
			return
		}
		assert.Equal(t, CarSlot, invalidValueErr.Slot)
	})
}

func TestCons(t *testing.T) {
	testconfig.AllowParallelization(t)

	invalidValues := []struct {
		name  string
		value any
		kind  string
	}{
		{"nil", nil, "<nil>"},
		{"string", "a", "string"},
		{"go int", 1, "int"},
		{"go float", 1.5, "float64"},
		{"bool", true, "bool"},
		{"slice", []Value{Int(1)}, "[]core.Value"},
		{"tuple", &Tuple{}, "*core.Tuple"},
	}

	for _, testCase := range invalidValues {
		t.Run("invalid car: "+testCase.name, func(t *testing.T) {
			p, err := Cons(testCase.value, NIL)
			assert.Nil(t, p)

			var invalidValueErr *InvalidValueError
			if !assert.ErrorAs(t, err, &invalidValueErr) {
				return
			}
			assert.Equal(t, CarSlot, invalidValueErr.Slot)
			assert.Equal(t, testCase.kind, invalidValueErr.Kind)
		})

		t.Run("invalid cdr: "+testCase.name, func(t *testing.T) {
			p, err := Cons(Int(1), testCase.value)
			assert.Nil(t, p)

			var invalidValueErr *InvalidValueError
			if !assert.ErrorAs(t, err, &invalidValueErr) {
				return
			}
			assert.Equal(t, CdrSlot, invalidValueErr.Slot)
			assert.Equal(t, testCase.kind, invalidValueErr.Kind)
		})
	}

	t.Run("valid values", func(t *testing.T) {
		p, err := Cons(Int(1), Float(2))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, Int(1), p.Car())
		assert.Equal(t, Float(2), p.Cdr())
	})

	t.Run("error message", func(t *testing.T) {
		_, err := Cons("abc", NIL)
		assert.EqualError(t, err, "invalid CAR value (`abc`; string) passed to CONS")
	})
}

func TestPairSetters(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("SetCar", func(t *testing.T) {
		p := newPair(t, Int(1), NIL)

		if !assert.NoError(t, p.SetCar(Intern("B"))) {
			return
		}
		assert.Same(t, Intern("B"), p.Car())
		assert.Same(t, NIL, p.Cdr())
	})

	t.Run("SetCdr", func(t *testing.T) {
		p := newPair(t, Int(1), NIL)
		q := newPair(t, Int(2), NIL)

		if !assert.NoError(t, p.SetCdr(q)) {
			return
		}
		assert.Same(t, q, p.Cdr())
		assert.Equal(t, 2, p.Count())
	})

	t.Run("SetCar with an invalid value should leave the pair unchanged", func(t *testing.T) {
		p := newPair(t, Int(1), Int(2))

		err := p.SetCar(nil)
		assert.ErrorIs(t, err, ErrInvalidValue)

		var invalidValueErr *InvalidValueError
		if assert.ErrorAs(t, err, &invalidValueErr) {
			assert.Equal(t, RPLACA_OP, invalidValueErr.Op)
		}

		assert.Equal(t, Int(1), p.Car())
		assert.Equal(t, Int(2), p.Cdr())
	})

	t.Run("SetCdr with an invalid value should leave the pair unchanged", func(t *testing.T) {
		p := newPair(t, Int(1), Int(2))

		err := p.SetCdr((*Pair)(nil))
		assert.ErrorIs(t, err, ErrInvalidValue)

		var invalidValueErr *InvalidValueError
		if assert.ErrorAs(t, err, &invalidValueErr) {
			assert.Equal(t, RPLACD_OP, invalidValueErr.Op)
			assert.Equal(t, CdrSlot, invalidValueErr.Slot)
		}

		assert.Equal(t, Int(1), p.Car())
		assert.Equal(t, Int(2), p.Cdr())
	})

	t.Run("a mutation should be visible through all references", func(t *testing.T) {
		p := newPair(t, Int(1), NIL)
		alias := p
		holder := newPair(t, p, NIL)

		if !assert.NoError(t, alias.SetCdr(Int(2))) {
			return
		}

		assert.Equal(t, Int(2), p.Cdr())
		assert.Equal(t, Int(2), holder.Car().(*Pair).Cdr())
		assert.Equal(t, "(1 . 2)", p.String())
		assert.Equal(t, "((1 . 2))", holder.String())
	})
}

func TestList(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("no values", func(t *testing.T) {
		list, err := List()
		if !assert.NoError(t, err) {
			return
		}
		assert.Same(t, NIL, list)
	})

	t.Run("several values", func(t *testing.T) {
		list := newList(t, Int(1), Int(2), Int(3))

		assert.Equal(t, 3, list.Count())
		assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, list.Elements())
		assert.True(t, list.IsProperList())
	})

	t.Run("invalid value", func(t *testing.T) {
		list, err := List(Int(1), nil)
		assert.Nil(t, list)

		var invalidValueErr *InvalidValueError
		if assert.ErrorAs(t, err, &invalidValueErr) {
			assert.Equal(t, LIST_OP, invalidValueErr.Op)
		}
	})
}

func TestPairLast(t *testing.T) {
	testconfig.AllowParallelization(t)

	single := newPair(t, Int(1), NIL)
	assert.Same(t, single, single.Last())

	list := newList(t, Int(1), Int(2), Int(3))
	last := list.Last()
	assert.Equal(t, Int(3), last.Car())
	assert.Same(t, NIL, last.Cdr())

	dotted := newPair(t, Int(1), newPair(t, Int(2), Int(3)))
	assert.Equal(t, Int(2), dotted.Last().Car())
	assert.False(t, dotted.IsProperList())
	assert.Equal(t, []Value{Int(1), Int(2)}, dotted.Elements())
}

func TestInvalidValueError(t *testing.T) {
	testconfig.AllowParallelization(t)

	err := newInvalidValueError(RPLACD_OP, CdrSlot, []int{1})
	assert.Equal(t, "[1]", err.Text)
	assert.Equal(t, "[]int", err.Kind)
	assert.Equal(t, "invalid CDR value (`[1]`; []int) passed to RPLACD", err.Error())

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.False(t, errors.Is(err, errors.New("invalid value")))

	nilErr := newInvalidValueError(CONS_OP, CarSlot, (*Pair)(nil))
	assert.Equal(t, "<nil>", nilErr.Text)
	assert.Equal(t, "*core.Pair", nilErr.Kind)
}
