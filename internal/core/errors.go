package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue = errors.New("invalid value")
)

// An InvalidValueError is returned when a value that is not a *Pair, a *Symbol or a Number
// is given to an operation storing it in a slot.
type InvalidValueError struct {
	Op   string //CONS, RPLACA, RPLACD, ...
	Slot Slot
	Text string //textual form of the value
	Kind string //Go type of the value
}

func newInvalidValueError(op string, slot Slot, v any) *InvalidValueError {
	return &InvalidValueError{
		Op:   op,
		Slot: slot,
		Text: fmt.Sprintf("%v", v),
		Kind: fmt.Sprintf("%T", v),
	}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value (`%s`; %s) passed to %s", e.Slot, e.Text, e.Kind, e.Op)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
