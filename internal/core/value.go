package core

import (
	"fmt"

	"github.com/inoxlang/substrate/internal/prettyprint"
)

var (
	_ = []Value{(*Pair)(nil), (*Symbol)(nil), Int(0), Float(0)}
)

// A Value is what a slot of a Pair can hold: a *Pair, a *Symbol or a Number (Int, Float).
// The set of implementations is closed, CheckSlotValue is the only place deciding
// whether a Go value is accepted.
type Value interface {
	fmt.Stringer

	// Equal reports whether the value is structurally equal to other.
	Equal(other any) bool

	// PrettyPrint writes the textual form of the value, it panics on write errors.
	PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig)

	isSlotValue()
}

func (*Pair) isSlotValue()   {}
func (*Symbol) isSlotValue() {}
func (Int) isSlotValue()     {}
func (Float) isSlotValue()   {}

const (
	CONS_OP   = "CONS"
	RPLACA_OP = "RPLACA"
	RPLACD_OP = "RPLACD"
	LIST_OP   = "LIST"
	TUPLE_OP  = "TUPLE"
)

type Slot int

const (
	CarSlot Slot = iota
	CdrSlot
	ElementSlot
)

func (s Slot) String() string {
	switch s {
	case CarSlot:
		return "CAR"
	case CdrSlot:
		return "CDR"
	case ElementSlot:
		return "ELEMENT"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// CheckSlotValue returns v as a Value if it can occupy a slot. Nil interfaces, nil pointers and
// any type other than *Pair, *Symbol, Int and Float (including types embedding them) are rejected
// with an *InvalidValueError.
func CheckSlotValue(op string, slot Slot, v any) (Value, error) {
	switch val := v.(type) {
	case *Pair:
		if val != nil {
			return val, nil
		}
	case *Symbol:
		if val != nil {
			return val, nil
		}
	case Int:
		return val, nil
	case Float:
		return val, nil
	}

	err := newInvalidValueError(op, slot, v)

	getLogger().Debug().
		Str("op", op).
		Stringer("slot", slot).
		Str("kind", err.Kind).
		Msg("rejected slot value")

	return nil, err
}
