package core

import (
	"strings"

	"github.com/inoxlang/substrate/internal/utils"
)

var (
	_ = []Seq{(*Pair)(nil), (*Tuple)(nil)}
)

// A Seqable value has a sequence view, Seq returns nil if the value has no elements.
type Seqable interface {
	Seq() Seq
}

// A Seq is a first/rest view of a sequence of values.
type Seq interface {
	Seqable

	Count() int

	First() Value

	// Rest returns the sequence following the first element or nil if there is none.
	Rest() Seq

	// Empty returns nil: there is no canonical empty sequence, the absence of sequence is the empty sequence.
	Empty() Seq

	// Prepend returns a new sequence with v as its first element, the sequence is not modified.
	Prepend(v Value) (Seq, error)

	Equal(other any) bool

	Equiv(other any) bool
}

// Pair's implementation of Seq, the sequence view of a pair is the pair itself.

// Count returns the number of pairs in the chain starting at p.
func (p *Pair) Count() int {
	count := 1
	cell := p

	for {
		next, ok := cell.cdr.(*Pair)
		if !ok {
			return count
		}
		count++
		cell = next
	}
}

func (p *Pair) First() Value {
	return p.car
}

// Rest returns the cdr if it is a pair, nil otherwise. The terminal value of the chain
// is never returned.
func (p *Pair) Rest() Seq {
	if next, ok := p.cdr.(*Pair); ok {
		return next
	}
	return nil
}

func (p *Pair) Seq() Seq {
	if p == nil {
		return nil
	}
	return p
}

func (p *Pair) Empty() Seq {
	return nil
}

func (p *Pair) Prepend(v Value) (Seq, error) {
	pair, err := p.Cons(v)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Cons returns a new pair with v as car and p as cdr.
func (p *Pair) Cons(v Value) (*Pair, error) {
	return NewPair(v, p)
}

// A Tuple is an immutable sequence of values backed by a slice. The rest of a tuple shares
// the elements of the tuple.
type Tuple struct {
	elements []Value
}

func NewTuple(values ...Value) (*Tuple, error) {
	elements := make([]Value, len(values))

	for i, v := range values {
		elem, err := CheckSlotValue(TUPLE_OP, ElementSlot, v)
		if err != nil {
			return nil, err
		}
		elements[i] = elem
	}

	return &Tuple{elements: elements}, nil
}

func (t *Tuple) Count() int {
	return len(t.elements)
}

// First returns the first element or nil if the tuple is empty.
func (t *Tuple) First() Value {
	if len(t.elements) == 0 {
		return nil
	}
	return t.elements[0]
}

func (t *Tuple) Rest() Seq {
	if len(t.elements) <= 1 {
		return nil
	}
	return &Tuple{elements: t.elements[1:]}
}

func (t *Tuple) Seq() Seq {
	if t == nil || len(t.elements) == 0 {
		return nil
	}
	return t
}

func (t *Tuple) Empty() Seq {
	return nil
}

func (t *Tuple) Prepend(v Value) (Seq, error) {
	elem, err := CheckSlotValue(TUPLE_OP, ElementSlot, v)
	if err != nil {
		return nil, err
	}

	elements := make([]Value, 0, len(t.elements)+1)
	elements = append(elements, elem)
	elements = append(elements, t.elements...)
	return &Tuple{elements: elements}, nil
}

// Elements returns a copy of the elements of the tuple.
func (t *Tuple) Elements() []Value {
	return utils.CopySlice(t.elements)
}

// ToList returns a proper list with the same elements or NIL if the tuple is empty.
func (t *Tuple) ToList() (Value, error) {
	return List(t.elements...)
}

func (t *Tuple) String() string {
	buf := &strings.Builder{}
	buf.WriteString("#(")
	for i, elem := range t.elements {
		if i != 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(Stringify(elem))
	}
	buf.WriteByte(')')
	return buf.String()
}

// SeqElements returns the elements of a sequence, s can be nil.
func SeqElements(s Seq) []Value {
	var elements []Value
	for ; s != nil; s = s.Rest() {
		elements = append(elements, s.First())
	}
	return elements
}
