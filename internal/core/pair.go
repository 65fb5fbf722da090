package core

// A Pair (cons cell) is a mutable tuple of two slots, the car and the cdr, Pair implements Value.
// A chain of pairs linked through their cdr is a list: the list is proper if the last cdr is the
// terminator symbol (NIL), improper (dotted) otherwise.
//
// Pairs are shared mutable state: a mutation is visible through all references to the pair.
// There is no locking, callers sharing a pair between goroutines must synchronize.
// SetCdr allows building cyclic chains, operations walking the chain (Count, Elements,
// Last, Equal, printing) do not terminate on them.
type Pair struct {
	car Value
	cdr Value
}

// NewPair creates a pair, car and cdr should be a *Pair, a *Symbol or a Number.
func NewPair(car, cdr Value) (*Pair, error) {
	return Cons(car, cdr)
}

// Cons creates a pair from values of any Go type, an *InvalidValueError is returned
// if car or cdr cannot occupy a slot.
func Cons(car, cdr any) (*Pair, error) {
	carVal, err := CheckSlotValue(CONS_OP, CarSlot, car)
	if err != nil {
		return nil, err
	}

	cdrVal, err := CheckSlotValue(CONS_OP, CdrSlot, cdr)
	if err != nil {
		return nil, err
	}

	return &Pair{car: carVal, cdr: cdrVal}, nil
}

// List creates a proper list, NIL is returned if no values are passed.
func List(values ...Value) (Value, error) {
	var list Value = NIL

	for i := len(values) - 1; i >= 0; i-- {
		elem, err := CheckSlotValue(LIST_OP, CarSlot, values[i])
		if err != nil {
			return nil, err
		}
		list = &Pair{car: elem, cdr: list}
	}

	return list, nil
}

func (p *Pair) Car() Value {
	return p.car
}

func (p *Pair) Cdr() Value {
	return p.cdr
}

// SetCar replaces the car of the pair, the pair is left unchanged if v is invalid.
func (p *Pair) SetCar(v Value) error {
	val, err := CheckSlotValue(RPLACA_OP, CarSlot, v)
	if err != nil {
		return err
	}
	p.car = val
	return nil
}

// SetCdr replaces the cdr of the pair, the pair is left unchanged if v is invalid.
func (p *Pair) SetCdr(v Value) error {
	val, err := CheckSlotValue(RPLACD_OP, CdrSlot, v)
	if err != nil {
		return err
	}
	p.cdr = val
	return nil
}

// Last returns the last pair of the chain starting at p.
func (p *Pair) Last() *Pair {
	cell := p
	for {
		next, ok := cell.cdr.(*Pair)
		if !ok {
			return cell
		}
		cell = next
	}
}

// IsProperList reports whether the chain starting at p ends with the terminator.
func (p *Pair) IsProperList() bool {
	return IsTerminator(p.Last().cdr)
}

// Elements returns the cars of the chain starting at p, the terminal cdr is not included.
func (p *Pair) Elements() []Value {
	var elements []Value
	for cell := p; cell != nil; {
		elements = append(elements, cell.car)
		cell, _ = cell.cdr.(*Pair)
	}
	return elements
}
