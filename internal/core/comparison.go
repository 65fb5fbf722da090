package core

import "math"

// Value and sequence implementations of Equal.
//
// Equiv is the same relation as Equal for every type: there is no looser equivalence.

func (i Int) Equal(other any) bool {
	switch o := other.(type) {
	case Int:
		return i == o
	case Float:
		return intEqualsFloat(i, o)
	default:
		return false
	}
}

func (f Float) Equal(other any) bool {
	switch o := other.(type) {
	case Float:
		return f == o
	case Int:
		return intEqualsFloat(o, f)
	default:
		return false
	}
}

// intEqualsFloat compares without converting i to float64: above 2^53 the conversion is lossy.
func intEqualsFloat(i Int, f Float) bool {
	float := float64(f)
	if math.Trunc(float) != float || float < math.MinInt64 || float >= math.MaxInt64 {
		//not integral, NaN, infinite or out of the int64 range
		return false
	}
	return Int(float) == i
}

// Equal reports whether other is a symbol with the same identity or the same name.
func (s *Symbol) Equal(other any) bool {
	otherSym, ok := other.(*Symbol)
	if !ok || otherSym == nil || s == nil {
		return false
	}
	return s == otherSym || s.name == otherSym.name
}

// Equal reports whether other is a sequence with the same elements and the same ending.
// The cars are compared with their Equal method, nested pairs are compared recursively.
// The chains are walked together: they are equal if they end at the same time and their
// terminal values (the last cdrs) are equal, this is the case for two proper lists and for
// two dotted lists ending in equal atoms. A non-pair sequence (e.g. a Tuple) is considered
// to be a proper list.
func (p *Pair) Equal(other any) bool {
	seqable, ok := other.(Seqable)
	if !ok {
		return false
	}

	s := seqable.Seq()
	if s == nil {
		return false
	}

	if otherPair, ok := s.(*Pair); ok && otherPair == p {
		return true
	}

	cell := p

	for {
		if !cell.car.Equal(s.First()) {
			return false
		}

		next, hasNext := cell.cdr.(*Pair)

		if otherCell, ok := s.(*Pair); ok {
			otherNext, otherHasNext := otherCell.cdr.(*Pair)

			switch {
			case hasNext && otherHasNext:
				cell, s = next, otherNext
				continue
			case hasNext || otherHasNext:
				return false
			default:
				return cell.cdr.Equal(otherCell.cdr)
			}
		}

		rest := s.Rest()

		switch {
		case hasNext && rest != nil:
			cell, s = next, rest
		case hasNext || rest != nil:
			return false
		default:
			return IsTerminator(cell.cdr)
		}
	}
}

// Equiv is equivalent to Equal.
func (p *Pair) Equiv(other any) bool {
	return p.Equal(other)
}

// Equal reports whether other is a sequence with the same elements, a chain of pairs is
// equal to a tuple only if it is a proper list.
func (t *Tuple) Equal(other any) bool {
	seqable, ok := other.(Seqable)
	if !ok {
		return false
	}

	s := seqable.Seq()
	self := t.Seq()

	if s == nil || self == nil {
		return s == nil && self == nil
	}

	if pair, ok := s.(*Pair); ok {
		return pair.Equal(t)
	}

	for {
		if !self.First().Equal(s.First()) {
			return false
		}
		self, s = self.Rest(), s.Rest()

		if self == nil || s == nil {
			return self == nil && s == nil
		}
	}
}

// Equiv is equivalent to Equal.
func (t *Tuple) Equiv(other any) bool {
	return t.Equal(other)
}
