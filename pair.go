package noorder

import (
	"cmp"
	"hash/maphash"
)

// Pair composes two keyed values lexicographically: A decides first and B
// only breaks ties. With B a NoOrder, ordering, equality and hashing reduce
// to A alone, which is how a payload is stored next to the key it must not
// influence.
type Pair[A Key[A], B Key[B]] struct {
	A A
	B B
}

func NewPair[A Key[A], B Key[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

func (p Pair[A, B]) Before(o Pair[A, B]) bool {
	if p.A.Before(o.A) {
		return true
	}
	if o.A.Before(p.A) {
		return false
	}
	return p.B.Before(o.B)
}

func (p Pair[A, B]) Equal(o Pair[A, B]) bool {
	return p.A.Equal(o.A) && p.B.Equal(o.B)
}

func (p Pair[A, B]) Hash(h *maphash.Hash) {
	p.A.Hash(h)
	p.B.Hash(h)
}

// Ord adapts a naturally ordered scalar to the key capabilities.
type Ord[T cmp.Ordered] struct {
	V T
}

func (a Ord[T]) Before(b Ord[T]) bool {
	return a.V < b.V
}

func (a Ord[T]) Equal(b Ord[T]) bool {
	return a.V == b.V
}

func (a Ord[T]) Hash(h *maphash.Hash) {
	maphash.WriteComparable(h, a.V)
}
