package noorder

import (
	"fmt"
	"hash/maphash"
)

// NoOrder wraps a value so that it takes no part in ordering, equality or
// hashing: every NoOrder[T] is equivalent to every other NoOrder[T],
// whatever the wrapped values are.
//
// It is meant to ride next to a real key in ordered or hashed containers,
// typically as the second half of a [Pair]: the container sees only the key,
// and the wrapped value comes along untouched, even when T has no ordering
// or hashing capability of its own. All wrappers hash alike and compare
// equal, so a set of bare wrappers collapses to a single element; that is
// the point, not a defect.
//
// The struct has the size and alignment of T itself and adds no behavior to
// the value: construction cannot fail, the field is freely accessible, and
// the zero value wraps the zero T.
type NoOrder[T any] struct {
	Value T
}

func New[T any](value T) NoOrder[T] {
	return NoOrder[T]{value}
}

// Equal reports true for any pair of wrappers; the values are never inspected.
func (NoOrder[T]) Equal(NoOrder[T]) bool {
	return true
}

// Before reports false for any pair of wrappers: none sorts before another.
func (NoOrder[T]) Before(NoOrder[T]) bool {
	return false
}

// Compare reports 0 for any pair of wrappers.
func (NoOrder[T]) Compare(NoOrder[T]) int {
	return 0
}

// Hash writes nothing, so every wrapper contributes the same state to the
// accumulator regardless of the wrapped value.
func (NoOrder[T]) Hash(*maphash.Hash) {}

// Format renders the wrapped value with the caller's verb and flags.
func (n NoOrder[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), n.Value)
}

// Clone duplicates the wrapped value with its own Clone.
func Clone[T Cloner[T]](n NoOrder[T]) NoOrder[T] {
	return NoOrder[T]{n.Value.Clone()}
}

// CloneFrom overwrites dst's value from src through the value's own
// CloneFrom, so a target that already holds a compatible value can reuse
// its storage.
func CloneFrom[T any, P interface {
	*T
	CloneFrom(T)
}](dst *NoOrder[T], src NoOrder[T]) {
	P(&dst.Value).CloneFrom(src.Value)
}
