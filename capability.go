package noorder

import "hash/maphash"

// The capability interfaces the container packages are constrained on.
// NoOrder satisfies all of them for any T, with constant implementations.

type Comparer[T any] interface {
	Before(T) bool
}

type Equaler[T any] interface {
	Equal(T) bool
}

type Hasher interface {
	Hash(*maphash.Hash)
}

type Cloner[T any] interface {
	Clone() T
}

// Key is the full contract ordered and hashed containers demand of an
// element.
type Key[T any] interface {
	Comparer[T]
	Equaler[T]
	Hasher
}
