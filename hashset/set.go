package hashset

import (
	"hash/maphash"
	"iter"
	"slices"

	"github.com/ddirect/noorder"
)

// Key is what a set element must provide: hashing plus equality. Elements
// whose Hash writes nothing all land in one bucket and deduplicate through
// Equal alone.
type Key[T any] interface {
	noorder.Equaler[T]
	noorder.Hasher
}

type Set[T Key[T]] struct {
	seed    maphash.Seed
	buckets map[uint64][]T
	count   int
}

func New[T Key[T]]() *Set[T] {
	return &Set[T]{
		seed:    maphash.MakeSeed(),
		buckets: make(map[uint64][]T),
	}
}

// Insert adds t unless an equal element is already present, which is kept.
func (s *Set[T]) Insert(t T) {
	sum := s.sum(t)
	b := s.buckets[sum]
	if find(b, t) >= 0 {
		return
	}
	s.buckets[sum] = append(b, t)
	s.count++
}

func (s *Set[T]) Delete(t T) {
	sum := s.sum(t)
	b := s.buckets[sum]
	i := find(b, t)
	if i < 0 {
		return
	}
	if len(b) == 1 {
		delete(s.buckets, sum)
	} else {
		s.buckets[sum] = slices.Delete(b, i, i+1)
	}
	s.count--
}

func (s *Set[T]) Exists(t T) bool {
	return find(s.buckets[s.sum(t)], t) >= 0
}

func (s *Set[T]) Len() int {
	return s.count
}

func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, b := range s.buckets {
			for _, t := range b {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func (s *Set[T]) sum(t T) uint64 {
	var h maphash.Hash
	h.SetSeed(s.seed)
	t.Hash(&h)
	return h.Sum64()
}

func find[T Key[T]](b []T, t T) int {
	return slices.IndexFunc(b, func(e T) bool { return e.Equal(t) })
}
