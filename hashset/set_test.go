package hashset_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ddirect/noorder"
	"github.com/ddirect/noorder/hashset"
	"github.com/stretchr/testify/assert"
)

func Test_Basic(t *testing.T) {
	s := hashset.New[noorder.Ord[int]]()

	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3} {
		s.Insert(noorder.Ord[int]{V: v})
	}

	assert.Equal(t, 7, s.Len())
	assert.True(t, s.Exists(noorder.Ord[int]{V: 9}))
	assert.False(t, s.Exists(noorder.Ord[int]{V: 7}))

	s.Delete(noorder.Ord[int]{V: 9})
	assert.False(t, s.Exists(noorder.Ord[int]{V: 9}))
	assert.Equal(t, 6, s.Len())

	var got []int
	for e := range s.Values() {
		got = append(got, e.V)
	}
	slices.Sort(got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func Test_NoOrderCollapses(t *testing.T) {
	s := hashset.New[noorder.NoOrder[int]]()

	for _, v := range []int{1, 1, 2, 3} {
		s.Insert(noorder.New(v))
	}

	// every wrapper hashes and compares the same
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Exists(noorder.New(999)))

	// Insert keeps the element that was there first
	assert.Equal(t, []noorder.NoOrder[int]{noorder.New(1)}, slices.Collect(s.Values()))

	s.Delete(noorder.New(0))
	assert.Equal(t, 0, s.Len())
}

func Test_KeyedTuples(t *testing.T) {
	s := hashset.New[noorder.Pair[noorder.Ord[int], noorder.NoOrder[int]]]()

	for _, e := range [][2]int{{1, 1}, {2, 1}, {2, 2}} {
		s.Insert(noorder.NewPair(noorder.Ord[int]{V: e[0]}, noorder.New(e[1])))
	}

	// only the first half of the pair distinguishes elements
	assert.Equal(t, 2, s.Len())
}

func Test_Random(t *testing.T) {
	const iterations = 10000

	s := hashset.New[noorder.Ord[int]]()
	ref := make(map[int]struct{})

	for range iterations {
		v := rand.IntN(200)
		k := noorder.Ord[int]{V: v}
		switch rand.IntN(3) {
		case 0:
			s.Insert(k)
			ref[v] = struct{}{}
		case 1:
			s.Delete(k)
			delete(ref, v)
		case 2:
			_, ok := ref[v]
			assert.Equal(t, ok, s.Exists(k))
		}
		assert.Equal(t, len(ref), s.Len())
	}

	var got []int
	for e := range s.Values() {
		got = append(got, e.V)
	}

	var want []int
	for v := range ref {
		want = append(want, v)
	}

	assert.ElementsMatch(t, want, got)
}
