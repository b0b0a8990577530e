package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.Equal(t, 2, r.Start)
	assert.Equal(t, 5, r.End)
	assert.Equal(t, 3, r.Len())
}

func TestRange_HalfOpen(t *testing.T) {
	// Range is [Start, End) - half-open interval
	// This test documents the semantic meaning
	r := Range{Start: 0, End: 5}

	// A 5-index range [0, 5) includes indices 0, 1, 2, 3, 4
	// but NOT index 5
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(-1))

	assert.Equal(t, 5, r.Len())
}

func TestPositionsIndexSet(t *testing.T) {
	p := Positions{{Start: 0, End: 3}, {Start: 6, End: 7}}
	set := p.IndexSet()

	assert.Len(t, set, 4)
	for _, i := range []int{0, 1, 2, 6} {
		assert.True(t, set.Contains(i), "index %d", i)
	}
	assert.False(t, set.Contains(3))
	assert.False(t, set.Contains(5))
}

func TestPositionsIndexSetOverlap(t *testing.T) {
	// Overlapping ranges collapse; each index appears once no matter
	// how many ranges cover it.
	p := Positions{{Start: 0, End: 3}, {Start: 2, End: 5}}
	set := p.IndexSet()

	assert.Len(t, set, 5)
	for i := 0; i < 5; i++ {
		assert.True(t, set.Contains(i), "index %d", i)
	}
}

func TestPositionsIndexSetEmpty(t *testing.T) {
	var p Positions
	set := p.IndexSet()
	assert.Empty(t, set)
	assert.False(t, set.Contains(0))
}

func TestIndexSetAdd(t *testing.T) {
	set := make(IndexSet)
	set.Add(3)
	set.Add(3)
	assert.Len(t, set, 1)
	assert.True(t, set.Contains(3))
}
