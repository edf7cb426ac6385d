package intindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64Index(t *testing.T) {
	index := NewInt64Index("rows", []int64{4, 1, 7, 1})
	assert.Equal(t, "rows", index.Label())
	assert.Equal(t, 4, index.Length())
	assert.True(t, index.Contains(7))
	assert.False(t, index.Contains(2))

	position, err := index.PositionOf(1)
	require.NoError(t, err)
	assert.Equal(t, 1, position)

	_, err = index.PositionOf(9)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	element, exists := index.ElementAt(-1)
	assert.True(t, exists)
	assert.Equal(t, int64(1), element)
	_, exists = index.ElementAt(4)
	assert.False(t, exists)

	min, exists := index.Min()
	assert.True(t, exists)
	assert.Equal(t, int64(1), min)
	max, exists := index.Max()
	assert.True(t, exists)
	assert.Equal(t, int64(7), max)

	_, exists = NewInt64Index("", nil).Min()
	assert.False(t, exists)
}

func TestInt64IndexOwnership(t *testing.T) {
	source := []int64{1, 2, 3}
	index := NewInt64Index("", source)
	source[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, index.Values())

	// the returned values are a copy as well
	values := index.Values()
	values[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, index.Values())
}

func TestInt64IndexEqual(t *testing.T) {
	assert.True(t, NewInt64Index("a", []int64{1, 2}).Equal(NewInt64Index("b", []int64{1, 2})))
	assert.False(t, NewInt64Index("a", []int64{1, 2}).Equal(NewInt64Index("a", []int64{2, 1})))
	assert.False(t, NewInt64Index("a", []int64{1}).Equal(NewInt64Index("a", []int64{1, 2})))
}

func TestInt64IndexBytes(t *testing.T) {
	index := NewInt64Index("rows", []int64{-4, 0, 12})
	restored, consumedBytes, err := Int64IndexFromBytes(index.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(index.Bytes()), consumedBytes)
	assert.Equal(t, index, restored)
}

func TestFloat64Index(t *testing.T) {
	index := NewFloat64Index("quotients", []float64{0.5, 1, 1.5})
	assert.Equal(t, "quotients", index.Label())
	assert.Equal(t, 3, index.Length())
	assert.Equal(t, []float64{0.5, 1, 1.5}, index.Values())

	restored, consumedBytes, err := Float64IndexFromBytes(index.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(index.Bytes()), consumedBytes)
	assert.True(t, index.Equal(restored))
}

func TestSortedUnion(t *testing.T) {
	assert.Equal(t, []int64{0, 1, 2, 3, 5}, SortedUnion([]int64{3, 1, 5}, []int64{0, 1, 2}))
	assert.Equal(t, []int64{1, 2}, SortedUnion([]int64{2, 1}, nil))
	assert.Empty(t, SortedUnion(nil, nil))
}

func TestConcatDedup(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 5, 0, 2}, ConcatDedup([]int64{3, 1, 5}, []int64{0, 1, 2}))
	assert.Equal(t, []int64{7}, ConcatDedup([]int64{7, 7}, []int64{7}))
	assert.Empty(t, ConcatDedup(nil, nil))
}
