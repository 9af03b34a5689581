package tickbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLevelFIFOOrder(t *testing.T) {
	lvl := NewPriceLevel(4)

	require.NoError(t, lvl.PushBack(10, 5))
	require.NoError(t, lvl.PushBack(11, 7))
	require.NoError(t, lvl.PushBack(12, 3))

	assert.Equal(t, int64(15), lvl.AggregateQty())
	assert.Equal(t, 3, lvl.Len())

	front, err := lvl.PeekFront()
	require.NoError(t, err)
	assert.Equal(t, int32(10), front)

	id, err := lvl.PopFront(5)
	require.NoError(t, err)
	assert.Equal(t, int32(10), id)
	assert.Equal(t, int64(10), lvl.AggregateQty())

	id, err = lvl.PopFront(7)
	require.NoError(t, err)
	assert.Equal(t, int32(11), id)
}

func TestPriceLevelFullAndEmpty(t *testing.T) {
	lvl := NewPriceLevel(2)
	require.NoError(t, lvl.PushBack(1, 1))
	require.NoError(t, lvl.PushBack(2, 1))
	assert.ErrorIs(t, lvl.PushBack(3, 1), ErrLevelFull)

	_, err := lvl.PopFront(1)
	require.NoError(t, err)
	_, err = lvl.PopFront(1)
	require.NoError(t, err)
	assert.True(t, lvl.Empty())

	_, err = lvl.PopFront(1)
	assert.ErrorIs(t, err, ErrLevelEmpty)
}

func TestPriceLevelRemoveFromMiddle(t *testing.T) {
	lvl := NewPriceLevel(4)
	require.NoError(t, lvl.PushBack(1, 2))
	require.NoError(t, lvl.PushBack(2, 3))
	require.NoError(t, lvl.PushBack(3, 4))

	assert.True(t, lvl.Remove(2, 3))
	assert.Equal(t, 2, lvl.Len())
	assert.Equal(t, int64(6), lvl.AggregateQty())

	front, err := lvl.PeekFront()
	require.NoError(t, err)
	assert.Equal(t, int32(1), front)

	assert.False(t, lvl.Remove(99, 1), "removing an absent id is a no-op")
}

func TestPriceLevelWrapsAroundRing(t *testing.T) {
	lvl := NewPriceLevel(2)
	require.NoError(t, lvl.PushBack(1, 1))
	require.NoError(t, lvl.PushBack(2, 1))
	_, err := lvl.PopFront(1)
	require.NoError(t, err)
	require.NoError(t, lvl.PushBack(3, 1))

	front, err := lvl.PeekFront()
	require.NoError(t, err)
	assert.Equal(t, int32(2), front)
}
