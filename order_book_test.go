package tickbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBookBestTracksAddAndRemove(t *testing.T) {
	b := NewOrderBook(101, 8)
	assert.Equal(t, NoIndex, b.BestBid())
	assert.Equal(t, NoIndex, b.BestAsk())

	require.NoError(t, b.AddResting(Buy, 50, 1, 10))
	assert.Equal(t, 50, b.BestBid())

	require.NoError(t, b.AddResting(Buy, 55, 2, 10))
	assert.Equal(t, 55, b.BestBid(), "higher bid becomes best")

	require.NoError(t, b.AddResting(Sell, 60, 3, 10))
	require.NoError(t, b.AddResting(Sell, 58, 4, 10))
	assert.Equal(t, 58, b.BestAsk(), "lower ask becomes best")
}

func TestOrderBookBestRescansAfterLevelEmpties(t *testing.T) {
	b := NewOrderBook(101, 8)
	require.NoError(t, b.AddResting(Buy, 50, 1, 10))
	require.NoError(t, b.AddResting(Buy, 48, 2, 10))
	require.NoError(t, b.AddResting(Buy, 45, 3, 10))

	assert.True(t, b.RemoveResting(Buy, 50, 1, 10))
	assert.Equal(t, 48, b.BestBid(), "scans down to the next occupied level")

	assert.True(t, b.RemoveResting(Buy, 48, 2, 10))
	assert.Equal(t, 45, b.BestBid())

	assert.True(t, b.RemoveResting(Buy, 45, 3, 10))
	assert.Equal(t, NoIndex, b.BestBid())
}

func TestOrderBookRemoveResting_NotBestLevelLeavesBestUntouched(t *testing.T) {
	b := NewOrderBook(101, 8)
	require.NoError(t, b.AddResting(Buy, 50, 1, 10))
	require.NoError(t, b.AddResting(Buy, 48, 2, 10))

	assert.True(t, b.RemoveResting(Buy, 48, 2, 10))
	assert.Equal(t, 50, b.BestBid(), "removing a non-best level leaves best untouched")
}

func TestOrderBookPopFrontRestingFullyDrainsLevel(t *testing.T) {
	b := NewOrderBook(101, 8)
	require.NoError(t, b.AddResting(Sell, 50, 1, 10))
	assert.Equal(t, 50, b.BestAsk())

	id, err := b.PopFrontResting(Sell, 50, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(1), id)
	assert.Equal(t, NoIndex, b.BestAsk())
}
