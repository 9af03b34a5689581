package tickbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPoolAllocateFree(t *testing.T) {
	p := NewOrderPool(2)

	id0, o0, err := p.Allocate()
	require.NoError(t, err)
	o0.ClientID = 1001
	assert.Equal(t, int32(0), id0)
	assert.True(t, p.Live(id0))

	id1, _, err := p.Allocate()
	require.NoError(t, err)

	_, _, err = p.Allocate()
	assert.ErrorIs(t, err, ErrPoolExhausted)

	p.Free(id1)
	assert.False(t, p.Live(id1))
	assert.Equal(t, 1, p.Len())

	id2, o2, err := p.Allocate()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, int64(0), o2.ClientID, "reused slot must be zeroed")

	assert.Equal(t, int64(1001), p.Get(id0).ClientID)
}
