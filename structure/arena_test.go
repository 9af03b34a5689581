package structure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocFree(t *testing.T) {
	a := NewArena[int](3)
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, 0, a.Len())

	i0, p0, err := a.Alloc()
	require.NoError(t, err)
	*p0 = 42
	assert.Equal(t, int32(0), i0)
	assert.True(t, a.InUse(i0))
	assert.Equal(t, 1, a.Len())

	i1, _, err := a.Alloc()
	require.NoError(t, err)
	i2, _, err := a.Alloc()
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())

	_, _, err = a.Alloc()
	assert.True(t, errors.Is(err, ErrArenaExhausted))

	a.Free(i1)
	assert.False(t, a.InUse(i1))
	assert.Equal(t, 2, a.Len())

	i3, p3, err := a.Alloc()
	require.NoError(t, err)
	assert.Equal(t, i1, i3, "freed slot should be reused")
	assert.Equal(t, 0, *p3, "reused slot must be zeroed")

	assert.Equal(t, 42, *a.At(i0))
	_ = i2
}

func TestArenaFreeZeroesSlot(t *testing.T) {
	type rec struct {
		Qty int64
	}
	a := NewArena[rec](1)
	idx, p, err := a.Alloc()
	require.NoError(t, err)
	p.Qty = 100
	a.Free(idx)
	idx2, p2, err := a.Alloc()
	require.NoError(t, err)
	assert.Equal(t, idx, idx2)
	assert.Equal(t, int64(0), p2.Qty)
}
