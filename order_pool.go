package tickbook

import (
	"errors"

	"github.com/axiomtick/tickbook/structure"
)

// OrderPool is the fixed-capacity arena of resting Order records. Every
// order admitted to the book lives in exactly one pool slot, addressed by
// its EngineID, for as long as it rests; cancel and full fills return the
// slot to the free list.
type OrderPool struct {
	arena *structure.Arena[Order]
}

// NewOrderPool preallocates a pool with room for capacity resting orders.
func NewOrderPool(capacity int) *OrderPool {
	return &OrderPool{arena: structure.NewArena[Order](capacity)}
}

// Cap returns the pool's fixed capacity.
func (p *OrderPool) Cap() int { return p.arena.Cap() }

// Len returns the number of orders currently resting in the pool.
func (p *OrderPool) Len() int { return p.arena.Len() }

// Allocate reserves a slot and returns its EngineID and a pointer to the
// zeroed order. Returns ErrPoolExhausted if the pool is at capacity.
func (p *OrderPool) Allocate() (int32, *Order, error) {
	idx, order, err := p.arena.Alloc()
	if err != nil {
		if errors.Is(err, structure.ErrArenaExhausted) {
			return 0, nil, ErrPoolExhausted
		}
		return 0, nil, err
	}
	order.EngineID = idx
	return idx, order, nil
}

// Free returns engineID's slot to the pool. The caller must have already
// unlinked the order from its price level's ring.
func (p *OrderPool) Free(engineID int32) {
	p.arena.Free(engineID)
}

// Get returns a pointer to the order at engineID. The caller is
// responsible for checking Live first if the slot's occupancy is unknown.
func (p *OrderPool) Get(engineID int32) *Order {
	return p.arena.At(engineID)
}

// Live reports whether engineID currently holds a resting order. Cancel
// and replace use this to detect a stale index: a client id that maps
// to a slot which has since been freed. A freed slot that has been
// handed out again reports true.
func (p *OrderPool) Live(engineID int32) bool {
	return p.arena.InUse(engineID)
}
