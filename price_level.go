package tickbook

// PriceLevel is a single tick's resting-order queue: a fixed-capacity
// FIFO ring of pool EngineIDs, time-ordered by arrival. Its mask
// arithmetic is the same scheme the teacher's MPSC ring buffer used for
// its slot addressing, stripped of the atomics and producer/consumer
// handshake a single-threaded book has no use for.
type PriceLevel struct {
	ring       []int32
	mask       int64
	head       int64 // index of the oldest live order, monotonic
	tail       int64 // index of the next free slot; advances on push, steps back one on Remove
	aggregate  int64 // sum of RemainingQty across every order in the ring
}

// NewPriceLevel preallocates a ring with room for exactly capacity
// resting orders. capacity must be a power of two.
func NewPriceLevel(capacity int) *PriceLevel {
	if capacity <= 0 || (capacity&(capacity-1)) != 0 {
		panic("tickbook: price level capacity must be a power of 2")
	}
	return &PriceLevel{
		ring: make([]int32, capacity),
		mask: int64(capacity) - 1,
	}
}

// Len returns the number of orders currently resting at this level.
func (l *PriceLevel) Len() int { return int(l.tail - l.head) }

// Empty reports whether the level has no resting orders.
func (l *PriceLevel) Empty() bool { return l.head == l.tail }

// AggregateQty returns the sum of RemainingQty across every resting order.
func (l *PriceLevel) AggregateQty() int64 { return l.aggregate }

// PushBack admits engineID at the back of the queue (newest arrival).
// Returns ErrLevelFull if the ring is at capacity.
func (l *PriceLevel) PushBack(engineID int32, qty int64) error {
	if l.tail-l.head > l.mask {
		return ErrLevelFull
	}
	l.ring[l.tail&l.mask] = engineID
	l.tail++
	l.aggregate += qty
	return nil
}

// PeekFront returns the EngineID of the oldest resting order without
// removing it. Returns ErrLevelEmpty if the level has no resting orders.
func (l *PriceLevel) PeekFront() (int32, error) {
	if l.Empty() {
		return 0, ErrLevelEmpty
	}
	return l.ring[l.head&l.mask], nil
}

// PopFront removes and returns the oldest resting order's EngineID.
// qty is the order's RemainingQty at the time of removal, subtracted
// from the level's aggregate. Returns ErrLevelEmpty if the level is empty.
func (l *PriceLevel) PopFront(qty int64) (int32, error) {
	id, err := l.PeekFront()
	if err != nil {
		return 0, err
	}
	l.head++
	l.aggregate -= qty
	return id, nil
}

// ReduceFront accounts a partial fill against the oldest resting order
// without removing it from the queue: the caller has already reduced the
// order's own RemainingQty and passes the delta to keep aggregate
// consistent.
func (l *PriceLevel) ReduceFront(filledQty int64) {
	l.aggregate -= filledQty
}

// Remove walks the live window looking for engineID and excises it,
// shifting every later entry forward by one slot. This is the only O(W)
// operation on the level, used by cancel; admits and fills stay O(1).
func (l *PriceLevel) Remove(engineID int32, qty int64) bool {
	for i := l.head; i < l.tail; i++ {
		if l.ring[i&l.mask] != engineID {
			continue
		}
		for j := i; j < l.tail-1; j++ {
			l.ring[j&l.mask] = l.ring[(j+1)&l.mask]
		}
		l.tail--
		l.aggregate -= qty
		return true
	}
	return false
}
