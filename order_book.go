package tickbook

// OrderBook holds the resting-order state for one symbol: a dense array
// of PriceLevel per side, indexed by tick, plus a best_bid/best_ask
// cache so the matching loop never has to scan the book to find its
// starting point.
type OrderBook struct {
	bids []*PriceLevel
	asks []*PriceLevel

	bestBid int // NoIndex if the bid side is empty
	bestAsk int // NoIndex if the ask side is empty
}

// NewOrderBook preallocates levels tick-indexed price levels per side,
// each with room for ringCapacity resting orders.
func NewOrderBook(levels, ringCapacity int) *OrderBook {
	b := &OrderBook{
		bids:    make([]*PriceLevel, levels),
		asks:    make([]*PriceLevel, levels),
		bestBid: NoIndex,
		bestAsk: NoIndex,
	}
	for i := 0; i < levels; i++ {
		b.bids[i] = NewPriceLevel(ringCapacity)
		b.asks[i] = NewPriceLevel(ringCapacity)
	}
	return b
}

// Levels returns the number of tick indices per side.
func (b *OrderBook) Levels() int { return len(b.bids) }

// BestBid returns the highest occupied bid tick index, or NoIndex.
func (b *OrderBook) BestBid() int { return b.bestBid }

// BestAsk returns the lowest occupied ask tick index, or NoIndex.
func (b *OrderBook) BestAsk() int { return b.bestAsk }

// LevelAt returns the PriceLevel for side at idx.
func (b *OrderBook) LevelAt(side Side, idx int) *PriceLevel {
	if side == Buy {
		return b.bids[idx]
	}
	return b.asks[idx]
}

// AddResting admits engineID at idx on side and refreshes the best-price
// cache for that side.
func (b *OrderBook) AddResting(side Side, idx int, engineID int32, qty int64) error {
	if err := b.LevelAt(side, idx).PushBack(engineID, qty); err != nil {
		return err
	}
	b.updateBestAfterAdd(side, idx)
	return nil
}

// RemoveResting excises engineID from idx on side — used by cancel,
// which may be removing from the middle of the queue rather than the
// front — and refreshes the best-price cache if that level emptied out.
func (b *OrderBook) RemoveResting(side Side, idx int, engineID int32, qty int64) bool {
	removed := b.LevelAt(side, idx).Remove(engineID, qty)
	if removed && b.LevelAt(side, idx).Empty() {
		b.updateBestAfterRemove(side, idx)
	}
	return removed
}

// PopFrontResting removes the oldest order at idx on side (a full fill)
// and refreshes the best-price cache if that level emptied out.
func (b *OrderBook) PopFrontResting(side Side, idx int, qty int64) (int32, error) {
	id, err := b.LevelAt(side, idx).PopFront(qty)
	if err != nil {
		return 0, err
	}
	if b.LevelAt(side, idx).Empty() {
		b.updateBestAfterRemove(side, idx)
	}
	return id, nil
}

func (b *OrderBook) updateBestAfterAdd(side Side, idx int) {
	if side == Buy {
		if b.bestBid == NoIndex || idx > b.bestBid {
			b.bestBid = idx
		}
		return
	}
	if b.bestAsk == NoIndex || idx < b.bestAsk {
		b.bestAsk = idx
	}
}

// updateBestAfterRemove is called when the level at idx has just emptied
// out and idx was (or might have been) the cached best. It scans outward
// from idx — toward lower indices for bids, higher for asks — until it
// finds the next non-empty level or exhausts the book.
func (b *OrderBook) updateBestAfterRemove(side Side, idx int) {
	if side == Buy {
		if idx != b.bestBid {
			return
		}
		for i := idx - 1; i >= 0; i-- {
			if !b.bids[i].Empty() {
				b.bestBid = i
				return
			}
		}
		b.bestBid = NoIndex
		return
	}
	if idx != b.bestAsk {
		return
	}
	for i := idx + 1; i < len(b.asks); i++ {
		if !b.asks[i].Empty() {
			b.bestAsk = i
			return
		}
	}
	b.bestAsk = NoIndex
}
