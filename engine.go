package tickbook

import "github.com/shopspring/decimal"

// MatchingEngine is a single-symbol, single-threaded limit order book. It
// owns the order pool, the tick-indexed book, the client index, the
// price mapper, and the trade log, and exposes the only surface a caller
// needs: PlaceLimit, PlaceMarket, Cancel, and Replace. There is no
// goroutine, channel, or mutex anywhere in this call path — every
// operation runs to completion on the caller's own stack.
type MatchingEngine struct {
	book    *OrderBook
	pool    *OrderPool
	clients *ClientIndex
	prices  *PriceMapper
	trades  TradeLog

	clock uint64 // logical clock: ticks once per emitted trade (EmissionTS) and once per rested order (ArrivalSeq)
}

// NewMatchingEngine constructs an engine from floor/tick/levels and any
// EngineOptions. The trade log defaults to an in-memory log; pass a
// different TradeLog with SetTradeLog after construction.
func NewMatchingEngine(floor, tick decimal.Decimal, opts ...EngineOption) *MatchingEngine {
	cfg := defaultEngineConfig()
	cfg.floor = floor
	cfg.tick = tick
	for _, opt := range opts {
		opt(&cfg)
	}

	return &MatchingEngine{
		book:    NewOrderBook(cfg.levels, cfg.levelRingCapacity),
		pool:    NewOrderPool(cfg.poolCapacity),
		clients: NewClientIndex(cfg.clientIndexBuckets),
		prices:  NewPriceMapper(cfg.floor, cfg.tick, cfg.levels),
		trades:  NewMemoryTradeLog(),
	}
}

// SetTradeLog swaps the engine's trade log. Intended for construction
// time only — swapping mid-simulation loses nothing structurally, but
// there is no use case for it, so callers should treat this as a
// one-time setup call.
func (e *MatchingEngine) SetTradeLog(log TradeLog) { e.trades = log }

// Trades returns the engine's trade log.
func (e *MatchingEngine) Trades() TradeLog { return e.trades }

// BestBid returns the book's best bid tick index, or NoIndex.
func (e *MatchingEngine) BestBid() int { return e.book.BestBid() }

// BestAsk returns the book's best ask tick index, or NoIndex.
func (e *MatchingEngine) BestAsk() int { return e.book.BestAsk() }

// PriceMapper exposes the engine's real-price <-> tick-index boundary.
func (e *MatchingEngine) PriceMapper() *PriceMapper { return e.prices }

func (e *MatchingEngine) tick() uint64 {
	e.clock++
	return e.clock
}

// crosses reports whether a taker on side at priceIdx would cross the
// opposing side's best price. A market order has no price guard and
// always crosses as long as the opposing side is non-empty.
func crosses(side Side, priceIdx, oppositeBest int) bool {
	if oppositeBest == NoIndex {
		return false
	}
	if side == Buy {
		return priceIdx >= oppositeBest
	}
	return priceIdx <= oppositeBest
}

func opposite(side Side) Side {
	if side == Buy {
		return Sell
	}
	return Buy
}

func (e *MatchingEngine) oppositeBest(side Side) int {
	if side == Buy {
		return e.book.BestAsk()
	}
	return e.book.BestBid()
}

// availableLiquidity sums resting quantity a taker on side could cross
// at or better than priceIdx — the FOK precheck's liquidity count. The
// hot match loop never calls this; it always matches at the current best.
func (e *MatchingEngine) availableLiquidity(side Side, priceIdx int) int64 {
	opp := opposite(side)
	var total int64
	if side == Buy {
		for idx := e.book.BestAsk(); idx != NoIndex && idx <= priceIdx; idx = e.nextOccupied(opp, idx, +1) {
			total += e.book.LevelAt(opp, idx).AggregateQty()
		}
		return total
	}
	for idx := e.book.BestBid(); idx != NoIndex && idx >= priceIdx; idx = e.nextOccupied(opp, idx, -1) {
		total += e.book.LevelAt(opp, idx).AggregateQty()
	}
	return total
}

// nextOccupied scans from idx (exclusive) in the given direction (+1 or
// -1) for the next non-empty level on side, used only by the FOK
// liquidity precheck — the hot match loop never needs this since it
// always matches at the current best.
func (e *MatchingEngine) nextOccupied(side Side, idx, dir int) int {
	for i := idx + dir; i >= 0 && i < e.book.Levels(); i += dir {
		if !e.book.LevelAt(side, i).Empty() {
			return i
		}
	}
	return NoIndex
}

// PlaceLimit admits a limit order for qty at priceIdx on side with the
// given time-in-force. Returns the resting quantity left on the book (0
// if fully filled or killed) and any error. A FOK that cannot be fully
// filled, or a non-positive qty, or an out-of-range priceIdx, is
// rejected with ErrRejected and leaves no state change. If the residual
// cannot be rested (ErrPoolExhausted or ErrLevelFull), the returned
// quantity is that residual, which is not on the book; fills already
// made stand.
func (e *MatchingEngine) PlaceLimit(clientID int64, side Side, priceIdx int, qty int64, tif TimeInForce) (int64, error) {
	if qty <= 0 || !e.prices.InRange(priceIdx) {
		return 0, ErrRejected
	}

	if tif == FOK {
		if e.availableLiquidity(side, priceIdx) < qty {
			return 0, ErrRejected
		}
	}

	_, remaining, err := e.matchAgainstBook(clientID, side, priceIdx, qty, false)
	if err != nil {
		return 0, err
	}

	if remaining == 0 || tif == IOC || tif == FOK {
		return 0, nil
	}

	if err := e.rest(clientID, side, priceIdx, remaining, Limit, tif); err != nil {
		return remaining, err
	}
	return remaining, nil
}

// PlaceMarket admits a market order for qty on side. It sweeps the book
// from the current best price outward with no price guard and never
// rests a residual: any quantity left unfilled when the opposing side
// exhausts is simply not filled.
func (e *MatchingEngine) PlaceMarket(clientID int64, side Side, qty int64) (int64, error) {
	if qty <= 0 {
		return 0, ErrRejected
	}
	_, remaining, err := e.matchAgainstBook(clientID, side, 0, qty, true)
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// matchAgainstBook is the single matching loop shared by limit, IOC,
// FOK, and market orders. It consumes resting liquidity on the opposite
// side starting at the current best, stopping when the taker is
// exhausted, the opposite side empties, or (for price-guarded orders)
// the opposite best no longer crosses the taker's limit.
func (e *MatchingEngine) matchAgainstBook(clientID int64, side Side, priceIdx int, qty int64, sweep bool) (filled, remaining int64, err error) {
	opp := opposite(side)
	remaining = qty

	for remaining > 0 {
		bestOpp := e.oppositeBest(side)
		if bestOpp == NoIndex {
			break
		}
		if !sweep && !crosses(side, priceIdx, bestOpp) {
			break
		}

		lvl := e.book.LevelAt(opp, bestOpp)
		makerID, perr := lvl.PeekFront()
		if perr != nil {
			break
		}
		maker := e.pool.Get(makerID)

		tradeQty := maker.RemainingQty
		if remaining < tradeQty {
			tradeQty = remaining
		}

		maker.RemainingQty -= tradeQty
		lvl.ReduceFront(tradeQty)
		remaining -= tradeQty
		filled += tradeQty

		e.trades.Append(Trade{
			TakerClientID: clientID,
			MakerClientID: maker.ClientID,
			Qty:           tradeQty,
			PriceIdx:      bestOpp,
			EmissionTS:    int64(e.tick()),
		})

		if maker.RemainingQty == 0 {
			if _, perr := e.book.PopFrontResting(opp, bestOpp, 0); perr != nil {
				return filled, remaining, perr
			}
			e.clients.Delete(maker.ClientID)
			e.pool.Free(makerID)
		}
	}

	return filled, remaining, nil
}

// rest admits qty as a new resting order for clientID at priceIdx on
// side, allocating a pool slot and registering it in the client index.
func (e *MatchingEngine) rest(clientID int64, side Side, priceIdx int, qty int64, typ OrderType, tif TimeInForce) error {
	engineID, order, err := e.pool.Allocate()
	if err != nil {
		logger.Error("order pool exhausted", "client_id", clientID, "price_idx", priceIdx)
		return err
	}
	order.ClientID = clientID
	order.Side = side
	order.Type = typ
	order.TIF = tif
	order.PriceIdx = priceIdx
	order.RemainingQty = qty
	order.ArrivalSeq = e.tick()

	if err := e.book.AddResting(side, priceIdx, engineID, qty); err != nil {
		logger.Error("price level full", "client_id", clientID, "price_idx", priceIdx, "side", side)
		e.pool.Free(engineID)
		return err
	}
	e.clients.Put(clientID, engineID)
	return nil
}

// liveOrder looks up clientID's resting order. It returns ok=false if
// clientID has no index entry — it was never placed, or it was cancelled
// or fully filled, both of which erase the entry — or if the entry points
// at a slot that is no longer live. Such a stale entry is erased from the
// client index; nothing is double-freed.
func (e *MatchingEngine) liveOrder(clientID int64) (order *Order, engineID int32, ok bool) {
	engineID, found := e.clients.Get(clientID)
	if !found {
		return nil, 0, false
	}
	if !e.pool.Live(engineID) {
		logger.Warn("stale client index entry", "client_id", clientID, "engine_id", engineID)
		e.clients.Delete(clientID)
		return nil, 0, false
	}
	return e.pool.Get(engineID), engineID, true
}

// Cancel removes clientID's resting order from the book. Returns false
// if the order is absent or already inactive; the only state change then
// is the erasure of a stale index entry.
func (e *MatchingEngine) Cancel(clientID int64) bool {
	order, engineID, ok := e.liveOrder(clientID)
	if !ok {
		return false
	}

	removed := e.book.RemoveResting(order.Side, order.PriceIdx, engineID, order.RemainingQty)
	e.clients.Delete(clientID)
	if removed {
		e.pool.Free(engineID)
	}
	return removed
}

// Replace cancels clientID's resting order and places a fresh limit
// order in its place, reusing the existing order's side and tif — only
// the price and quantity change. If the order is absent or inactive,
// Replace returns false and leaves the book untouched; it never creates
// a new order in that case. Replace forfeits time priority: it is
// exactly equivalent to cancel followed by place_limit.
func (e *MatchingEngine) Replace(clientID int64, newPriceIdx int, newQty int64) (bool, int64, error) {
	order, _, ok := e.liveOrder(clientID)
	if !ok {
		return false, 0, nil
	}
	side, tif := order.Side, order.TIF

	e.Cancel(clientID)
	remaining, err := e.PlaceLimit(clientID, side, newPriceIdx, newQty, tif)
	if err != nil {
		return true, 0, err
	}
	return true, remaining, nil
}
