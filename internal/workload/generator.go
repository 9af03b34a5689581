// Package workload generates synthetic order flow for exercising a
// MatchingEngine outside of tests: a preload pass that seeds both sides
// of the book, followed by a steady stream of limit, IOC, and market
// orders drawn from a seeded PRNG so a run is fully reproducible.
package workload

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/axiomtick/tickbook/protocol"
)

// Event is one generated order: either a limit (with PriceIdx set) or a
// market order (PriceIdx ignored).
type Event struct {
	Type     protocol.OrderType
	Side     protocol.Side
	PriceIdx int
	Qty      int64
	TIF      protocol.TimeInForce
}

// Generator produces a reproducible stream of Events clustered around a
// price band, with a small, fixed probability of a market order. Limit
// orders are GFD, except that a limit order produced at every 200th event
// (counting all events) carries an IOC time-in-force.
type Generator struct {
	rng         *rand.Rand
	lowPrice    float64
	highPrice   float64
	marketProb  float64
	iocEvery    int
	toIndex     func(decimal.Decimal) (int, error)
	eventsEmit  int
}

// NewGenerator builds a Generator seeded deterministically from seed,
// drawing limit prices uniformly from [low, high] and mapping them to
// tick indices with toIndex.
func NewGenerator(seed int64, low, high decimal.Decimal, toIndex func(decimal.Decimal) (int, error)) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		lowPrice:   mustFloat(low),
		highPrice:  mustFloat(high),
		marketProb: 0.03,
		iocEvery:   200,
		toIndex:    toIndex,
	}
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Next produces the next Event in the stream.
func (g *Generator) Next() (Event, error) {
	defer func() { g.eventsEmit++ }()

	side := protocol.SideBuy
	if g.rng.Float64() < 0.5 {
		side = protocol.SideSell
	}
	qty := int64(g.rng.Intn(100) + 1)

	if g.rng.Float64() < g.marketProb {
		return Event{Type: protocol.OrderTypeMarket, Side: side, Qty: qty}, nil
	}

	price := g.lowPrice + g.rng.Float64()*(g.highPrice-g.lowPrice)
	idx, err := g.toIndex(decimal.NewFromFloat(price))
	if err != nil {
		return Event{}, err
	}

	tif := protocol.TimeInForceGFD
	if g.eventsEmit%g.iocEvery == 0 && g.eventsEmit > 0 {
		tif = protocol.TimeInForceIOC
	}
	return Event{Type: protocol.OrderTypeLimit, Side: side, PriceIdx: idx, Qty: qty, TIF: tif}, nil
}

// NextCancelTarget draws a pseudo-random client id in [1, maxClientID],
// used by the demo driver's periodic cancel probe.
func (g *Generator) NextCancelTarget(maxClientID int64) int64 {
	if maxClientID <= 0 {
		return 0
	}
	return g.rng.Int63n(maxClientID) + 1
}
