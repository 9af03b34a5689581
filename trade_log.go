package tickbook

// TradeLog is an append-only record of every fill the engine produces.
// The core is single-threaded, so unlike the teacher's publish trader
// this needs no lock: Append and the read accessors all run on the same
// call stack as the match loop.
type TradeLog interface {
	Append(trades ...Trade)
}

// MemoryTradeLog keeps every trade in memory, in emission order. It is
// the default log for tests and the CLI demo driver.
type MemoryTradeLog struct {
	trades []Trade
}

// NewMemoryTradeLog returns an empty in-memory trade log.
func NewMemoryTradeLog() *MemoryTradeLog {
	return &MemoryTradeLog{trades: make([]Trade, 0)}
}

func (m *MemoryTradeLog) Append(trades ...Trade) {
	m.trades = append(m.trades, trades...)
}

// Count returns the number of trades recorded.
func (m *MemoryTradeLog) Count() int { return len(m.trades) }

// At returns the trade at index, in emission order.
func (m *MemoryTradeLog) At(index int) Trade { return m.trades[index] }

// All returns every trade recorded, in emission order. The returned
// slice aliases the log's internal storage and must not be mutated.
func (m *MemoryTradeLog) All() []Trade { return m.trades }

// DiscardTradeLog drops every trade it receives. Useful for throughput
// benchmarks where retaining fills would dominate allocation cost.
type DiscardTradeLog struct{}

// NewDiscardTradeLog returns a trade log that discards everything appended.
func NewDiscardTradeLog() *DiscardTradeLog { return &DiscardTradeLog{} }

func (*DiscardTradeLog) Append(trades ...Trade) {}
