package tickbook

import "github.com/shopspring/decimal"

// engineConfig holds the construction-time configuration an EngineOption
// mutates. It is never exposed directly; callers only see Option funcs.
type engineConfig struct {
	levels             int
	tick               decimal.Decimal
	floor              decimal.Decimal
	poolCapacity       int
	levelRingCapacity  int
	clientIndexBuckets int
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		levels:             DefaultLevels,
		tick:               decimal.RequireFromString(DefaultTick),
		floor:              decimal.RequireFromString(DefaultFloorPrice),
		poolCapacity:       DefaultPoolCapacity,
		levelRingCapacity:  DefaultLevelRingCapacity,
		clientIndexBuckets: DefaultClientIndexBuckets,
	}
}

// EngineOption configures a MatchingEngine at construction time. The set
// of levels, tick size, floor price, pool capacity, and ring capacity are
// all fixed for the engine's lifetime; there is no runtime resize path.
type EngineOption func(*engineConfig)

// WithLevels sets the number of tick-indexed price levels per side.
func WithLevels(levels int) EngineOption {
	return func(c *engineConfig) { c.levels = levels }
}

// WithTick sets the real-price distance between adjacent tick indices.
func WithTick(tick decimal.Decimal) EngineOption {
	return func(c *engineConfig) { c.tick = tick }
}

// WithFloorPrice sets the real price mapped to tick index 0.
func WithFloorPrice(floor decimal.Decimal) EngineOption {
	return func(c *engineConfig) { c.floor = floor }
}

// WithPoolCapacity sets the fixed number of resting-order slots the order
// pool preallocates. Exceeding it returns ErrPoolExhausted.
func WithPoolCapacity(capacity int) EngineOption {
	return func(c *engineConfig) { c.poolCapacity = capacity }
}

// WithLevelRingCapacity sets the fixed FIFO depth of every price level's
// ring buffer. Exceeding it on a single level returns ErrLevelFull.
func WithLevelRingCapacity(capacity int) EngineOption {
	return func(c *engineConfig) { c.levelRingCapacity = capacity }
}

// WithClientIndexHint sizes the initial client index bucket count. It is
// a hint only: the index grows on demand as new client ids are seen.
func WithClientIndexHint(buckets int) EngineOption {
	return func(c *engineConfig) { c.clientIndexBuckets = buckets }
}
