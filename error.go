package tickbook

import "errors"

// Sentinel errors returned by the core. Callers compare with errors.Is.
var (
	// ErrRejected is returned when an order is refused before any state
	// change: a FOK that cannot be fully filled, a non-positive quantity,
	// or a limit price index outside [0, L).
	ErrRejected = errors.New("tickbook: order rejected")

	// ErrPoolExhausted is returned when the order pool has no free slot
	// left to admit a resting order. It indicates operator misconfiguration
	// of the pool capacity, not a normal runtime condition.
	ErrPoolExhausted = errors.New("tickbook: order pool exhausted")

	// ErrLevelFull is returned when a price level's FIFO ring is at
	// capacity and cannot accept another resting order.
	ErrLevelFull = errors.New("tickbook: price level full")

	// ErrLevelEmpty is returned by PriceLevel operations that require a
	// resting order and find none.
	ErrLevelEmpty = errors.New("tickbook: price level empty")

	// ErrInvalidPriceIndex is returned when a tick index falls outside the
	// book's configured [0, L) range.
	ErrInvalidPriceIndex = errors.New("tickbook: price index out of range")
)
