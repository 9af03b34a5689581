package workload

import (
	"math/rand"

	"github.com/axiomtick/tickbook/protocol"
)

// PreloadEvent is one resting order to seed onto the book before a
// simulation run starts generating crossing flow.
type PreloadEvent struct {
	Side     protocol.Side
	PriceIdx int
	Qty      int64
}

// Preload generates count resting orders straddling centerIdx: odd
// positions buy below center, even positions sell above it, spread by a
// uniform random tick offset capped at spreadTicks. This mirrors seeding
// a thin, two-sided book before a workload starts crossing it.
func Preload(seed int64, centerIdx, spreadTicks, count int) []PreloadEvent {
	rng := rand.New(rand.NewSource(seed))
	events := make([]PreloadEvent, 0, count)
	for i := 0; i < count; i++ {
		offset := rng.Intn(spreadTicks + 1)
		var idx int
		var side protocol.Side
		if i&1 == 1 {
			idx = centerIdx - offset
			side = protocol.SideBuy
		} else {
			idx = centerIdx + offset
			side = protocol.SideSell
		}
		qty := int64(i&7) + 1
		events = append(events, PreloadEvent{Side: side, PriceIdx: idx, Qty: qty})
	}
	return events
}
