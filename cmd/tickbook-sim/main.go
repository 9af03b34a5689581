// Command tickbook-sim drives a MatchingEngine with synthetic order flow
// and reports throughput, reproducing the original reference program's
// demo loop: preload a two-sided book, replay a generated stream of
// limit/IOC/market orders with periodic cancels, then print a summary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/shopspring/decimal"

	"github.com/axiomtick/tickbook"
	"github.com/axiomtick/tickbook/internal/workload"
	"github.com/axiomtick/tickbook/protocol"
)

func main() {
	var (
		total       = flag.Int("events", 500_000, "number of workload events to replay")
		preloadSize = flag.Int("preload", 100_000, "number of resting orders to seed before replay")
		seed        = flag.Int64("seed", 123, "workload PRNG seed")
		cancelEvery = flag.Int("cancel-every", 10_000, "replay a cancel probe every N events (0 disables)")
	)
	flag.Parse()

	runID := xid.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("run_id", runID.String(), "engine_version", tickbook.EngineVersion)
	tickbook.SetLogger(logger)
	logger.Info("starting simulation run")

	engine := tickbook.NewMatchingEngine(
		decimal.RequireFromString("0.00"),
		decimal.RequireFromString("0.01"),
		tickbook.WithLevels(20001),
		tickbook.WithPoolCapacity(1<<20),
		tickbook.WithLevelRingCapacity(4096),
	)

	logger.Info("preloading book", "orders", *preloadSize)
	var nextClientID int64
	for _, ev := range workload.Preload(42, 5000, 2000, *preloadSize) {
		nextClientID++
		if _, err := engine.PlaceLimit(nextClientID, ev.Side, ev.PriceIdx, ev.Qty, tickbook.GFD); err != nil {
			logger.Warn("preload order rejected", "error", err)
		}
	}
	logger.Info("preload done, starting workload", "events", *total)

	gen := workload.NewGenerator(*seed,
		decimal.RequireFromString("49.00"), decimal.RequireFromString("51.00"),
		engine.PriceMapper().ToIndex)

	start := time.Now()
	for i := 0; i < *total; i++ {
		ev, err := gen.Next()
		if err != nil {
			logger.Warn("workload event skipped", "error", err)
			continue
		}
		nextClientID++

		switch ev.Type {
		case protocol.OrderTypeMarket:
			if _, err := engine.PlaceMarket(nextClientID, ev.Side, ev.Qty); err != nil {
				logger.Warn("market order rejected", "error", err)
			}
		default:
			if _, err := engine.PlaceLimit(nextClientID, ev.Side, ev.PriceIdx, ev.Qty, ev.TIF); err != nil {
				logger.Warn("limit order rejected", "error", err)
			}
		}

		if *cancelEvery > 0 && i > 0 && i%*cancelEvery == 0 {
			target := gen.NextCancelTarget(nextClientID)
			engine.Cancel(target)
		}
	}
	elapsed := time.Since(start)

	trades := engine.Trades().(*tickbook.MemoryTradeLog)
	fmt.Printf("Done. Events: %d  Time: %s  Throughput: %.0f events/s\n",
		*total, elapsed, float64(*total)/elapsed.Seconds())
	fmt.Printf("Trades: %d\n", trades.Count())

	shown := trades.Count()
	if shown > 10 {
		shown = 10
	}
	for i := 0; i < shown; i++ {
		tr := trades.At(i)
		price := engine.PriceMapper().ToPrice(tr.PriceIdx)
		fmt.Printf("%d: taker=%d maker=%d qty=%d price=%s\n",
			i, tr.TakerClientID, tr.MakerClientID, tr.Qty, price.StringFixed(2))
	}
}
