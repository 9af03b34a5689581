package tickbook

// EngineVersion is the current version of the matching engine core.
const EngineVersion = "v1.0.0"

// Defaults used when an EngineOption is not supplied at construction time.
// All of these are construction-time constants per the engine's external
// contract: changing them is a rebuild, not a runtime option.
const (
	DefaultLevels             = 20001 // odd, gives a natural mid-book index
	DefaultTick               = "0.01"
	DefaultFloorPrice         = "0.00"
	DefaultPoolCapacity       = 1 << 20
	DefaultLevelRingCapacity  = 4096
	DefaultClientIndexBuckets = 1 << 16
)

// NoIndex is the sentinel price-level index meaning "no side" — used for
// best_bid/best_ask when a side of the book is empty. It is a named plain
// int (-1), not a distinct type; tick indices are signed ints, and the
// compiler does not stop NoIndex from being used in index arithmetic.
const NoIndex = -1
