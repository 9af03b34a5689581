package tickbook

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger overrides the package-level logger. The core only logs
// capacity faults and stale-index cancels; it never logs on the hot
// matching path.
func SetLogger(l *slog.Logger) {
	logger = l
}
