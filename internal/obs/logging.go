// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger used by both binaries.
var Logger *slog.Logger

// InitLogger initializes the global Logger with a JSON handler at
// info level. Call once at process start.
func InitLogger() {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	Logger = slog.New(h)
}

// InitTextLogger initializes the global Logger writing human-readable
// lines to stderr. The terminal client uses this so stdout stays free
// for tables and exports.
func InitTextLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	Logger = slog.New(h)
}
