package textlayout

import (
	"log/slog"

	"github.com/gogpu/textlayout/internal/logging"
)

// SetLogger configures the logger for textlayout and all its sub-packages.
// By default, textlayout produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by textlayout:
//   - [slog.LevelDebug]: internal diagnostics (shaping path, fallback
//     reasons, cache evictions, font loading)
//
// Example:
//
//	textlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by textlayout.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
