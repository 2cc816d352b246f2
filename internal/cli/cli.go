// Package cli implements the spritefold command line interface.
//
// The tool is a single cobra command: it loads every supported image from
// an input directory, packs them onto a fixed-size canvas, and writes the
// composited atlas plus a JSON mapping sidecar. Grid packing is selected
// by passing --sprite-width and --sprite-height together; otherwise the
// free shelf packer is used.
//
// # Logging
//
// All output goes through charmbracelet/log on stderr. The --verbose flag
// raises the level to debug, which adds per-sprite placement lines. The
// logger travels on the command context so helpers never need a global.
//
// # Exit Codes
//
// The process exit code identifies the failure class so scripts can
// branch on it; see ExitCode.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger used by every run.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default so commands always have a
// usable logger even if context setup was skipped.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
