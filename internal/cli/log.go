// Package cli implements the graphtool command-line interface.
//
// graphtool runs images through the graph model: it decodes a file into a
// Graph, then inspects it, converts it to another color type, or crops a
// region through a read-only quote and optionally zooms it.
//
// # Commands
//
//   - info: print geometry, color type and GPU upload layout
//   - convert: re-encode pixels in another color type
//   - crop: cut a region through a quote, optionally scaling it
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The same
// logger is installed as the library logger, so graph allocation and quote
// lifecycle events show up alongside command output.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gogpu/uistyle"
)

// newLogger creates a logger writing to w at level, with timestamps
// formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// installLogger routes library logging through l.
func installLogger(l *log.Logger) {
	uistyle.SetLogger(slog.New(l))
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Wrote out.png (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
