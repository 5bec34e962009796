// Package cli implements the docgraph command-line interface.
//
// Commands:
//   - layout: compute a graph.json from a request file
//   - export: render a request or graph.json as DOT or SVG
//   - schema: print the request JSON Schema
//   - serve: run the HTTP API
//   - cache: inspect and clear the local cache
//
// Logs go to stderr through charmbracelet/log; --verbose enables debug
// output. Results and status lines go to stdout.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of a single sequential operation.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
