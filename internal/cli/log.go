// Package cli implements the graphlift command-line interface.
//
// This package provides commands for converting dependency-analysis
// documents into unified graphs, rendering them as diagrams, inspecting
// them interactively, and running the HTTP API. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Convert an analysis document into a unified graph
//   - detect: Report which ecosystem an analysis document came from
//   - render: Generate DOT, SVG, or PNG diagrams from a graph
//   - inspect: Browse a graph's nodes interactively
//   - serve: Run the conversion HTTP API
//   - cache: Manage the conversion cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/graphlift/graphlift/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger all commands share. Output goes to w
// (stderr in production) so stdout stays free for graph and artifact
// data.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// startProgress captures the current time and returns a function that
// logs its argument with the elapsed duration appended, e.g.
// "Converted 42 nodes and 57 edges (1.234s)".
func startProgress(l *log.Logger) func(msg string) {
	start := time.Now()
	return func(msg string) {
		l.Infof("%s (%s)", msg, time.Since(start).Round(time.Millisecond))
	}
}

// loggerCtxKey is unexported so only this package can install loggers.
type loggerCtxKey struct{}

// withLogger attaches l to ctx for retrieval by loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger installed by the root command,
// or log.Default when the command is executed outside the usual
// wiring (tests building commands directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
