// Package cli implements the folio command-line interface.
//
// This package provides commands for building the portfolio site, serving it
// locally with live rebuilds, browsing it in the terminal, and managing the
// artifact cache. The CLI is built using cobra, reads settings with viper and
// logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Render HTML, JSON or Markdown into the output directory
//   - serve: Serve the site, expose /metrics, and rebuild on file changes
//   - preview: Browse the composed page in a terminal UI
//   - sections: Print the page outline
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/induwarauthsara/folio/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
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

// newLogger returns the CLI logger. Timestamps use "15:04:05.00"; lines
// carry the folio prefix so they stand apart from server access output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
}

// progress logs the completion of a step with its elapsed time. Not safe for
// concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with an "elapsed" field and any extra keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	kv := append([]any{"elapsed", time.Since(p.start).Round(time.Millisecond)}, keyvals...)
	p.logger.Info(msg, kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for commands and the pipeline runner.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default() when a
// command runs without the root pre-run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
