// Package cli implements the geocore command-line interface.
//
// The CLI reads drill holes from JSON or XLSX files, draws them as a
// stratigraphic profile and exports the result. It is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw a profile and export it as SVG, PNG or JPEG
//   - view: Interactive terminal viewer for a profile session
//   - order: Print the hole order for a direction
//   - convert: Convert an XLSX workbook to JSON
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/geocore/geocore/internal/cli"
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

	"github.com/geocore/geocore/pkg/notify"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 holes (12ms)"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logLevel maps a notification level onto a log level.
func logLevel(l notify.Level) log.Level {
	switch l {
	case notify.Critical:
		return log.ErrorLevel
	case notify.Warning:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}

// logNotifier mirrors notifications into a logger.
type logNotifier struct {
	logger *log.Logger
}

func (n logNotifier) Notify(title, message string, level notify.Level) {
	n.logger.Log(logLevel(level), message, "title", title)
}
