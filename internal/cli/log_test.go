package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/geocore/geocore/pkg/notify"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered 3 holes", "direction", "north-south")

	out := buf.String()
	if !strings.Contains(out, "Rendered 3 holes (") {
		t.Errorf("output = %q, want message with elapsed time", out)
	}
	if !strings.Contains(out, "north-south") {
		t.Errorf("output = %q, want key/value fields", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}
	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogNotifier(t *testing.T) {
	tests := []struct {
		level notify.Level
		want  string
	}{
		{notify.Info, "INFO"},
		{notify.Warning, "WARN"},
		{notify.Critical, "ERRO"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logNotifier{logger: newLogger(&buf, log.InfoLevel)}.Notify("B1", "layer skipped", tt.level)
			out := buf.String()
			if !strings.Contains(out, tt.want) || !strings.Contains(out, "layer skipped") {
				t.Errorf("output = %q, want level %s and message", out, tt.want)
			}
		})
	}
}
