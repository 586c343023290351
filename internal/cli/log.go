package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/handiism/art-exposure/internal/exposure"
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

// progressLogger maps pipeline progress events onto log levels.
// Verbose events are logged at debug level and only show with --verbose.
func progressLogger(l *log.Logger) func(exposure.ProgressEvent) {
	return func(e exposure.ProgressEvent) {
		switch e.Level {
		case exposure.LevelVerbose:
			l.Debug(e.Message)
		case exposure.LevelWarning:
			l.Warn(e.Message)
		case exposure.LevelError:
			l.Error(e.Message)
		case exposure.LevelSuccess:
			l.Info(styleSuccess.Render(e.Message))
		default:
			l.Info(e.Message)
		}
	}
}
