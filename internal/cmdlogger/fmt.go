package cmdlogger

import (
	"fmt"
	"log/slog"
)

// Debugf logs a formatted message at debug level, such as per-search
// expansion counts or HTTP request lines.
func Debugf(msg string, args ...any) {
	slog.Debug(fmt.Sprintf(msg, args...))
}

// Infof logs a formatted message at info level on the default logger.
func Infof(msg string, args ...any) {
	slog.Info(fmt.Sprintf(msg, args...))
}

// Warnf logs a formatted message at warn level on the default logger.
func Warnf(msg string, args ...any) {
	slog.Warn(fmt.Sprintf(msg, args...))
}

// Errorf logs a formatted message at error level. With a [Handler] installed
// this marks the run as failed, which the CLI turns into a non-zero exit code.
func Errorf(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}
