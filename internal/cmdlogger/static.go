package cmdlogger

import "log/slog"

// SendEverythingToStderr tells the default logger (if it is a [Handler]) to
// send all logs to stderr regardless of their level.
func SendEverythingToStderr() {
	if l, ok := slog.Default().Handler().(*Handler); ok {
		l.SendEverythingToStderr()
	}
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError], assuming the logger is a [Handler].
//
// If the logger is not a [Handler], this will always return false.
func HasErrored() bool {
	if l, ok := slog.Default().Handler().(*Handler); ok {
		return l.HasErrored()
	}

	return false
}

func SetLevel(level slog.Leveler) {
	if l, ok := slog.Default().Handler().(*Handler); ok {
		l.SetLevel(level)
	}
}
