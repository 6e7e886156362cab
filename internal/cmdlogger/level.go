package cmdlogger

import (
	"fmt"
	"log/slog"
	"strings"
)

// levelNames maps the --verbosity and log_level values to slog levels, from
// the quietest to the most verbose.
var levelNames = []struct {
	name  string
	level slog.Level
}{
	{name: "error", level: slog.LevelError},
	{name: "warn", level: slog.LevelWarn},
	{name: "info", level: slog.LevelInfo},
	{name: "debug", level: slog.LevelDebug},
}

// Levels lists the accepted level names, quietest first.
func Levels() []string {
	names := make([]string, 0, len(levelNames))
	for _, l := range levelNames {
		names = append(names, l.name)
	}

	return names
}

// ParseLevel converts a level name to its slog level. Unknown names return
// an error and slog.LevelInfo.
func ParseLevel(text string) (slog.Level, error) {
	for _, l := range levelNames {
		if l.name == text {
			return l.level, nil
		}
	}

	return slog.LevelInfo, fmt.Errorf("invalid verbosity level \"%s\" - must be one of: %s", text, strings.Join(Levels(), ", "))
}
