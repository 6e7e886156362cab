// Package output renders solved puzzles for people and machines.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/waterjug"
)

// Format selects a renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
)

var formats = []Format{FormatTable, FormatText, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}

	return "", fmt.Errorf("unsupported format %q - must be one of: %s", name, strings.Join(names, ", "))
}

// Report is everything a renderer needs about one solved instance.
type Report struct {
	Profile Profile
	Puzzle  waterjug.Puzzle
	Result  waterjug.Result
}

// Print writes the report in the given format. terminalWidth is 0 when the
// writer is not a terminal.
func Print(w io.Writer, format Format, report Report, terminalWidth int) error {
	switch format {
	case FormatTable:
		return printTable(w, report, terminalWidth)
	case FormatText:
		return printText(w, report)
	case FormatJSON:
		return printJSON(w, report)
	}

	return fmt.Errorf("unsupported format %q", format)
}
