package output

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the width of f if it is a terminal, and 0 otherwise.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}
