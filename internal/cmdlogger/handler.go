// Package cmdlogger provides the slog handler used by the jugsolver commands.
package cmdlogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Handler writes plain log lines, sending errors to stderr and everything else
// to stdout.
type Handler struct {
	mu                 sync.Mutex
	stdout             io.Writer
	stderr             io.Writer
	hasErrored         bool
	everythingToStderr bool
	level              slog.Leveler
}

var _ slog.Handler = &Handler{}

// New returns a handler logging at info level.
func New(stdout, stderr io.Writer) *Handler {
	return &Handler{
		stdout: stdout,
		stderr: stderr,
		level:  slog.LevelInfo,
	}
}

// SendEverythingToStderr tells the logger to send all logs to stderr regardless
// of their level.
//
// This is needed when structured data such as JSON is written to stdout.
func (c *Handler) SendEverythingToStderr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.everythingToStderr = true
}

func (c *Handler) SetLevel(level slog.Leveler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

func (c *Handler) writer(level slog.Level) io.Writer {
	if c.everythingToStderr || level >= slog.LevelError {
		return c.stderr
	}

	return c.stdout
}

func (c *Handler) Enabled(_ context.Context, level slog.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return level >= c.level.Level()
}

func (c *Handler) Handle(_ context.Context, record slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if record.Level >= slog.LevelError {
		c.hasErrored = true
	}

	line := record.Message
	record.Attrs(func(attr slog.Attr) bool {
		line += " " + attr.String()
		return true
	})

	_, err := fmt.Fprint(c.writer(record.Level), line+"\n")

	return err
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError]
func (c *Handler) HasErrored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErrored
}

// WithAttrs is not supported: the handler only formats per-record attributes.
func (c *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

func (c *Handler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}
