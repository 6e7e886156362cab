package cmdlogger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pdrpinto/waterjug/internal/cmdlogger"
)

func TestHandler_SplitsByLevel(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	handler := cmdlogger.New(stdout, stderr)
	logger := slog.New(handler)

	logger.Debug("hidden")
	logger.Info("solving", "goal", 2)
	logger.Error("broken")

	if got := stdout.String(); got != "solving goal=2\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := stderr.String(); got != "broken\n" {
		t.Errorf("stderr = %q", got)
	}
	if !handler.HasErrored() {
		t.Error("expected HasErrored after an error record")
	}
}

func TestHandler_SendEverythingToStderr(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	handler := cmdlogger.New(stdout, stderr)
	handler.SendEverythingToStderr()
	handler.SetLevel(slog.LevelDebug)
	logger := slog.New(handler)

	logger.Debug("expanded")
	logger.Info("done")

	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
	if got := stderr.String(); got != "expanded\ndone\n" {
		t.Errorf("stderr = %q", got)
	}
	if handler.HasErrored() {
		t.Error("no error was logged")
	}
}
