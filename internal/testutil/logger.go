package testutil

import (
	"bytes"
	"testing"

	"github.com/GustavoCaso/expensetrack/internal/logger"
)

// TestLogger returns a logger that discards everything.
func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	return logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: "discard",
	})
}

// BufferLogger returns a debug level JSON logger together with the buffer
// it writes to.
func BufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	l := logger.NewWithWriter(logger.Config{
		Level:  logger.LevelDebug,
		Format: logger.FormatJSON,
	}, buf)

	return l, buf
}
