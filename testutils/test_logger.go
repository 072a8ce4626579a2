package testutils

import (
	"io"

	"github.com/solidrace/solidrace/pkg/logging"
	"go.uber.org/zap/zapcore"
)

// NewTestLogger creates a debug-level logger that discards its output.
func NewTestLogger() logging.Logger {
	logging.InitLogger("debug", "dev", zapcore.AddSync(io.Discard))
	return logging.GetLogger()
}
