// Package eventlog builds the append-only operator event log. Every
// create/update/delete/view/warn action in the system lands here as one
// plain-text line; the file is write-only and never read back.
package eventlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens the event log at path. zap file sinks open with O_APPEND, so
// successive runs accumulate into the same file.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil // every action lands in the log, repeats included
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open event log %s: %w", path, err)
	}
	return logger, nil
}
