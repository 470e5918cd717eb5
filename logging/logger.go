// Package logging builds the zap loggers shared by the backend and the browse client.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON logger for production and a console logger otherwise.
// level accepts zap level names ("debug", "info", ...); empty keeps the
// config default. outputs replaces stderr, e.g. with a file for the browse
// client whose screen belongs to the terminal UI.
func New(env, level string, outputs ...string) (*zap.Logger, error) {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	if len(outputs) > 0 {
		config.OutputPaths = outputs
		config.ErrorOutputPaths = outputs
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Install builds a logger and makes it the process-wide zap.L().
// The returned function restores the previous global and flushes buffers.
func Install(env, level string, outputs ...string) (func(), error) {
	logger, err := New(env, level, outputs...)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}
