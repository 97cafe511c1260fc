package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/rocket-lander/constants"
)

// setupLogging builds the file logger; the terminal owns stdout so nothing is written there
// Disabled logging returns a no-op logger. A previous log above MaxLogSize is rotated aside
func setupLogging(enabled bool, dir string, level zapcore.Level) (*zap.Logger, func(), error) {
	if !enabled {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > constants.MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("lander-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	// Route stray stdlib log output into the file as well
	restore := zap.RedirectStdLog(logger)

	return logger, func() {
		restore()
		_ = logger.Sync()
	}, nil
}
