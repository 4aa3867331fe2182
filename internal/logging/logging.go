// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created in the data directory by default.
const FileName = "pcdiag.log"

// Options selects where and how much to log.
type Options struct {
	// File is a path, "stderr" or "stdout". Empty means FileName inside
	// DataDir.
	File    string
	DataDir string
	Level   string
	Verbose bool
}

// New builds a production JSON logger. Verbose forces the debug level.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.Set(opts.Level); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	out, err := Destination(opts)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{out}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Destination resolves the zap output path and creates the parent
// directory of a log file.
func Destination(opts Options) (string, error) {
	switch opts.File {
	case "stderr", "stdout":
		return opts.File, nil
	}

	path := opts.File
	if path == "" {
		if opts.DataDir == "" {
			return "stderr", nil
		}
		path = filepath.Join(opts.DataDir, FileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return path, nil
}
