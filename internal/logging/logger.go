// Package logging builds the structured logger used by cmd/netflow and,
// when a caller opts in via flow.WithLogger, by the solver packages.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the logger's level, encoding, and destination.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output string // stdout, stderr, file
	File   RotationConfig
}

// RotationConfig configures lumberjack's rotating file sink. Only
// consulted when Config.Output == "file".
type RotationConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a *slog.Logger from cfg. Zero-value Config yields an info
// level, text-format logger on stdout.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(cfg.Level)}

	writer := writerFor(cfg)
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	return slog.New(handler)
}

func level(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func writerFor(cfg Config) io.Writer {
	switch cfg.Output {
	case "stderr":
		return os.Stderr
	case "file":
		path := cfg.File.Path
		if path == "" {
			path = "logs/netflow.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return os.Stdout
		}
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
	default:
		return os.Stdout
	}
}
