// Package logging configures structured logging for a pipeline run.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Level parses a level name; unknown names map to info.
func Level(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New creates a logger tagged with a fresh run id and sets it as the default.
func New(level string, jsonFormat bool, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}
	options := &slog.HandlerOptions{
		Level: Level(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(dest, options)
	} else {
		handler = slog.NewTextHandler(dest, options)
	}
	logger := slog.New(handler).With("run", uuid.NewString())
	slog.SetDefault(logger)
	return logger
}
