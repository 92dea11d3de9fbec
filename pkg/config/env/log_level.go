package env

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel maps debug, info, warn and error to slog levels. Anything else is info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogLevel applies LOG_LEVEL to the default slog logger and returns the level used.
func SetupLogLevel() slog.Level {
	level := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	slog.SetLogLoggerLevel(level)
	return level
}
