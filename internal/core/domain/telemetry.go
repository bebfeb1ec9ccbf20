package domain

import "log/slog"

// LogLevel is the severity of a message logged on a telemetry vertex.
type LogLevel = slog.Level

// Levels accepted by telemetry vertices.
const (
	LogLevelDebug = slog.LevelDebug
	LogLevelInfo  = slog.LevelInfo
	LogLevelWarn  = slog.LevelWarn
	LogLevelError = slog.LevelError
)
