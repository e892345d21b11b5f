package imkit

import (
	"log/slog"
	"os"
)

// logLevel is shared by every logger created in this package.
var logLevel = new(slog.LevelVar)

// logger is the package default; sessions may replace it with WithLogger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables debug logging for identity, state and style events.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
