package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the level of the toolkit's debug logger.
// Default is LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

func init() {
	if os.Getenv("GUI_DEBUG") != "" {
		guiLogLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose enables or disables debug logging for toolkit internals.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
