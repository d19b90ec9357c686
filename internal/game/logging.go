package game

import (
	"context"
	"io"
	"log"
	"log/slog"
)

// redirectLogs sends log and slog output to w while the screen owns the
// terminal. The returned function restores the previous destinations.
func redirectLogs(w io.Writer) (restore func()) {
	prevLogger := slog.Default()
	prevWriter := log.Writer()
	prevFlags := log.Flags()

	level := slog.LevelInfo
	if prevLogger.Enabled(context.Background(), slog.LevelDebug) {
		level = slog.LevelDebug
	}

	// Installing a non-default handler also routes the log package through it.
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))

	return func() {
		slog.SetDefault(prevLogger)
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
	}
}
