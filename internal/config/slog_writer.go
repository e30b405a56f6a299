package config

import (
	"bytes"
	"context"
	"log/slog"
)

// slogWriter turns the access log lines written by the bridge into log
// records, one record per line.
type slogWriter struct {
	logger *slog.Logger
	level  slog.Level
}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		w.logger.Log(context.Background(), w.level, string(line), "source", "access")
	}
	return len(p), nil
}
