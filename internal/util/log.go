package util

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the program logger. The terminal belongs to the UI, so logs only
// go to files; with no file configured everything is discarded. The returned
// closer releases any files that were opened.
func NewLogger(cfg Config) (*slog.Logger, func() error, error) {
	var (
		handlers []slog.Handler
		files    []*os.File
	)
	closeAll := func() error {
		var first error
		for _, f := range files {
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	if cfg.LogFile != "" {
		f, err := openLog(cfg.LogFile)
		if err != nil {
			return nil, closeAll, err
		}
		files = append(files, f)
		handlers = append(handlers, slog.NewTextHandler(f, opts))
	}
	if cfg.LogJSONFile != "" {
		f, err := openLog(cfg.LogJSONFile)
		if err != nil {
			_ = closeAll()
			return nil, func() error { return nil }, err
		}
		files = append(files, f)
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}
	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(io.Discard, opts))
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeAll, nil
}

func openLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return f, nil
}

// ParseLevel maps a config level name to a slog level; unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch name {
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
