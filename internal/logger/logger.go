// Package logger holds the process-wide slog logger. It discards everything
// until Setup installs a handler.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// ErrInvalid reports an unknown level or format.
var ErrInvalid = errors.New("logger: invalid setting")

// Config selects where and how log records are written.
type Config struct {
	// Level is debug, info, warn or error; empty means info.
	Level string
	// Format is text or json; empty means text.
	Format string
	// Debug forces debug level and source locations.
	Debug bool
	// Writer receives records; nil means os.Stderr.
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a handler built from cfg as the global logger.
// On error the global logger is left discarding.
func Setup(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		Reset()
		return err
	}
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		Reset()
		return fmt.Errorf("%w: format %q", ErrInvalid, cfg.Format)
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	return nil
}

// ParseLevel maps a level name to its slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: level %q", ErrInvalid, s)
}

// L returns the global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

// Reset restores the discarding logger.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
