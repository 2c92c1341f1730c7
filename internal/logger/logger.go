// Package logger owns the process-wide structured logger. Everything logs
// through slog; this package decides the handler, the level and the
// component tag each process (server, seeder) carries on every line.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/Tw1zzzzz/CisBot2/internal/config"
)

// DefaultComponent tags log lines when the config names no component.
const DefaultComponent = "finder_engine"

// Options selects the handler for the global logger. A nil Output means
// os.Stdout.
type Options struct {
	Level      string
	JSON       bool
	Component  string
	WithSource bool
	Output     io.Writer
}

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// InitFromConfig initializes the global logger from app config.
func InitFromConfig(c *config.Config) {
	if c == nil {
		Init(Options{})
		return
	}
	Init(Options{
		Level:      c.Log.Level,
		JSON:       strings.EqualFold(c.Log.Format, "json"),
		Component:  c.Log.Component,
		WithSource: c.Log.Source,
	})
}

// Init sets up the global logger. Safe to call multiple times.
func Init(o Options) {
	mu.Lock()
	defer mu.Unlock()
	logger = build(o)
}

func build(o Options) *slog.Logger {
	out := o.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(o.Level),
		AddSource: o.WithSource,
	}

	var handler slog.Handler
	if o.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		opts.ReplaceAttr = humanTime
		handler = slog.NewTextHandler(out, opts)
	}

	component := o.Component
	if component == "" {
		component = DefaultComponent
	}
	return slog.New(handler).With("component", component)
}

// humanTime renders text-format timestamps without sub-second noise; JSON
// output keeps the machine-readable default.
func humanTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.String(slog.TimeKey, a.Value.Time().Format("2006-01-02 15:04:05"))
	}
	return a
}

// L returns the global logger. Always returns a non-nil instance.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	Init(Options{})

	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With creates a child logger with additional attributes.
func With(args ...any) *slog.Logger { return L().With(args...) }

func parseLevel(s string) slog.Level {
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
