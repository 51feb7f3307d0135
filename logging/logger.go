// Package logging builds the slog logger shared by the fractal packages.
//
// By default nothing is logged. Programs call SetLogger (usually with the
// result of New) to turn logging on.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger replaces the shared logger. nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Config selects where logs go
type Config struct {
	Name  string
	Level slog.Level
	// Dir, when set, also writes JSON logs to Dir/<name>_<date>.log
	Dir string
	// Stderr defaults to os.Stderr
	Stderr io.Writer
}

// Closer closes the log file, if any
type Closer func() error

// New builds a logger from cfg. The returned Closer must be called to flush
// the log file.
func New(cfg Config) (*slog.Logger, Closer, error) {
	out := cfg.Stderr
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	text := slog.NewTextHandler(out, opts)
	if cfg.Dir == "" {
		return slog.New(text), func() error { return nil }, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	fname := filepath.Join(cfg.Dir, FileName(cfg.Name, time.Now()))
	f, err := os.OpenFile(fname, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := fanout{text, slog.NewJSONHandler(f, opts)}
	return slog.New(h), f.Close, nil
}

// FileName returns "<name>_<yyyy-mm-dd>.log"
func FileName(name string, t time.Time) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
	if name == "" {
		name = "fractals"
	}
	return fmt.Sprintf("%s_%s.log", name, t.Format("2006-01-02"))
}

// ParseLevel accepts debug, info, warn(ing), error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "warning":
		return slog.LevelWarn, nil
	case "trace":
		return slog.LevelDebug, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// fanout sends every record to all handlers
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
