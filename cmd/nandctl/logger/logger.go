// Package logger holds the process-wide slog logger used by nandctl.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init is called.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "nandctl-"
	logSuffix     = ".log"
	retentionDays = 14
)

// Options configures Init.
type Options struct {
	Verbose bool       // text events on Stderr
	LogDir  string     // also append JSON events to a dated file here
	Level   slog.Level // minimum level; LevelDebug when Verbose, else LevelInfo
	Stderr  io.Writer  // defaults to os.Stderr
}

// Init replaces L according to opts. With neither Verbose nor LogDir set
// logging stays off.
func Init(opts Options) error {
	level := opts.Level
	if level == 0 && opts.Verbose {
		level = slog.LevelDebug
	}

	var handlers []slog.Handler
	if opts.Verbose {
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
	if opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
			return err
		}
		cleanOldLogs(opts.LogDir, time.Now())

		name := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
		f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	switch len(handlers) {
	case 0:
		L = slog.New(slog.DiscardHandler)
	case 1:
		L = slog.New(handlers[0])
	default:
		L = slog.New(fanout(handlers))
	}
	return nil
}

// cleanOldLogs removes dated log files older than the retention window.
// Failures are ignored.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		day, err := time.Parse("2006-01-02", strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}
