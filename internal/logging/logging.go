// Package logging sets up the process logger and holds the canonical
// field names used across packages.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	KeyStoreKey = "key"
	KeyRecordID = "record_id"
	KeyBackend  = "backend"
	KeyPath     = "path"
	KeyCycle    = "cycle"
	KeySessions = "sessions"
	KeyError    = "error"
)

func Key(k string) slog.Attr      { return slog.String(KeyStoreKey, k) }
func RecordID(id int64) slog.Attr { return slog.Int64(KeyRecordID, id) }
func Backend(b string) slog.Attr  { return slog.String(KeyBackend, b) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Cycle(c uint64) slog.Attr    { return slog.Uint64(KeyCycle, c) }
func Sessions(n int) slog.Attr    { return slog.Int(KeySessions, n) }
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// Options mirrors the log section of the config file.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // empty: the writer passed to New
}

// ParseLevel maps a level name to slog; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds a logger writing to opt.File, or w when no file is set. The
// returned closer releases the file, if any.
func New(w io.Writer, opt Options) (*slog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	if opt.File != "" {
		if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}
	ho := &slog.HandlerOptions{Level: ParseLevel(opt.Level)}
	var h slog.Handler
	if strings.EqualFold(opt.Format, "json") {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
