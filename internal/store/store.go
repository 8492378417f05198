// Package store defines the persistence medium the record store reads and
// writes: a synchronous string-keyed map with whole-value overwrites.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Makepad-fr/focusdash/internal/store/jsonstore"
	"github.com/Makepad-fr/focusdash/internal/store/memstore"
	"github.com/Makepad-fr/focusdash/internal/store/sqlitestore"
)

// Medium is a local key-value store. Values are opaque strings; a Set
// replaces the whole value and is never observed half-written.
//
// No transactions span calls. Two writers doing read-modify-write on the
// same key race and the later Set wins.
type Medium interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the medium for backend. path is ignored by the memory
// backend; an empty path picks the backend's default file. log may be nil.
func Open(backend, path string, log *slog.Logger) (Medium, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return jsonstore.Open(path, jsonstore.WithLogger(log))
	case BackendSQLite:
		if path == "" {
			path = sqlitestore.DefaultFileName
		}
		return sqlitestore.Open(path)
	case BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q (want json, sqlite or memory)", backend)
}

var (
	_ Medium = (*jsonstore.Store)(nil)
	_ Medium = (*sqlitestore.Store)(nil)
	_ Medium = (*memstore.Store)(nil)
)
