// Package record keeps the task and project collections and the finished
// session counter in a store.Medium.
//
// Every mutating operation is its own load -> change -> save cycle against
// the medium. Nothing is cached between calls, so the medium stays the
// source of truth; the price is that two processes mutating the same key
// concurrently overwrite each other (last write wins).
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/Makepad-fr/focusdash/internal/logging"
	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyText    = fmt.Errorf("%w: task text is empty", ErrInvalidInput)
	ErrEmptyTitle   = fmt.Errorf("%w: project title is empty", ErrInvalidInput)
	ErrNotFound     = errors.New("record not found")
)

// Record is anything stored in a collection.
type Record interface {
	RecordID() int64
}

// Key names a persisted collection and the data it falls back to.
type Key[T Record] struct {
	Name   string
	Sample func() []T
}

var (
	Tasks    = Key[model.Task]{Name: "tasks", Sample: model.SampleTasks}
	Projects = Key[model.Project]{Name: "projects", Sample: model.SampleProjects}
)

// SessionsKey holds the completed focus session count as a decimal string.
const SessionsKey = "pomodoroSessions"

type Store struct {
	medium   store.Medium
	clock    clockwork.Clock
	log      *slog.Logger
	sessions int
}

type Option func(*Store)

// WithClock sets the clock used to mint record ids.
func WithClock(c clockwork.Clock) Option { return func(s *Store) { s.clock = c } }

func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.log = l } }

func New(m store.Medium, opts ...Option) *Store {
	s := &Store{
		medium: m,
		clock:  clockwork.NewRealClock(),
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Medium exposes the underlying medium.
func (s *Store) Medium() store.Medium { return s.medium }

// LoadCollection returns the records stored under key. A missing, empty or
// undecodable value yields a fresh copy of key's sample data; read errors
// are logged and treated the same way.
func LoadCollection[T Record](ctx context.Context, s *Store, key Key[T]) []T {
	raw, ok, err := s.medium.Get(ctx, key.Name)
	if err != nil {
		s.log.Warn("Read failed, using sample data", logging.Key(key.Name), logging.Err(err))
		return key.Sample()
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return key.Sample()
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Debug("Malformed collection, using sample data", logging.Key(key.Name), logging.Err(err))
		return key.Sample()
	}
	if records == nil {
		return key.Sample()
	}
	return records
}

// SaveCollection overwrites key with records.
func SaveCollection[T Record](ctx context.Context, s *Store, key Key[T], records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key.Name, err)
	}
	if err := s.medium.Set(ctx, key.Name, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key.Name, err)
	}
	return nil
}

// Mutate loads key, applies fn and saves the result. When fn fails nothing
// is written.
func Mutate[T Record](ctx context.Context, s *Store, key Key[T], fn func([]T) ([]T, error)) error {
	records, err := fn(LoadCollection(ctx, s, key))
	if err != nil {
		return err
	}
	return SaveCollection(ctx, s, key, records)
}

// updateByID runs fn on the record with id inside a Mutate cycle.
func updateByID[T Record](ctx context.Context, s *Store, key Key[T], id int64, fn func(*T)) (T, error) {
	var updated T
	err := Mutate(ctx, s, key, func(records []T) ([]T, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, fmt.Errorf("%s %d: %w", key.Name, id, ErrNotFound)
		}
		fn(&records[i])
		updated = records[i]
		return records, nil
	})
	return updated, err
}

func indexOf[T Record](records []T, id int64) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// nextID mints an id from the clock, bumped past every existing id so ids
// stay unique and increasing even when the clock stalls or goes back.
func nextID[T Record](s *Store, records []T) int64 {
	id := s.clock.Now().UnixMilli()
	for _, r := range records {
		if r.RecordID() >= id {
			id = r.RecordID() + 1
		}
	}
	return id
}

// Sessions reads the persisted session counter. Missing or unparsable
// values count as zero.
func (s *Store) Sessions(ctx context.Context) int {
	raw, ok, err := s.medium.Get(ctx, SessionsKey)
	if err != nil {
		s.log.Warn("Read failed, assuming no sessions", logging.Key(SessionsKey), logging.Err(err))
		ok = false
	}
	n := 0
	if ok {
		if v, perr := strconv.Atoi(strings.TrimSpace(raw)); perr == nil && v > 0 {
			n = v
		}
	}
	s.sessions = n
	return n
}

// SetSessions persists n as the session counter.
func (s *Store) SetSessions(ctx context.Context, n int) error {
	if n < 0 {
		n = 0
	}
	if err := s.medium.Set(ctx, SessionsKey, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("save %s: %w", SessionsKey, err)
	}
	s.sessions = n
	return nil
}

// SaveSessions lets the focus timer persist its counter.
func (s *Store) SaveSessions(n int) error {
	return s.SetSessions(context.Background(), n)
}

// CachedSessions is the last counter value read or written by this Store.
func (s *Store) CachedSessions() int { return s.sessions }

// ClearConfirmation is the question asked before ClearAll.
const ClearConfirmation = "Are you sure you want to clear all data? This will reset tasks, projects, and timer sessions."

// ClearAll removes every persisted key. The next loads return sample data.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, k := range []string{Tasks.Name, Projects.Name, SessionsKey} {
		if err := s.medium.Remove(ctx, k); err != nil {
			return fmt.Errorf("remove %s: %w", k, err)
		}
	}
	s.sessions = 0
	s.log.Info("Cleared all data")
	return nil
}
