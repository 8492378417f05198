// Package timer implements the focus countdown.
//
// A Timer is a plain state machine with no goroutines of its own. Whoever
// drives it (the TUI's tick messages or a Runner) asks Start for a cycle
// number and passes that number back on every Tick. Pause, Reset and
// SetPreset close the cycle, so ticks still in flight from a closed cycle
// are dropped and two decrement loops can never overlap.
package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Makepad-fr/focusdash/internal/logging"
)

const (
	DefaultWork  = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mode only decides what the countdown represents; expiry always loads
// the break duration.
type Mode int

const (
	Work Mode = iota
	Break
)

func (m Mode) String() string {
	if m == Break {
		return "break"
	}
	return "work"
}

// SessionStore persists the completed session counter.
type SessionStore interface {
	SaveSessions(n int) error
}

type Timer struct {
	workSeconds  int
	breakSeconds int

	remaining int
	total     int // length of the countdown last loaded
	state     State
	mode      Mode
	sessions  int

	cycle   uint64 // active cycle, 0 when none
	lastSeq uint64

	store SessionStore
	log   *slog.Logger
}

type Option func(*Timer)

// WithDurations overrides the 25/5 minute work and break lengths.
// Non-positive values keep the default.
func WithDurations(work, brk time.Duration) Option {
	return func(t *Timer) {
		if s := int(work / time.Second); s > 0 {
			t.workSeconds = s
		}
		if s := int(brk / time.Second); s > 0 {
			t.breakSeconds = s
		}
	}
}

func WithSessionStore(s SessionStore) Option { return func(t *Timer) { t.store = s } }

// WithSessions restores a previously persisted counter.
func WithSessions(n int) Option { return func(t *Timer) { t.SetSessions(n) } }

func WithLogger(l *slog.Logger) Option { return func(t *Timer) { t.log = l } }

// New returns an idle timer loaded with the work duration.
func New(opts ...Option) *Timer {
	t := &Timer{
		workSeconds:  int(DefaultWork / time.Second),
		breakSeconds: int(DefaultBreak / time.Second),
		log:          slog.Default(),
	}
	for _, o := range opts {
		o(t)
	}
	t.load(t.workSeconds)
	return t
}

func (t *Timer) Remaining() int   { return t.remaining }
func (t *Timer) Total() int       { return t.total }
func (t *Timer) State() State     { return t.state }
func (t *Timer) Mode() Mode       { return t.mode }
func (t *Timer) Sessions() int    { return t.sessions }
func (t *Timer) Running() bool    { return t.state == Running }
func (t *Timer) WorkSeconds() int { return t.workSeconds }

// Cycle is the active decrement cycle, 0 when the timer is not running.
func (t *Timer) Cycle() uint64 { return t.cycle }

// SetSessions replaces the in-memory counter without persisting it.
func (t *Timer) SetSessions(n int) {
	if n < 0 {
		n = 0
	}
	t.sessions = n
}

// Start moves an idle or paused timer to running and opens a new cycle.
// A running timer is left alone and started is false.
func (t *Timer) Start() (cycle uint64, started bool) {
	if t.state == Running {
		return t.cycle, false
	}
	t.cancel()
	t.lastSeq++
	t.cycle = t.lastSeq
	t.state = Running
	t.log.Debug("Timer started", logging.Cycle(t.cycle), slog.Int("remaining", t.remaining))
	return t.cycle, true
}

// Tick applies one second of countdown for cycle. Ticks for any cycle
// other than the active one are ignored. It reports whether this tick
// finished the countdown.
func (t *Timer) Tick(cycle uint64) (expired bool) {
	if cycle == 0 || cycle != t.cycle || t.state != Running {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		return false
	}

	t.cancel()
	t.state = Idle
	t.sessions++
	if t.store != nil {
		if err := t.store.SaveSessions(t.sessions); err != nil {
			t.log.Warn("Could not persist session count", logging.Sessions(t.sessions), logging.Err(err))
		}
	}
	t.load(t.breakSeconds)
	t.mode = Break
	t.log.Info("Focus session finished", logging.Sessions(t.sessions))
	return true
}

// Pause stops a running countdown, keeping the remaining time.
func (t *Timer) Pause() bool {
	if t.state != Running {
		return false
	}
	t.cancel()
	t.state = Paused
	return true
}

// Reset goes back to an idle work period.
func (t *Timer) Reset() {
	t.cancel()
	t.state = Idle
	t.mode = Work
	t.load(t.workSeconds)
}

// SetPreset loads a countdown of the given length and goes idle.
func (t *Timer) SetPreset(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	t.cancel()
	t.state = Idle
	t.mode = Work
	t.load(minutes * 60)
}

func (t *Timer) cancel() { t.cycle = 0 }

func (t *Timer) load(seconds int) {
	t.remaining = seconds
	t.total = seconds
}

// Progress is the elapsed share of the loaded countdown, 0..1.
func (t *Timer) Progress() float64 {
	if t.total <= 0 {
		return 1
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// Format renders the remaining time as MM:SS.
func (t *Timer) Format() string { return FormatSeconds(t.remaining) }

// FormatSeconds renders n seconds as zero-padded MM:SS. Minutes are not
// capped at 99.
func FormatSeconds(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d:%02d", n/60, n%60)
}
