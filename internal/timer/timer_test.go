package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	saved []int
	err   error
}

func (f *fakeSessions) SaveSessions(n int) error {
	f.saved = append(f.saved, n)
	return f.err
}

func TestNewDefaults(t *testing.T) {
	tm := New()
	assert.Equal(t, Idle, tm.State())
	assert.Equal(t, Work, tm.Mode())
	assert.Equal(t, 1500, tm.Remaining())
	assert.Equal(t, "25:00", tm.Format())
	assert.Zero(t, tm.Cycle())
}

func TestExpiryMovesToBreak(t *testing.T) {
	sink := &fakeSessions{}
	tm := New(WithSessionStore(sink), WithSessions(2))
	tm.SetPreset(0)
	tm.remaining = 5

	cycle, started := tm.Start()
	require.True(t, started)
	for i := range 4 {
		assert.False(t, tm.Tick(cycle), "tick %d", i+1)
	}
	assert.Equal(t, 1, tm.Remaining())
	assert.True(t, tm.Tick(cycle))

	assert.Equal(t, Idle, tm.State())
	assert.Equal(t, 3, tm.Sessions())
	assert.Equal(t, []int{3}, sink.saved)
	assert.Equal(t, 300, tm.Remaining())
	assert.Equal(t, Break, tm.Mode())
	assert.Zero(t, tm.Cycle())

	assert.False(t, tm.Tick(cycle), "cycle closed on expiry")
	assert.Equal(t, 300, tm.Remaining())
}

func TestExpiryAlwaysLoadsShortBreak(t *testing.T) {
	tm := New()
	for range 5 {
		tm.SetPreset(0)
		c, _ := tm.Start()
		require.True(t, tm.Tick(c))
		assert.Equal(t, 300, tm.Remaining())
	}
	assert.Equal(t, 5, tm.Sessions())
}

func TestSessionStoreErrorIsNotFatal(t *testing.T) {
	tm := New(WithSessionStore(&fakeSessions{err: errors.New("disk full")}))
	tm.SetPreset(0)
	c, _ := tm.Start()
	assert.True(t, tm.Tick(c))
	assert.Equal(t, 1, tm.Sessions())
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	tm := New()
	c1, ok := tm.Start()
	require.True(t, ok)
	c2, ok := tm.Start()
	assert.False(t, ok)
	assert.Equal(t, c1, c2)

	tm.Tick(c1)
	assert.Equal(t, 1499, tm.Remaining(), "one tick, one second")
}

func TestPauseResume(t *testing.T) {
	tm := New()
	c1, _ := tm.Start()
	tm.Tick(c1)
	tm.Tick(c1)
	require.Equal(t, 1498, tm.Remaining())

	assert.True(t, tm.Pause())
	assert.Equal(t, Paused, tm.State())
	assert.False(t, tm.Pause(), "already paused")

	assert.False(t, tm.Tick(c1), "tick from the paused cycle is dropped")
	assert.Equal(t, 1498, tm.Remaining())

	c2, ok := tm.Start()
	require.True(t, ok)
	assert.NotEqual(t, c1, c2)
	tm.Tick(c1)
	assert.Equal(t, 1498, tm.Remaining(), "stale cycle still ignored after resume")
	tm.Tick(c2)
	assert.Equal(t, 1497, tm.Remaining())
}

func TestPauseWhenIdleIsNoop(t *testing.T) {
	tm := New()
	assert.False(t, tm.Pause())
	assert.Equal(t, Idle, tm.State())
}

func TestResetFromAnyState(t *testing.T) {
	tm := New(WithDurations(10*time.Minute, time.Minute))
	c, _ := tm.Start()
	tm.Tick(c)
	tm.Reset()
	assert.Equal(t, Idle, tm.State())
	assert.Equal(t, 600, tm.Remaining())
	assert.False(t, tm.Tick(c))
	assert.Equal(t, 600, tm.Remaining())

	tm.Start()
	tm.Pause()
	tm.Reset()
	assert.Equal(t, Idle, tm.State())
}

func TestSetPresetWhileRunning(t *testing.T) {
	tm := New()
	c, _ := tm.Start()
	tm.Tick(c)

	tm.SetPreset(15)
	assert.Equal(t, Idle, tm.State())
	assert.Equal(t, 900, tm.Remaining())
	assert.Zero(t, tm.Cycle())

	for range 3 {
		tm.Tick(c)
	}
	assert.Equal(t, 900, tm.Remaining(), "no decrement until started again")

	c2, _ := tm.Start()
	tm.Tick(c2)
	assert.Equal(t, 899, tm.Remaining())
}

func TestSetPresetClampsNegative(t *testing.T) {
	tm := New()
	tm.SetPreset(-3)
	assert.Equal(t, 0, tm.Remaining())
}

func TestTickZeroCycle(t *testing.T) {
	tm := New()
	assert.False(t, tm.Tick(0))
	tm.Start()
	assert.False(t, tm.Tick(0))
	assert.Equal(t, 1500, tm.Remaining())
}

func TestWithDurationsIgnoresNonPositive(t *testing.T) {
	tm := New(WithDurations(0, -time.Minute))
	assert.Equal(t, 1500, tm.Remaining())
	tm.SetPreset(0)
	c, _ := tm.Start()
	tm.Tick(c)
	assert.Equal(t, 300, tm.Remaining())
}

func TestFormatSeconds(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		5:    "00:05",
		60:   "01:00",
		299:  "04:59",
		1500: "25:00",
		6000: "100:00",
		-4:   "00:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatSeconds(in), "%d", in)
	}
}

func TestProgress(t *testing.T) {
	tm := New(WithDurations(time.Minute, time.Minute))
	assert.Equal(t, 60, tm.Total())
	assert.InDelta(t, 0, tm.Progress(), 1e-9)

	c, _ := tm.Start()
	for range 15 {
		tm.Tick(c)
	}
	assert.InDelta(t, 0.25, tm.Progress(), 1e-9)

	tm.SetPreset(0)
	assert.InDelta(t, 1, tm.Progress(), 1e-9)
}
