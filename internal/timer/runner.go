package timer

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Update is what a Runner reports after every tick.
type Update struct {
	Remaining int
	State     State
	Sessions  int
	Expired   bool
}

// Runner drives a Timer from a one-second clock ticker. It must be the only
// goroutine touching the Timer while Run is active.
type Runner struct {
	timer    *Timer
	clock    clockwork.Clock
	onUpdate func(Update)
}

func NewRunner(t *Timer, clock clockwork.Clock, onUpdate func(Update)) *Runner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if onUpdate == nil {
		onUpdate = func(Update) {}
	}
	return &Runner{timer: t, clock: clock, onUpdate: onUpdate}
}

// Run starts the timer and counts down until it expires or ctx is done.
// On cancellation the timer is paused and ctx.Err() returned.
func (r *Runner) Run(ctx context.Context) error {
	cycle, started := r.timer.Start()
	if !started {
		cycle = r.timer.Cycle()
	}
	ticker := r.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.timer.Pause()
			return ctx.Err()
		case <-ticker.Chan():
			expired := r.timer.Tick(cycle)
			r.onUpdate(Update{
				Remaining: r.timer.Remaining(),
				State:     r.timer.State(),
				Sessions:  r.timer.Sessions(),
				Expired:   expired,
			})
			if expired || r.timer.Cycle() != cycle {
				return nil
			}
		}
	}
}
