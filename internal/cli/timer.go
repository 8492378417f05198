package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/focusdash/internal/timer"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

type TimerCmd struct {
	Minutes int `short:"m" help:"Countdown length in minutes (default: the configured work duration)"`
}

func (c *TimerCmd) Run(g *Global) error {
	if c.Minutes < 0 {
		return usagef("timer: minutes must not be negative, got %d", c.Minutes)
	}
	tm := g.NewTimer()
	if c.Minutes > 0 {
		tm.SetPreset(c.Minutes)
	}

	ctx, stop := signal.NotifyContext(g.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := ui.Current()
	fmt.Fprintf(g.Stdout, "%s  %s  (Ctrl+C to stop)\n", t.Title.Render("Focus"), tm.Format())
	r := timer.NewRunner(tm, g.Clock, func(u timer.Update) {
		if u.Expired {
			return
		}
		fmt.Fprintf(g.Stdout, "\r%s", t.Accent.Render(timer.FormatSeconds(u.Remaining)))
	})

	err := r.Run(ctx)
	fmt.Fprintln(g.Stdout)
	if errors.Is(err, context.Canceled) {
		ui.Hint(g.Stdout, "stopped at "+tm.Format())
		return nil
	}
	if err != nil {
		return err
	}
	ui.OK(g.Stdout, fmt.Sprintf("Time's up! Take a %d-minute break. Sessions completed: %d",
		g.Config.Timer.BreakMinutes, tm.Sessions()))
	return nil
}
