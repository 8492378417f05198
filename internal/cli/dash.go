package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

type DashCmd struct {
	Calendar bool `help:"Also print this month's calendar"`
}

func (c *DashCmd) Run(g *Global) error {
	tasks := g.Store.LoadTasks(g.Ctx)
	projects := g.Store.LoadProjects(g.Ctx)
	counters := model.ComputeCounters(tasks, projects)
	t := ui.Current()

	now := g.Clock.Now()
	lines := []string{
		t.Title.Render("Dashboard") + "  " + t.Muted.Render(now.Format("Monday, January 2, 2006")),
		"",
		fmt.Sprintf("%s %d   %s %d   %s %d   %s %d%%",
			t.Pending.Render("Today's tasks"), counters.Incomplete,
			t.Success.Render("Completed"), counters.Completed,
			t.Accent.Render("Active projects"), counters.ActiveProjects,
			t.Title.Render("Productivity"), counters.ProductivityScore,
		),
		fmt.Sprintf("%s %d", t.Muted.Render("Focus sessions"), g.Store.Sessions(g.Ctx)),
		"",
		t.Accent.Render("Focus"),
	}
	lines = append(lines, taskLines(model.SelectDashboardTasks(tasks))...)

	out := ui.Panel(lines)
	if c.Calendar {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, " ", ui.Panel(ui.CalendarLines(now, now)))
	}
	fmt.Fprintln(g.Stdout, out)
	return nil
}
