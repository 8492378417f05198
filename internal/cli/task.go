package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

type TaskCmd struct {
	Add  TaskAddCmd  `cmd:"" help:"Add a new task (text can be multiple words)"`
	Ls   TaskLsCmd   `cmd:"" aliases:"list" help:"List tasks"`
	Done TaskDoneCmd `cmd:"" help:"Toggle completed for a task"`
	Star TaskStarCmd `cmd:"" help:"Toggle priority for a task"`
	Rm   TaskRmCmd   `cmd:"" aliases:"delete" help:"Delete a task"`
}

type TaskAddCmd struct {
	Text []string `arg:"" help:"Task text"`
}

func (c *TaskAddCmd) Run(g *Global) error {
	task, err := g.Store.AddTask(g.Ctx, strings.Join(c.Text, " "))
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	ui.OK(g.Stdout, fmt.Sprintf("added #%d", task.ID))
	return nil
}

type TaskLsCmd struct {
	Filter string `short:"f" enum:"all,active,completed,priority" default:"all" help:"Which tasks to show: all, active, completed or priority"`
	Group  bool   `short:"g" help:"Group output by pending/done"`
}

func (c *TaskLsCmd) Run(g *Global) error {
	f, err := model.ParseFilter(c.Filter)
	if err != nil {
		return usagef("ls: %v", err)
	}
	tasks := g.Store.LoadTasks(g.Ctx)
	t := ui.Current()

	d, p := stats(tasks)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(tasks),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	if f != model.FilterAll {
		lines = append(lines, t.Muted.Render("filter: "+f.String()))
	}
	lines = append(lines, "")

	shown := model.FilterTasks(tasks, f)
	if c.Group {
		lines = append(lines, groupLines(shown)...)
	} else {
		lines = append(lines, taskLines(shown)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `dash task add \"Buy milk\"`"))
	fmt.Fprintln(g.Stdout, ui.Panel(lines))
	return nil
}

type TaskDoneCmd struct {
	ID int64 `arg:"" help:"Task id (see dash task ls)"`
}

func (c *TaskDoneCmd) Run(g *Global) error {
	task, err := g.Store.ToggleTaskComplete(g.Ctx, c.ID)
	if err != nil {
		return notFoundHint(g, "done", err)
	}
	if task.Completed {
		ui.OK(g.Stdout, "completed")
	} else {
		ui.OK(g.Stdout, "reopened")
	}
	return nil
}

type TaskStarCmd struct {
	ID int64 `arg:"" help:"Task id (see dash task ls)"`
}

func (c *TaskStarCmd) Run(g *Global) error {
	task, err := g.Store.ToggleTaskPriority(g.Ctx, c.ID)
	if err != nil {
		return notFoundHint(g, "star", err)
	}
	if task.Priority {
		ui.OK(g.Stdout, "marked as priority")
	} else {
		ui.OK(g.Stdout, "priority removed")
	}
	return nil
}

type TaskRmCmd struct {
	ID int64 `arg:"" help:"Task id (see dash task ls)"`
}

func (c *TaskRmCmd) Run(g *Global) error {
	if err := g.Store.DeleteTask(g.Ctx, c.ID); err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	ui.OK(g.Stdout, "removed")
	return nil
}

func notFoundHint(g *Global, op string, err error) error {
	ui.Hint(g.Stderr, "Hint: run `dash task ls` to see valid ids")
	return fmt.Errorf("%s: %w", op, err)
}
