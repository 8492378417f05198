package cli

import (
	"fmt"

	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

func stats(tasks []model.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func taskLines(tasks []model.Task) []string {
	t := ui.Current()
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskLine(task))
	}
	return out
}

func taskLine(task model.Task) string {
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := ui.Truncate(task.Text, 80)
	if task.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	star := " "
	if task.Priority {
		star = t.Pending.Render(t.SymPriority)
	}
	return fmt.Sprintf("%s %s %s %s", t.Muted.Render(fmt.Sprintf("%13d", task.ID)), box, star, text)
}

func groupLines(tasks []model.Task) []string {
	t := ui.Current()
	pend := model.FilterTasks(tasks, model.FilterActive)
	done := model.FilterTasks(tasks, model.FilterCompleted)

	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, taskLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, taskLines(done)...)
	}
	return lines
}

func projectLines(p model.Project) []string {
	t := ui.Current()
	status := t.Success.Render(p.Status.String())
	if p.Status == model.StatusActive {
		status = t.Accent.Render(p.Status.String())
	}
	lines := []string{
		fmt.Sprintf("%s %s  %s", t.Muted.Render(fmt.Sprintf("%13d", p.ID)), t.Title.Render(p.Title), status),
		"              " + p.Description,
	}
	if len(p.Files) == 0 {
		lines = append(lines, "              "+t.Muted.Render("no files"))
		return lines
	}
	for _, f := range p.Files {
		k := model.ClassifyFile(f)
		lines = append(lines, fmt.Sprintf("              %s %s", t.Accent.Render(k.Icon()), f))
	}
	return lines
}
