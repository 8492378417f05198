package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

// taskItem adapts model.Task to bubbles/list.Item
type taskItem struct{ model.Task }

func (i taskItem) FilterValue() string { return i.Text }

type projectItem struct{ model.Project }

func (i projectItem) FilterValue() string { return i.Title }

func selectedPrefix(index int, m list.Model) string {
	if index == m.Index() {
		return ui.Current().Selected.Render(">") + " "
	}
	return "  "
}

// Custom delegate to control how tasks render (single line)
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	fmt.Fprint(w, selectedPrefix(index, m)+renderTask(it.Task))
}

func renderTask(task model.Task) string {
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := task.Text
	if task.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	star := " "
	if task.Priority {
		star = t.Pending.Render(t.SymPriority)
	}
	return fmt.Sprintf("%s %s %s", box, star, text)
}

// Projects render as a title line, the description and the file list.
type projectDelegate struct{}

func (d projectDelegate) Height() int                               { return 3 }
func (d projectDelegate) Spacing() int                              { return 1 }
func (d projectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(projectItem)
	if !ok {
		return
	}
	t := ui.Current()
	p := it.Project

	status := t.Accent.Render("[" + p.Status.String() + "]")
	if p.Status == model.StatusCompleted {
		status = t.Success.Render("[" + p.Status.String() + "]")
	}
	files := t.Muted.Render("no files")
	if len(p.Files) > 0 {
		parts := make([]string, 0, len(p.Files))
		for _, f := range p.Files {
			parts = append(parts, model.ClassifyFile(f).Icon()+" "+f)
		}
		files = strings.Join(parts, "  ")
	}
	lines := []string{
		selectedPrefix(index, m) + t.Title.Render(p.Title) + " " + status,
		"  " + ui.Truncate(firstLine(p.Description), m.Width()-4),
		"  " + ui.Truncate(files, m.Width()-4),
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}

// firstLine keeps a row to one line; the rest of a multi-line text shows
// as "...".
func firstLine(s string) string {
	line, rest, cut := strings.Cut(s, "\n")
	line = strings.TrimRight(line, "\r")
	if cut && strings.TrimSpace(rest) != "" {
		return line + " ..."
	}
	return line
}
