package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/focusdash/internal/record"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := ui.Current()

	var body string
	switch m.tab {
	case tabDashboard:
		body = m.dashboardView()
	case tabTodo:
		body = m.todoView()
	case tabProjects:
		body = m.projectsView()
	case tabTimer:
		body = m.timerView()
	}

	parts := []string{m.tabBar(), "", body}
	if m.edit != editNone {
		parts = append(parts, m.editorView())
	}
	switch {
	case m.confirmClear:
		parts = append(parts, "", t.Error.Render(record.ClearConfirmation+" (y/n)"))
	case m.errMsg != "":
		parts = append(parts, "", t.Error.Render(m.errMsg))
	case m.status != "":
		parts = append(parts, "", t.Success.Render(m.status))
	}
	parts = append(parts, "", t.Help.Render(m.help.View(m.keys)))
	return ui.Frame(strings.Join(parts, "\n"))
}

func (m Model) tabBar() string {
	t := ui.Current()
	names := make([]string, 0, tabCount)
	for i := tab(0); i < tabCount; i++ {
		if i == m.tab {
			names = append(names, t.Selected.Render(" "+i.String()+" "))
		} else {
			names = append(names, t.Muted.Render(" "+i.String()+" "))
		}
	}
	return strings.Join(names, " ")
}

func (m Model) dashboardView() string {
	t := ui.Current()
	c := m.counters
	now := m.clock.Now()

	left := []string{
		t.Title.Render("Today") + "  " + t.Muted.Render(now.Format("Monday, January 2, 2006")),
		"",
		fmt.Sprintf("%s %d", t.Pending.Render("Today's tasks  "), c.Incomplete),
		fmt.Sprintf("%s %d", t.Success.Render("Completed      "), c.Completed),
		fmt.Sprintf("%s %d", t.Accent.Render("Active projects"), c.ActiveProjects),
		fmt.Sprintf("%s %d%%", t.Title.Render("Productivity   "), c.ProductivityScore),
		fmt.Sprintf("%s %d", t.Muted.Render("Focus sessions "), m.timer.Sessions()),
		"",
		t.Accent.Render("Focus"),
	}
	if len(m.focusList.Items()) == 0 {
		left = append(left, t.Muted.Render("nothing open, enjoy the day"))
	} else {
		left = append(left, m.focusList.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"),
		"    ",
		strings.Join(ui.CalendarLines(now, m.shownMonth()), "\n"),
	)
}

func (m Model) todoView() string {
	t := ui.Current()
	done := m.counters.Completed
	total := done + m.counters.Incomplete
	header := fmt.Sprintf("%s  %s  %s",
		t.Title.Render("To-Do"),
		t.Muted.Render("filter: "+m.filter.String()),
		ui.ProgressBar(done, total, 20),
	)
	if len(m.taskList.Items()) == 0 {
		return header + "\n\n" + t.Muted.Render("no tasks here, press a to add one")
	}
	return header + "\n\n" + m.taskList.View()
}

func (m Model) projectsView() string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s", t.Title.Render("Projects"),
		t.Muted.Render(fmt.Sprintf("%d active", m.counters.ActiveProjects)))
	if len(m.projects) == 0 {
		return header + "\n\n" + t.Muted.Render("no projects, press a to add one")
	}
	return header + "\n\n" + m.projectList.View()
}

func (m Model) timerView() string {
	t := ui.Current()
	clock := t.Title.Render(m.timer.Format())
	if m.timer.Running() {
		clock = t.Accent.Render(m.timer.Format())
	}
	lines := []string{
		t.Title.Render("Focus timer") + "  " + t.Muted.Render(m.timer.Mode().String()+" / "+m.timer.State().String()),
		"",
		"  " + clock,
		"",
		"  " + m.progress.ViewAs(m.timer.Progress()),
		"",
		fmt.Sprintf("  %s %d", t.Muted.Render("Sessions completed:"), m.timer.Sessions()),
		"",
		"  " + t.Pending.Render("“"+m.quote.Text+"”"),
		"  " + t.Muted.Render("- "+m.quote.Author),
	}
	return strings.Join(lines, "\n")
}

func (m Model) editorView() string {
	t := ui.Current()
	title := map[editMode]string{
		editAddTask:    "Add task",
		editAddProject: "Add project",
		editTitle:      "Edit title",
		editDesc:       "Edit description (ctrl+s to save)",
		editAttach:     "Attach files",
	}[m.edit]
	field := m.input.View()
	if m.edit == editDesc {
		field = m.area.View()
	}
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	return bar.Render(title + "\n" + field)
}
