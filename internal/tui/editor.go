package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/focusdash/internal/record"
)

// openEditor shows the inline input for mode. Descriptions get a
// multi-line area, everything else a single line.
func (m Model) openEditor(mode editMode, id int64, value, placeholder string) (tea.Model, tea.Cmd) {
	m.edit = mode
	m.editID = id
	m.status, m.errMsg = "", ""
	if mode == editDesc {
		m.area.Reset()
		m.area.SetValue(value)
		return m, m.area.Focus()
	}
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) closeEditor() {
	m.edit = editNone
	m.editID = 0
	m.input.Blur()
	m.area.Blur()
}

func (m Model) editorValue() string {
	if m.edit == editDesc {
		return m.area.Value()
	}
	return m.input.Value()
}

// updateEditor handles keys while an input is open. Enter commits a
// single-line input, ctrl+s commits the description. Esc abandons a new
// task or project but commits an edit of an existing project, the way
// leaving an edited field saves it.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		switch m.edit {
		case editTitle, editDesc:
			return m.commit()
		}
		m.closeEditor()
		return m, nil
	case "enter":
		if m.edit != editDesc {
			return m.commit()
		}
	case "ctrl+s":
		return m.commit()
	}
	return m.updateEditorPassthrough(msg)
}

func (m Model) updateEditorPassthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.edit == editDesc {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	value := m.editorValue()
	var err error
	switch m.edit {
	case editAddTask:
		_, err = m.store.AddTask(m.ctx, value)
		if errors.Is(err, record.ErrEmptyText) {
			m.errMsg = "Please enter a task"
			return m, nil
		}
	case editAddProject:
		_, err = m.store.AddProject(m.ctx, value)
		if errors.Is(err, record.ErrEmptyTitle) {
			m.errMsg = "Please enter a project name"
			return m, nil
		}
	case editTitle:
		_, err = m.store.EditProjectTitle(m.ctx, m.editID, value)
	case editDesc:
		_, err = m.store.EditProjectDescription(m.ctx, m.editID, value)
	case editAttach:
		var n int
		_, n, err = m.store.AttachFiles(m.ctx, m.editID, splitFiles(value)...)
		if err == nil && n > 0 {
			m.done(fmt.Sprintf("%d file(s) added", n))
		}
	}
	m.closeEditor()
	if err != nil {
		m.fail(err)
	}
	m.reload()
	return m, nil
}

func splitFiles(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' })
}
