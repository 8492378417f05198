// Package tui is the interactive dashboard. It renders the record store
// and drives the focus timer; every user action goes straight to the
// store and the views are rebuilt from what the store returns.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/Makepad-fr/focusdash/internal/logging"
	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/record"
	"github.com/Makepad-fr/focusdash/internal/timer"
)

type tab int

const (
	tabDashboard tab = iota
	tabTodo
	tabProjects
	tabTimer
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabDashboard:
		return "Dashboard"
	case tabTodo:
		return "To-Do"
	case tabProjects:
		return "Projects"
	case tabTimer:
		return "Focus"
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// editMode is the inline editor currently open, if any.
type editMode int

const (
	editNone editMode = iota
	editAddTask
	editAddProject
	editTitle
	editDesc
	editAttach
)

var presets = map[string]int{"1": 25, "2": 15, "3": 5}

// tickMsg is one second of countdown for a timer cycle.
type tickMsg struct{ cycle uint64 }

// storeChangedMsg reports that another process wrote the data file.
type storeChangedMsg struct{}

// Options wires the TUI to its collaborators.
type Options struct {
	Store   *record.Store
	Timer   *timer.Timer
	Clock   clockwork.Clock
	Log     *slog.Logger
	Changes <-chan struct{} // optional external change notifications
}

type Model struct {
	ctx     context.Context
	store   *record.Store
	timer   *timer.Timer
	clock   clockwork.Clock
	log     *slog.Logger
	changes <-chan struct{}

	tab    tab
	filter model.Filter

	tasks    []model.Task
	projects []model.Project
	counters model.Counters

	taskList    list.Model
	projectList list.Model
	focusList   list.Model
	monthOffset int

	edit   editMode
	editID int64
	input  textinput.Model
	area   textarea.Model

	confirmClear bool
	status       string
	errMsg       string
	quote        model.Quote

	keys     keyMap
	help     help.Model
	progress progress.Model

	width, height int
	quitting      bool
}

// New builds the dashboard model and loads everything from the store.
func New(ctx context.Context, opt Options) Model {
	if opt.Clock == nil {
		opt.Clock = clockwork.NewRealClock()
	}
	if opt.Log == nil {
		opt.Log = slog.Default()
	}
	if opt.Timer == nil {
		opt.Timer = timer.New(timer.WithSessionStore(opt.Store), timer.WithSessions(opt.Store.Sessions(ctx)))
	}

	tl := list.New(nil, taskDelegate{}, 0, 0)
	pl := list.New(nil, projectDelegate{}, 0, 0)
	fl := list.New(nil, taskDelegate{}, 0, 0)
	for _, l := range []*list.Model{&tl, &pl, &fl} {
		l.SetShowTitle(false)
		l.SetShowHelp(false)
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		l.DisableQuitKeybindings()
	}
	fl.SetShowPagination(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	ta := textarea.New()
	ta.SetHeight(4)
	ta.ShowLineNumbers = false

	m := Model{
		ctx:         ctx,
		store:       opt.Store,
		timer:       opt.Timer,
		clock:       opt.Clock,
		log:         opt.Log,
		changes:     opt.Changes,
		taskList:    tl,
		projectList: pl,
		focusList:   fl,
		input:       ti,
		area:        ta,
		quote:       model.RandomQuote(),
		keys:        newKeyMap(),
		help:        help.New(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.resize(80, 24)
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func tick(cycle uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{cycle: cycle} })
}

// reload re-reads both collections from the store and rebuilds the views.
func (m *Model) reload() {
	m.tasks = m.store.LoadTasks(m.ctx)
	m.projects = m.store.LoadProjects(m.ctx)
	m.counters = model.ComputeCounters(m.tasks, m.projects)

	shown := model.FilterTasks(m.tasks, m.filter)
	items := make([]list.Item, 0, len(shown))
	for _, t := range shown {
		items = append(items, taskItem{t})
	}
	m.taskList.SetItems(items)

	pitems := make([]list.Item, 0, len(m.projects))
	for _, p := range m.projects {
		pitems = append(pitems, projectItem{p})
	}
	m.projectList.SetItems(pitems)

	focus := model.SelectDashboardTasks(m.tasks)
	fitems := make([]list.Item, 0, len(focus))
	for _, t := range focus {
		fitems = append(fitems, taskItem{t})
	}
	m.focusList.SetItems(fitems)
}

// shownMonth is the first day of the month the dashboard calendar shows.
func (m Model) shownMonth() time.Time {
	now := m.clock.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, m.monthOffset, 0)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	listH := h - 10
	if listH < 3 {
		listH = 3
	}
	m.taskList.SetSize(w-4, listH)
	m.projectList.SetSize(w-4, listH)
	m.focusList.SetSize(max(w/2, 30), 5)
	m.input.Width = w - 10
	m.area.SetWidth(w - 8)
	m.progress.Width = min(w-8, 60)
	m.help.Width = w - 4
}

func (m Model) selectedTask() (model.Task, bool) {
	it, ok := m.taskList.SelectedItem().(taskItem)
	return it.Task, ok
}

func (m Model) selectedFocusTask() (model.Task, bool) {
	it, ok := m.focusList.SelectedItem().(taskItem)
	return it.Task, ok
}

func (m Model) selectedProject() (model.Project, bool) {
	it, ok := m.projectList.SelectedItem().(projectItem)
	return it.Project, ok
}

func (m *Model) fail(err error) {
	m.log.Warn("Action failed", logging.Err(err))
	m.status = ""
	m.errMsg = err.Error()
}

func (m *Model) done(msg string) {
	m.errMsg = ""
	m.status = msg
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		if m.timer.Tick(msg.cycle) {
			m.done(fmt.Sprintf("Time's up! Take a %d-minute break.", m.timer.Remaining()/60))
			return m, nil
		}
		if m.timer.Cycle() == msg.cycle && m.timer.Running() {
			return m, tick(msg.cycle)
		}
		return m, nil

	case storeChangedMsg:
		m.reload()
		m.timer.SetSessions(m.store.Sessions(m.ctx))
		return m, m.waitForChange()

	case tea.KeyMsg:
		if m.edit != editNone {
			return m.updateEditor(msg)
		}
		if m.confirmClear {
			return m.updateConfirm(msg), nil
		}
		return m.updateKeys(msg)
	}

	if m.edit != editNone {
		return m.updateEditorPassthrough(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.NextTab):
		m.switchTab((m.tab + 1) % tabCount)
		return m, nil
	case key.Matches(msg, k.PrevTab):
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return m, nil
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, k.Clear):
		m.confirmClear = true
		return m, nil
	}

	switch m.tab {
	case tabDashboard:
		return m.updateDashboard(msg)
	case tabTodo:
		return m.updateTodo(msg)
	case tabProjects:
		return m.updateProjects(msg)
	case tabTimer:
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m *Model) switchTab(t tab) {
	m.tab = t
	m.keys.tab = t
	m.status, m.errMsg = "", ""
	if t == tabDashboard || t == tabTodo {
		m.reload()
	}
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.PrevMonth):
		m.monthOffset--
		return m, nil
	case key.Matches(msg, k.NextMonth):
		m.monthOffset++
		return m, nil
	case key.Matches(msg, k.Today):
		m.monthOffset = 0
		return m, nil
	}

	t, ok := m.selectedFocusTask()
	switch {
	case key.Matches(msg, k.Toggle) && ok:
		m.apply(m.store.ToggleTaskComplete(m.ctx, t.ID))
		return m, nil
	case key.Matches(msg, k.Star) && ok:
		m.apply(m.store.ToggleTaskPriority(m.ctx, t.ID))
		return m, nil
	case key.Matches(msg, k.Delete) && ok:
		if err := m.store.DeleteTask(m.ctx, t.ID); err != nil {
			m.fail(err)
		} else {
			m.done("deleted")
		}
		m.reload()
		return m, nil
	}
	var cmd tea.Cmd
	m.focusList, cmd = m.focusList.Update(msg)
	return m, cmd
}

func (m Model) updateTodo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Add):
		return m.openEditor(editAddTask, 0, "", "New task...")
	case key.Matches(msg, k.Filter):
		m.filter = m.filter.Next()
		m.reload()
		m.done("filter: " + m.filter.String())
		return m, nil
	case key.Matches(msg, k.Toggle):
		if t, ok := m.selectedTask(); ok {
			m.apply(m.store.ToggleTaskComplete(m.ctx, t.ID))
		}
		return m, nil
	case key.Matches(msg, k.Star):
		if t, ok := m.selectedTask(); ok {
			m.apply(m.store.ToggleTaskPriority(m.ctx, t.ID))
		}
		return m, nil
	case key.Matches(msg, k.Delete):
		if t, ok := m.selectedTask(); ok {
			if err := m.store.DeleteTask(m.ctx, t.ID); err != nil {
				m.fail(err)
			} else {
				m.done("deleted")
			}
			m.reload()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	p, ok := m.selectedProject()
	switch {
	case key.Matches(msg, k.Add):
		return m.openEditor(editAddProject, 0, "", "New project name...")
	case key.Matches(msg, k.EditTitle) && ok:
		return m.openEditor(editTitle, p.ID, p.Title, "Project title")
	case key.Matches(msg, k.EditDesc) && ok:
		return m.openEditor(editDesc, p.ID, p.Description, "")
	case key.Matches(msg, k.Attach) && ok:
		return m.openEditor(editAttach, p.ID, "", "file names, comma separated")
	case key.Matches(msg, k.Status) && ok:
		m.applyProject(m.store.ToggleProjectStatus(m.ctx, p.ID))
		return m, nil
	}
	var cmd tea.Cmd
	m.projectList, cmd = m.projectList.Update(msg)
	return m, cmd
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Start):
		if cycle, started := m.timer.Start(); started {
			m.done("")
			return m, tick(cycle)
		}
	case key.Matches(msg, k.Pause):
		m.timer.Pause()
	case key.Matches(msg, k.Reset):
		m.timer.Reset()
	case key.Matches(msg, k.Preset):
		m.timer.SetPreset(presets[msg.String()])
	case key.Matches(msg, k.Quote):
		m.quote = model.RandomQuote()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	m.confirmClear = false
	if strings.ToLower(msg.String()) != "y" {
		m.done("clear cancelled")
		return m
	}
	if err := m.store.ClearAll(m.ctx); err != nil {
		m.fail(err)
		return m
	}
	m.timer.SetSessions(0)
	m.timer.Reset()
	m.filter = model.FilterAll
	m.reload()
	m.done("All data has been cleared.")
	return m
}

func (m *Model) apply(_ model.Task, err error) {
	if err != nil {
		m.fail(err)
	} else {
		m.errMsg = ""
	}
	m.reload()
}

func (m *Model) applyProject(_ model.Project, err error) {
	if err != nil {
		m.fail(err)
	} else {
		m.errMsg = ""
	}
	m.reload()
}

// Run starts the program on the alternate screen.
func Run(ctx context.Context, opt Options) error {
	p := tea.NewProgram(New(ctx, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
