package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/focusdash/internal/model"
	"github.com/Makepad-fr/focusdash/internal/record"
	"github.com/Makepad-fr/focusdash/internal/store/memstore"
	"github.com/Makepad-fr/focusdash/internal/timer"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

type fixture struct {
	m     Model
	store *record.Store
	mem   *memstore.Store
	timer *timer.Timer
}

func newFixture(t *testing.T, opts ...timer.Option) *fixture {
	t.Helper()
	mem := memstore.New()
	clk := clockwork.NewFakeClockAt(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	st := record.New(mem, record.WithClock(clk))
	tm := timer.New(append([]timer.Option{timer.WithSessionStore(st)}, opts...)...)
	m := New(t.Context(), Options{Store: st, Timer: tm, Clock: clk})
	return &fixture{m: m, store: st, mem: mem, timer: tm}
}

// send feeds msgs through Update and returns the command of the last one.
func (f *fixture) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = f.m.Update(msg)
		f.m = next.(Model)
	}
	return cmd
}

func (f *fixture) goTo(target tab) {
	for f.m.tab != target {
		f.send(keyTab)
	}
}

func TestStartsOnDashboardWithSamples(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, tabDashboard, f.m.tab)
	assert.Len(t, f.m.tasks, 5)
	assert.Len(t, f.m.projects, 3)
	assert.Equal(t, model.Counters{Incomplete: 4, Completed: 1, ActiveProjects: 2, ProductivityScore: 20}, f.m.counters)
	assert.Contains(t, f.m.View(), "Complete project proposal")
	assert.Empty(t, f.mem.Snapshot(), "viewing must not persist anything")
}

func TestTabsCycle(t *testing.T) {
	f := newFixture(t)
	f.send(keyTab)
	assert.Equal(t, tabTodo, f.m.tab)
	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabDashboard, f.m.tab)
	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabTimer, f.m.tab)
}

func TestAddTask(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTodo)
	f.send(runes("a"), runes("Write tests"), keyEnter)

	assert.Equal(t, editNone, f.m.edit)
	assert.Empty(t, f.m.errMsg)
	tasks := f.store.LoadTasks(t.Context())
	require.Len(t, tasks, 6)
	assert.Equal(t, "Write tests", tasks[5].Text)
	assert.Len(t, f.m.taskList.Items(), 6)
}

func TestAddEmptyTaskIsRejected(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTodo)
	f.send(runes("a"), runes("   "), keyEnter)

	assert.Equal(t, editAddTask, f.m.edit, "editor stays open")
	assert.Equal(t, "Please enter a task", f.m.errMsg)
	assert.Empty(t, f.mem.Snapshot())

	f.send(keyEsc)
	assert.Equal(t, editNone, f.m.edit)
}

func TestAddEmptyProjectIsRejected(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabProjects)
	f.send(runes("a"), keyEnter)
	assert.Equal(t, "Please enter a project name", f.m.errMsg)
	assert.Empty(t, f.mem.Snapshot())
}

func TestToggleAndStarSelectedTask(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTodo)
	f.send(keySpace)
	f.send(runes("p"))

	tasks := f.store.LoadTasks(t.Context())
	assert.True(t, tasks[0].Completed)
	assert.False(t, tasks[0].Priority)
	assert.Equal(t, 2, f.m.counters.Completed)
}

func TestDeleteSelectedTask(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTodo)
	f.send(runes("d"))
	tasks := f.store.LoadTasks(t.Context())
	require.Len(t, tasks, 4)
	assert.Equal(t, int64(2), tasks[0].ID)
}

func TestFilterCycles(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTodo)
	f.send(runes("f"))
	assert.Equal(t, model.FilterActive, f.m.filter)
	assert.Len(t, f.m.taskList.Items(), 4)
	f.send(runes("f"))
	assert.Equal(t, model.FilterCompleted, f.m.filter)
	assert.Len(t, f.m.taskList.Items(), 1)
	f.send(runes("f"))
	assert.Equal(t, model.FilterPriority, f.m.filter)
	assert.Len(t, f.m.taskList.Items(), 3)
	f.send(runes("f"))
	assert.Equal(t, model.FilterAll, f.m.filter)
	assert.Empty(t, f.mem.Snapshot(), "filtering is view state only")
}

func TestEditProjectTitleCommitsOnEsc(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabProjects)
	f.send(runes("e"))
	require.Equal(t, editTitle, f.m.edit)
	assert.Equal(t, "Website Redesign", f.m.input.Value())

	f.send(runes(" v2"), keyEsc)
	assert.Equal(t, editNone, f.m.edit)
	assert.Equal(t, "Website Redesign v2", f.store.LoadProjects(t.Context())[0].Title)
}

func TestEditDescriptionRevertsOnEmpty(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabProjects)
	f.send(runes("E"))
	require.Equal(t, editDesc, f.m.edit)
	f.m.area.SetValue("   ")
	f.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, editNone, f.m.edit)
	p := f.store.LoadProjects(t.Context())[0]
	assert.Equal(t, "Complete redesign of company website with modern UI/UX", p.Description)
}

func TestToggleProjectStatusAndAttach(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabProjects)
	f.send(runes("s"))
	assert.Equal(t, 1, f.m.counters.ActiveProjects)

	f.send(runes("o"), runes("notes.txt, /tmp/photo.PNG"), keyEnter)
	assert.Equal(t, "2 file(s) added", f.m.status)
	p := f.store.LoadProjects(t.Context())[0]
	assert.Equal(t, model.StatusCompleted, p.Status)
	assert.Equal(t, []string{"design-mockup.pdf", "content-plan.docx", "notes.txt", "photo.PNG"}, p.Files)
}

func TestTimerStaleTicksAreIgnored(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTimer)

	cmd := f.send(runes("s"))
	require.NotNil(t, cmd)
	first := f.timer.Cycle()
	require.NotZero(t, first)

	assert.NotNil(t, f.send(tickMsg{cycle: first}), "running cycle reschedules")
	assert.Equal(t, 25*60-1, f.timer.Remaining())

	f.send(runes("p"))
	assert.Equal(t, timer.Paused, f.timer.State())
	assert.Nil(t, f.send(tickMsg{cycle: first}))
	assert.Equal(t, 25*60-1, f.timer.Remaining())

	f.send(runes("s"))
	second := f.timer.Cycle()
	assert.NotEqual(t, first, second)
	f.send(tickMsg{cycle: first}, tickMsg{cycle: first})
	assert.Equal(t, 25*60-1, f.timer.Remaining(), "one decrement cycle at a time")
	f.send(tickMsg{cycle: second})
	assert.Equal(t, 25*60-2, f.timer.Remaining())
}

func TestTimerPresetWhileRunning(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTimer)
	f.send(runes("s"))
	cycle := f.timer.Cycle()

	f.send(runes("2"))
	assert.Equal(t, timer.Idle, f.timer.State())
	assert.Equal(t, 15*60, f.timer.Remaining())
	assert.Contains(t, f.m.View(), "15:00")

	f.send(tickMsg{cycle: cycle})
	assert.Equal(t, 15*60, f.timer.Remaining())
}

func TestTimerExpiryCountsSession(t *testing.T) {
	f := newFixture(t, timer.WithDurations(2*time.Second, 5*time.Minute))
	f.goTo(tabTimer)
	f.send(runes("s"))
	cycle := f.timer.Cycle()

	f.send(tickMsg{cycle: cycle})
	assert.Nil(t, f.send(tickMsg{cycle: cycle}))

	assert.Equal(t, 1, f.timer.Sessions())
	assert.Equal(t, 1, f.store.Sessions(t.Context()))
	assert.Equal(t, timer.Break, f.timer.Mode())
	assert.Equal(t, "Time's up! Take a 5-minute break.", f.m.status)
	assert.Contains(t, f.m.View(), "05:00")
}

func TestClearDeclined(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabTodo)
	f.send(runes("a"), runes("keep me"), keyEnter)

	f.send(runes("X"))
	assert.True(t, f.m.confirmClear)
	assert.Contains(t, f.m.View(), record.ClearConfirmation)
	f.send(runes("n"))

	assert.False(t, f.m.confirmClear)
	assert.Len(t, f.store.LoadTasks(t.Context()), 6)
}

func TestClearAccepted(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.SetSessions(t.Context(), 4))
	f.timer.SetSessions(4)
	f.goTo(tabTodo)
	f.send(runes("a"), runes("gone soon"), keyEnter)

	f.send(runes("X"), runes("y"))
	assert.Empty(t, f.mem.Snapshot())
	assert.Equal(t, 0, f.timer.Sessions())
	assert.Len(t, f.m.tasks, 5, "samples are back")
}

func TestStoreChangeReloads(t *testing.T) {
	f := newFixture(t)
	other := record.New(f.mem)
	_, err := other.AddTask(t.Context(), "from elsewhere")
	require.NoError(t, err)
	require.NoError(t, other.SetSessions(t.Context(), 7))

	assert.Nil(t, f.send(storeChangedMsg{}), "no watcher wired")
	assert.Len(t, f.m.tasks, 6)
	assert.Equal(t, 7, f.timer.Sessions())
}

func TestWaitForChange(t *testing.T) {
	ch := make(chan struct{}, 1)
	f := newFixture(t)
	f.m.changes = ch

	cmd := f.m.Init()
	require.NotNil(t, cmd)
	ch <- struct{}{}
	assert.Equal(t, storeChangedMsg{}, cmd())

	close(ch)
	assert.Nil(t, f.m.waitForChange()())
}

func TestQuit(t *testing.T) {
	f := newFixture(t)
	cmd := f.send(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, f.m.View())
}

func TestCalendarMonthNavigation(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, tabDashboard, f.m.tab)
	month := func() string { return f.m.shownMonth().Format("January 2006") }
	assert.Equal(t, "October 2026", month())

	f.send(runes("]"), runes("]"), runes("]"))
	assert.Equal(t, "January 2027", month())
	assert.Contains(t, f.m.View(), "January 2027")

	f.send(runes("["))
	assert.Equal(t, "December 2026", month())

	f.send(runes("t"))
	assert.Equal(t, "October 2026", month())

	for range 10 {
		f.send(runes("["))
	}
	assert.Equal(t, "December 2025", month())
	assert.Empty(t, f.mem.Snapshot(), "browsing months never writes")
}

func TestDashboardFocusTasksAreActionable(t *testing.T) {
	f := newFixture(t)
	require.Len(t, f.m.focusList.Items(), 3)

	f.send(keySpace)
	tasks := f.store.LoadTasks(t.Context())
	assert.True(t, tasks[0].Completed)
	require.Len(t, f.m.focusList.Items(), 2)

	f.send(runes("p"))
	assert.False(t, f.store.LoadTasks(t.Context())[2].Priority)
	require.Len(t, f.m.focusList.Items(), 1)

	f.send(runes("d"))
	tasks = f.store.LoadTasks(t.Context())
	require.Len(t, tasks, 4)
	for _, task := range tasks {
		assert.NotEqual(t, int64(4), task.ID)
	}
	// No open priority task left: up to three open tasks instead.
	assert.Len(t, f.m.focusList.Items(), 2)
}

func TestAttachNothingDoesNotWrite(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabProjects)
	f.send(runes("o"), keyEnter)

	assert.Equal(t, editNone, f.m.edit)
	assert.Empty(t, f.m.status)
	assert.Empty(t, f.m.errMsg)
	assert.Empty(t, f.mem.Snapshot())
}

func TestProjectRowIsOneLineOfDescription(t *testing.T) {
	p := model.NewProject(1, "Notes")
	p.Description = "line1\nline2\nline3\nline4"
	l := list.New([]list.Item{projectItem{p}}, projectDelegate{}, 60, 20)

	var buf bytes.Buffer
	projectDelegate{}.Render(&buf, l, 0, projectItem{p})
	lines := strings.Split(buf.String(), "\n")
	assert.Len(t, lines, projectDelegate{}.Height())
	assert.Contains(t, lines[1], "line1 ...")
	assert.NotContains(t, buf.String(), "line2")
}

func TestMultiLineDescriptionKeepsListLayout(t *testing.T) {
	f := newFixture(t)
	f.goTo(tabProjects)
	f.send(runes("E"))
	f.m.area.SetValue("first\nsecond\nthird")
	f.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, "first\nsecond\nthird", f.store.LoadProjects(t.Context())[0].Description)
	view := f.m.projectList.View()
	assert.Contains(t, view, "first ...")
	assert.NotContains(t, view, "second")
}
