package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab, PrevTab key.Binding
	Quit, Help       key.Binding
	Clear            key.Binding

	Add, Toggle, Star, Delete, Filter   key.Binding
	EditTitle, EditDesc, Status, Attach key.Binding

	Start, Pause, Reset, Preset key.Binding
	Quote                       key.Binding

	PrevMonth, NextMonth, Today key.Binding

	tab tab
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Clear:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all data")),

		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Star:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),

		EditTitle: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		EditDesc:  key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit description")),
		Status:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle status")),
		Attach:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "attach files")),

		Start:  key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Preset: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "25/15/5 min")),
		Quote:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new quote")),

		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
	}
}

// ShortHelp implements help.KeyMap for the active view.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.tab {
	case tabTodo:
		return []key.Binding{k.Add, k.Toggle, k.Star, k.Delete, k.Filter, k.NextTab, k.Quit}
	case tabProjects:
		return []key.Binding{k.Add, k.EditTitle, k.EditDesc, k.Status, k.Attach, k.NextTab, k.Quit}
	case tabTimer:
		return []key.Binding{k.Start, k.Pause, k.Reset, k.Preset, k.NextTab, k.Quit}
	}
	return []key.Binding{k.Toggle, k.Star, k.Delete, k.PrevMonth, k.NextMonth, k.Today, k.NextTab, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.NextTab, k.PrevTab, k.Clear, k.Quote, k.Help, k.Quit},
	}
}
