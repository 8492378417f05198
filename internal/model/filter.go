package model

import (
	"fmt"
	"strings"
)

// Filter selects which tasks the todo view shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
	FilterPriority
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted, FilterPriority}

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	case FilterPriority:
		return "priority"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Next cycles through Filters.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active, completed or priority)", s)
}

func (f Filter) match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterPriority:
		return t.Priority
	}
	return true
}

// FilterTasks returns the tasks matching f, keeping their order.
// The input slice is never modified.
func FilterTasks(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

const (
	dashboardPriorityLimit = 5
	dashboardFallbackLimit = 3
)

// SelectDashboardTasks picks what the dashboard shows: up to five open
// priority tasks, or up to three open tasks when nothing is prioritised.
func SelectDashboardTasks(tasks []Task) []Task {
	var pri, open []Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if t.Priority && len(pri) < dashboardPriorityLimit {
			pri = append(pri, t)
		}
		if len(open) < dashboardFallbackLimit {
			open = append(open, t)
		}
	}
	if len(pri) > 0 {
		return pri
	}
	return open
}
