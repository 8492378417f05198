package ui

import (
	"fmt"
	"strings"
	"time"
)

// CalendarLines renders the month containing shown, weeks starting Sunday.
// now's day is highlighted when it falls in that month.
func CalendarLines(now, shown time.Time) []string {
	t := Current()
	first := time.Date(shown.Year(), shown.Month(), 1, 0, 0, 0, 0, shown.Location())
	days := first.AddDate(0, 1, -1).Day()
	today := 0
	if now.Year() == shown.Year() && now.Month() == shown.Month() {
		today = now.Day()
	}

	lines := []string{
		t.Title.Render(first.Format("January 2006")),
		t.Muted.Render("Su Mo Tu We Th Fr Sa"),
	}
	var b strings.Builder
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))
	for d := 1; d <= days; d++ {
		cell := fmt.Sprintf("%2d", d)
		if d == today {
			cell = t.Selected.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 && d != days {
			lines = append(lines, b.String())
			b.Reset()
			col = 0
			continue
		}
		if d != days {
			b.WriteString(" ")
		}
	}
	lines = append(lines, b.String())
	return lines
}
