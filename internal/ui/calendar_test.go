package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oct19 = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestCalendarLines(t *testing.T) {
	useMono(t)

	// October 2026 starts on a Thursday and has 31 days.
	lines := CalendarLines(oct19, oct19)
	require.Len(t, lines, 7)
	assert.Equal(t, "October 2026", lines[0])
	assert.Equal(t, "             1  2  3", lines[2])
	assert.Equal(t, " 4  5  6  7  8  9 10", lines[3])
	assert.True(t, strings.HasPrefix(lines[6], "25 26 27 28 29 30 31"))
}

func TestCalendarLinesFebruary(t *testing.T) {
	useMono(t)

	// February 2026 starts on a Sunday: exactly four rows.
	feb1 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	lines := CalendarLines(feb1, feb1)
	require.Len(t, lines, 6)
	assert.Equal(t, " 1  2  3  4  5  6  7", stripReverse(lines[2]))
	assert.Equal(t, "22 23 24 25 26 27 28", lines[5])
}

// bracketToday marks the highlighted cell with brackets so tests can see it
// whatever the colour profile.
func bracketToday(t *testing.T) {
	t.Helper()
	prev := current
	current = classic()
	current.Title, current.Muted = lipgloss.NewStyle(), lipgloss.NewStyle()
	current.Selected = lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })
	t.Cleanup(func() { current = prev })
}

func TestCalendarHighlightsTodayOnlyInItsMonth(t *testing.T) {
	bracketToday(t)

	assert.Contains(t, strings.Join(CalendarLines(oct19, oct19), "\n"), "[19]")

	nov := CalendarLines(oct19, time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "November 2026", nov[0])
	assert.NotContains(t, strings.Join(nov, "\n"), "[")

	// Same month, another year.
	prev := CalendarLines(oct19, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "October 2025", prev[0])
	assert.NotContains(t, strings.Join(prev, "\n"), "[")
}

func stripReverse(s string) string {
	s = strings.ReplaceAll(s, "\x1b[7m", "")
	return strings.ReplaceAll(s, "\x1b[0m", "")
}
