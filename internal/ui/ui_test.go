package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// useMono switches to the mono theme for one test.
func useMono(t *testing.T) {
	t.Helper()
	before := lipgloss.ColorProfile()
	SetTheme("mono")
	t.Cleanup(func() {
		SetTheme("classic")
		lipgloss.SetColorProfile(before)
	})
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestMonoTheme(t *testing.T) {
	useMono(t)

	var buf bytes.Buffer
	OK(&buf, "added")
	assert.Equal(t, "x added\n", buf.String())

	out := Panel([]string{"a", "bb"})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[2], "bb")
}

func TestLeavingMonoRestoresColourProfile(t *testing.T) {
	before := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(before) })

	SetTheme("mono")
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	SetTheme("classic")
	assert.Equal(t, detectedProfile, lipgloss.ColorProfile())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))

	cut := Truncate(strings.Repeat("é", 50), 20)
	assert.True(t, utf8.ValidString(cut))
	assert.Equal(t, strings.Repeat("é", 17)+"...", cut)

	assert.Equal(t, "日本語のタ...", Truncate("日本語のタスクです", 8))
	assert.Equal(t, "abc", Truncate("abc", 2), "too narrow to cut")
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("neon")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("unknown")
	assert.Equal(t, "classic", Current().Name)
}
