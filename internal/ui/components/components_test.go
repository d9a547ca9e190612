package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestOptionList_ResolvesIndexes(t *testing.T) {
	answer := "b"
	l := NewOptionList([]string{"a", "b", "c"}, []string{"1", "2", "3"}, &answer, "c")

	assert.Equal(t, 1, l.Chosen)
	assert.Equal(t, 2, l.Reference)
}

func TestOptionList_NoAnswer(t *testing.T) {
	l := NewOptionList([]string{"a"}, []string{"1"}, nil, "missing")

	assert.Equal(t, -1, l.Chosen)
	assert.Equal(t, -1, l.Reference)
}

func TestOptionList_View(t *testing.T) {
	answer := "Paris"
	l := NewOptionList([]string{"Paris", "Rome"}, []string{"1", "2"}, &answer, "Rome")
	l.ShowReference = true

	lines := strings.Split(strings.TrimRight(ansi.Strip(l.View()), "\n"), "\n")

	assert.Equal(t, []string{
		"▸ 1)  Paris",
		"  2)  Rome  (reference)",
	}, lines)
}

func TestOptionList_BlankLabelBeyondShortcuts(t *testing.T) {
	l := NewOptionList([]string{"a", "b"}, []string{"1"}, nil, "")

	out := ansi.Strip(l.View())
	assert.Contains(t, out, "   )  b")
}

func TestCountBar(t *testing.T) {
	bar := NewCountBar("Done", 1, 4, 40)
	assert.Equal(t, 0.25, bar.Percent)
	assert.Equal(t, "Done 1/4", bar.Label)

	out := ansi.Strip(bar.View())
	assert.Contains(t, out, "25%")
	assert.LessOrEqual(t, lipgloss.Width(bar.View()), 40)
}

func TestCountBar_ZeroTotal(t *testing.T) {
	bar := NewCountBar("Done", 0, 0, 40)
	assert.Equal(t, 0.0, bar.Percent)
}
