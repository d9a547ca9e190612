package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/annotiz/internal/ui/theme"
)

// OptionList renders a question's options with their shortcut labels.
// It is display-only; selection happens through key bindings.
type OptionList struct {
	Options []string
	Labels  []string
	// Chosen is the index of the recorded human answer, or -1.
	Chosen int
	// Reference is the index of the source document's answer, or -1.
	Reference int
	// ShowReference marks the reference option.
	ShowReference bool
}

// NewOptionList builds an OptionList, resolving chosen and reference by text.
// Labels missing for an index render as a blank.
func NewOptionList(options, labels []string, chosen *string, reference string) OptionList {
	l := OptionList{
		Options:   options,
		Labels:    labels,
		Chosen:    -1,
		Reference: -1,
	}
	for i, opt := range options {
		if chosen != nil && l.Chosen < 0 && opt == *chosen {
			l.Chosen = i
		}
		if l.Reference < 0 && opt == reference {
			l.Reference = i
		}
	}
	return l
}

// View renders one line per option.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		label := " "
		if i < len(l.Labels) {
			label = l.Labels[i]
		}

		prefix := "  "
		if i == l.Chosen {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		if l.ShowReference && i == l.Reference {
			line += "  (reference)"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == l.Chosen:
			style = theme.Chosen
		case l.ShowReference && i == l.Reference:
			style = theme.Reference
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
