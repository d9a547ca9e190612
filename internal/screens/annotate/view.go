package annotate

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/annotiz/internal/session"
	"github.com/abhisek/annotiz/internal/ui/components"
	"github.com/abhisek/annotiz/internal/ui/layout"
	"github.com/abhisek/annotiz/internal/ui/theme"
)

// Status returns the header status text: mode and position.
func (s *AnnotateScreen) Status() string {
	v := s.state.View()
	return fmt.Sprintf("%s · %d/%d", v.Mode, v.Index+1, v.Total)
}

func (s *AnnotateScreen) View(width, height int) string {
	v := s.state.View()

	var b strings.Builder
	b.WriteString(s.renderTopLine(v, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionWidth := width * 6 / 10
	left := s.renderQuestion(v, questionWidth)
	if layout.IsCompactHeight(height) {
		b.WriteString(left)
	} else {
		right := renderInstructions(v.Mode, width-questionWidth)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	b.WriteString("\n\n")

	bar := components.NewCountBar("Question progress", v.Annotated, v.Total, width-4)
	b.WriteString("  " + bar.View())

	return b.String()
}

// renderTopLine shows the position on the left and the last message or
// error on the right.
func (s *AnnotateScreen) renderTopLine(v session.View, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", v.Index+1, v.Total))

	var right string
	switch {
	case s.errMsg != "":
		right = theme.ErrorLine.Render(s.errMsg)
	case v.Message != "":
		right = theme.Message.Render(v.Message)
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if right != "" {
		if pad < 1 {
			pad = 1
		}
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *AnnotateScreen) renderQuestion(v session.View, width int) string {
	q := v.Question

	labels := make([]string, len(q.Options))
	for i := range q.Options {
		labels[i] = shortcutLabel(v.Mode, i)
	}
	options := components.NewOptionList(q.Options, labels, q.HumanAnswer, q.ReferenceAnswer)
	options.ShowReference = v.Mode == session.ModeClassify

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width - 4).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(options.View())
	b.WriteString("\n")
	b.WriteString(renderStatus(v))

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(b.String())
}

// shortcutLabel shows digits in answer mode and the option position otherwise.
func shortcutLabel(mode session.Mode, i int) string {
	if mode == session.ModeAnswer {
		return session.ShortcutLabel(i)
	}
	return fmt.Sprintf("%d", i+1)
}

// renderStatus reports the current annotation for the active mode.
func renderStatus(v session.View) string {
	q := v.Question
	switch v.Mode {
	case session.ModeClassify:
		if q.Classification == nil {
			return theme.Missing.Render("MISSING CLASSIFICATION")
		}
		return theme.Recorded.Render(fmt.Sprintf("Current classification: %t", *q.Classification))
	default:
		if q.HumanAnswer == nil {
			return theme.Missing.Render("MISSING ANSWER")
		}
		return theme.Recorded.Render(fmt.Sprintf("Current answer: %s", *q.HumanAnswer))
	}
}

func renderInstructions(mode session.Mode, width int) string {
	var lines []string
	switch mode {
	case session.ModeClassify:
		lines = []string{
			theme.Title.Render("Is this a higher order question?"),
			"",
			"Higher order question: involves application, analyzing, evaluating.",
			"",
			"Lower order question: involves basic understanding and rote memorization.",
			"",
			theme.Hint.Render("Press y for higher order, n for lower order."),
		}
	default:
		lines = []string{
			theme.Title.Render("What is the correct answer?"),
			"",
			"Press 1-6 or a-f to select an option.",
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Render(strings.Join(lines, "\n"))
}
