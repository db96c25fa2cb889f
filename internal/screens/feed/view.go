package feed

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/nav"
	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/stats"
	"github.com/abhisek/quizflow/internal/ui/theme"
)

func (s *FeedScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.loading {
		return renderLoading(width)
	}
	pos, ok := s.ctrl.Position()
	if !ok {
		return renderLoading(width)
	}

	var b strings.Builder

	if s.ctrl.State() == nav.StateTransitioning {
		b.WriteString(renderSlideMarker(width, s.slide))
	}

	b.WriteString(s.renderQuizLine(&pos, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	q := pos.Question

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(mediaText(q.Prompt))
	b.WriteString(prompt)
	b.WriteString("\n\n")

	b.WriteString(s.renderWidget(&q, width))
	b.WriteString("\n")

	if s.hintsShown > 0 {
		b.WriteString(s.renderHints(&q, width))
	}
	if s.submitted {
		b.WriteString(s.renderFeedback(&q, width))
	}
	if s.showStats {
		b.WriteString(s.renderStats(pos.Quiz.ID, width))
	}
	if s.banner != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Banner.Render(s.banner)))
	}

	return b.String()
}

func (s *FeedScreen) renderQuizLine(pos *nav.Position, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + pos.Quiz.Title)

	diff := pos.Quiz.Difficulty
	rightText := fmt.Sprintf("Q %d/%d", pos.Question.Ordinal, pos.Quiz.QuestionCount)
	if diff.Label != "" {
		rightText = fmt.Sprintf("%s %s  %s", diff.Icon, diff.Label, rightText)
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rightText)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *FeedScreen) renderWidget(q *quiz.Question, width int) string {
	var view string
	switch q.Type {
	case quiz.TypeSingleChoice, quiz.TypeMultiChoice:
		view = s.choice.View()
	case quiz.TypeOrdering:
		view = s.ordering.View()
	case quiz.TypeShortText:
		view = "Answer: " + s.input.View()
	case quiz.TypeFillBlank:
		view = s.blanks.View()
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
}

func (s *FeedScreen) renderHints(q *quiz.Question, width int) string {
	var b strings.Builder
	for i := 0; i < s.hintsShown && i < len(q.Hints); i++ {
		h := q.Hints[i]
		line := theme.Hint.Render(fmt.Sprintf("Hint %d: %s", h.Number, h.Text))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *FeedScreen) renderFeedback(q *quiz.Question, width int) string {
	var b strings.Builder
	b.WriteString("\n")

	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(text)))
		b.WriteString("\n")
	}

	if s.result.Correct {
		center(theme.Correct, "Correct!")
	} else {
		center(theme.Incorrect, "Not quite")
		center(theme.Subtitle, "Correct answer: "+formatCorrect(q))
	}

	if s.coachBusy {
		b.WriteString("\n")
		center(theme.Hint, "Coach is thinking...")
	}
	if s.explanation != nil {
		b.WriteString("\n")
		wrap := lipgloss.NewStyle().Width(minInt(width-8, 70)).Foreground(theme.Text)
		center(theme.Selected, s.explanation.Summary)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, wrap.Render(s.explanation.Detail)))
		b.WriteString("\n")
		if s.explanation.Misconception != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("Watch out: "+s.explanation.Misconception)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *FeedScreen) renderStats(quizID int64, width int) string {
	st, state := s.stats.Get(quizID)

	var body string
	switch state {
	case stats.Loading, stats.Missing:
		body = theme.Hint.Render("Loading statistics...")
	case stats.NoData:
		body = theme.Hint.Render("No statistics published yet.")
	case stats.Failed:
		body = theme.Hint.Render("Statistics unavailable right now.")
	case stats.Ready:
		body = lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(
			"%d participants · %d answers · %.0f%% correct",
			st.ParticipantCount, st.AnswerCount, st.CorrectRate*100))
	}

	card := theme.Card.Render(body)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n"
}

// formatCorrect renders the canonical correct answer for display.
func formatCorrect(q *quiz.Question) string {
	switch q.Type {
	case quiz.TypeSingleChoice:
		return q.OptionText(q.CorrectOption)
	case quiz.TypeMultiChoice:
		parts := make([]string, 0, len(q.CorrectOptions))
		for _, n := range q.CorrectOptions {
			parts = append(parts, q.OptionText(n))
		}
		return strings.Join(parts, ", ")
	case quiz.TypeShortText:
		return q.CorrectText
	case quiz.TypeOrdering:
		parts := make([]string, 0, len(q.CorrectOrder))
		for _, n := range q.CorrectOrder {
			parts = append(parts, q.OptionText(n))
		}
		return strings.Join(parts, " → ")
	case quiz.TypeFillBlank:
		slots := make([]int, 0, len(q.CorrectBlanks))
		for slot := range q.CorrectBlanks {
			slots = append(slots, slot)
		}
		sort.Ints(slots)
		parts := make([]string, 0, len(slots))
		for _, slot := range slots {
			parts = append(parts, fmt.Sprintf("%d: %s", slot, q.CorrectBlanks[slot]))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func renderSlideMarker(width int, slide nav.Slide) string {
	marker := "···"
	switch slide {
	case nav.SlideUp:
		marker = "▲ next quiz"
	case nav.SlideDown:
		marker = "▼ previous quiz"
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(marker) + "\n"
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading your feed...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
