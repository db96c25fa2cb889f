package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/router"
	"github.com/abhisek/quizflow/internal/screen"
	"github.com/abhisek/quizflow/internal/store"
	"github.com/abhisek/quizflow/internal/ui/layout"
	"github.com/abhisek/quizflow/internal/ui/theme"
)

const barWidth = 24

type progressLoadedMsg struct {
	Quizzes []store.QuizAnswerStats
	Total   int
	Correct int
	Err     error
}

// ProgressScreen shows the local answer log: overall accuracy plus a
// per-quiz breakdown, most answered first.
type ProgressScreen struct {
	eventRepo store.EventRepo
	quizzes   []store.QuizAnswerStats
	total     int
	correct   int
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(eventRepo store.EventRepo) *ProgressScreen {
	return &ProgressScreen{eventRepo: eventRepo}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		quizzes, err := s.eventRepo.AnswerStats(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		total, correct, err := s.eventRepo.CountAnswers(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		return progressLoadedMsg{Quizzes: quizzes, Total: total, Correct: correct}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.quizzes = msg.Quizzes
			s.total = msg.Total
			s.correct = msg.Correct
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.quizzes)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}
	if s.total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Browse the feed!")
	}

	var b strings.Builder
	b.WriteString("\n")

	accuracy := float64(s.correct) / float64(s.total) * 100
	summary := fmt.Sprintf("%d answered · %d correct · %.0f%% accuracy", s.total, s.correct, accuracy)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(summary)))
	b.WriteString("\n\n")

	for i, q := range s.quizzes {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		var rate float64
		if q.Total > 0 {
			rate = float64(q.Correct) / float64(q.Total)
		}
		line := fmt.Sprintf("%sQuiz %-8d %s %3.0f%%  (%d/%d)",
			prefix, q.QuizID, renderBar(rate), rate*100, q.Correct, q.Total)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderBar(rate float64) string {
	filled := int(rate*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
