package progress

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizflow/internal/store"
)

type stubEvents struct {
	quizzes []store.QuizAnswerStats
	total   int
	correct int
}

func (s *stubEvents) AppendAnswer(_ context.Context, _ store.AnswerEventData) error { return nil }
func (s *stubEvents) AppendCoachRequest(_ context.Context, _ store.CoachRequestEventData) error {
	return nil
}
func (s *stubEvents) AnswerStats(_ context.Context) ([]store.QuizAnswerStats, error) {
	return s.quizzes, nil
}
func (s *stubEvents) CountAnswers(_ context.Context) (int, int, error) {
	return s.total, s.correct, nil
}

func loadedScreen(t *testing.T, repo *stubEvents) *ProgressScreen {
	t.Helper()
	scr := New(repo)
	scr.Update(scr.Init()())
	return scr
}

func TestInitLoadsStats(t *testing.T) {
	repo := &stubEvents{
		quizzes: []store.QuizAnswerStats{
			{QuizID: 1, Total: 10, Correct: 7},
			{QuizID: 2, Total: 4, Correct: 4},
		},
		total:   14,
		correct: 11,
	}
	scr := loadedScreen(t, repo)

	view := scr.View(100, 30)
	if !strings.Contains(view, "14 answered") {
		t.Errorf("expected the overall count in the view, got:\n%s", view)
	}
	if !strings.Contains(view, "(7/10)") {
		t.Errorf("expected the per-quiz breakdown in the view, got:\n%s", view)
	}
}

func TestEmptyState(t *testing.T) {
	scr := loadedScreen(t, &stubEvents{})

	view := scr.View(100, 30)
	if !strings.Contains(view, "No answers yet") {
		t.Errorf("expected the empty-state prompt, got:\n%s", view)
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	repo := &stubEvents{
		quizzes: []store.QuizAnswerStats{{QuizID: 1, Total: 1}, {QuizID: 2, Total: 1}},
		total:   2,
	}
	scr := loadedScreen(t, repo)

	up := tea.KeyPressMsg{Code: 'k', Text: "k"}
	down := tea.KeyPressMsg{Code: 'j', Text: "j"}

	scr.Update(up)
	if scr.selected != 0 {
		t.Errorf("expected selection clamped at 0, got %d", scr.selected)
	}
	scr.Update(down)
	scr.Update(down)
	scr.Update(down)
	if scr.selected != 1 {
		t.Errorf("expected selection clamped at 1, got %d", scr.selected)
	}
}
