package store

import (
	"context"

	"github.com/abhisek/quizflow/internal/quiz"
)

// SessionRepo persists per-learner session state as versioned keyed
// entries. The feed's history and ordering components read and write
// through this interface; methods use background contexts internally
// because the database is a local single-user file.
type SessionRepo interface {
	// VisitedQuizzes returns the visit history, oldest first.
	VisitedQuizzes() ([]int64, error)

	// SetVisitedQuizzes replaces the visit history.
	SetVisitedQuizzes(ids []int64) error

	// FeedQuizOrder returns the last stored feed listing.
	FeedQuizOrder() ([]quiz.FeedItem, error)

	// SetFeedQuizOrder replaces the stored feed listing.
	SetFeedQuizOrder(items []quiz.FeedItem) error

	// StartSession begins a fresh browsing session: session-scoped
	// entries are cleared and legacy-format entries are deleted by
	// key name, never parsed.
	StartSession() error

	// Clear deletes all session entries, current keys included.
	Clear() error
}

// AnswerEventData captures one answer submission for the local log.
type AnswerEventData struct {
	QuizID       int64
	QuestionID   int64
	QuestionType string
	Answer       string
	Correct      bool
	HintsUsed    int
	TimeMs       int
}

// QuizAnswerStats aggregates the answer log for a single quiz.
type QuizAnswerStats struct {
	QuizID  int64
	Total   int
	Correct int
}

// CoachRequestEventData captures one request to a coach model provider.
type CoachRequestEventData struct {
	Provider     string
	Model        string
	QuestionID   int64
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and aggregate access to the answer log.
type EventRepo interface {
	// AppendAnswer records an answer submission.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendCoachRequest records a coach model API call.
	AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error

	// AnswerStats returns per-quiz totals, most answered first.
	AnswerStats(ctx context.Context) ([]QuizAnswerStats, error)

	// CountAnswers returns total and correct submission counts.
	CountAnswers(ctx context.Context) (total, correct int, err error)
}
