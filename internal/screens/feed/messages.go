package feed

import (
	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/coach"
	"github.com/abhisek/quizflow/internal/nav"
	"github.com/abhisek/quizflow/internal/prefetch"
	"github.com/abhisek/quizflow/internal/quiz"
)

// feedReadyMsg carries the initial feed listing and the first quiz's
// opening question.
type feedReadyMsg struct {
	Items []quiz.FeedItem
	Page  *api.QuestionPage
	Err   error
}

// navResolvedMsg is sent when an asynchronous navigation lookup
// finishes. Seq ties the result back to the dispatch that started it.
type navResolvedMsg struct {
	Seq    uint64
	Target *nav.Target
	Err    error
}

// transitionDoneMsg is sent when the slide animation period elapses.
type transitionDoneMsg struct{}

// prefetchDoneMsg carries the results of a background refill cycle.
type prefetchDoneMsg struct {
	Cycle uint64
	Items []prefetch.Item
	Err   error
}

// statsReadyMsg carries a fetched statistics payload for one quiz.
type statsReadyMsg struct {
	QuizID int64
	Stats  *api.QuizStatistics
	Err    error
}

// answerRecordedMsg confirms the answer submission round trip.
type answerRecordedMsg struct {
	QuizID     int64
	QuestionID int64
	Err        error
}

// coachReadyMsg carries the coach's explanation of a wrong answer.
type coachReadyMsg struct {
	QuestionID int64
	Exp        *coach.Explanation
	Err        error
}
