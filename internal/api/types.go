package api

import "github.com/abhisek/quizflow/internal/quiz"

// QuestionPage is the payload of GET /quizzes/q/{permalink}: one
// question plus the quiz it belongs to, including navigation links.
type QuestionPage struct {
	Quiz     quiz.Quiz     `json:"quiz"`
	Question quiz.Question `json:"question"`
}

// NextFeedParams are the query parameters of GET /feed/next.
type NextFeedParams struct {
	// CurrentQuestion is the permalink the learner is on, if any.
	CurrentQuestion string

	// CurrentQuizID is excluded from recommendations along with Exclude.
	CurrentQuizID int64

	// Limit caps the number of returned items.
	Limit int

	// Exclude lists quiz IDs already visited this session. The current
	// quiz must not appear here; it is carried in CurrentQuizID.
	Exclude []int64
}

// feedResponse is the wire shape of GET /feed/next.
type feedResponse struct {
	Items []quiz.FeedItem `json:"items"`
}

// QuizStatistics is the aggregate payload of
// GET /analytics/quizzes/{id}/detailed-statistics.
type QuizStatistics struct {
	ParticipantCount int     `json:"participant_count"`
	AnswerCount      int     `json:"answer_count"`
	CorrectRate      float64 `json:"correct_rate"`
}

// QuizSummary is the payload of GET /quizzes/{id}, used only to recover
// a quiz's first-question permalink when the visit history holds just
// the identifier.
type QuizSummary struct {
	quiz.Quiz
	FirstQuestionPermalink string `json:"first_question_permalink"`
}

// RecordAnswerRequest is the body of POST /quizzes/{id}/record-answer.
// Answer carries the raw per-type payload; SelectedOption carries the
// chosen option's display text for single-choice questions.
type RecordAnswerRequest struct {
	QuestionID     int64  `json:"question_id"`
	Answer         any    `json:"answer"`
	SelectedOption string `json:"selected_option,omitempty"`
	HintsUsed      []int  `json:"hints_used"`
}
