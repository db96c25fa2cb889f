package quiz

import "time"

// QuestionType identifies how a question is answered and scored.
// The set is closed: evaluation dispatches exhaustively over these values.
type QuestionType string

const (
	TypeSingleChoice QuestionType = "single_choice"
	TypeMultiChoice  QuestionType = "multi_choice"
	TypeShortText    QuestionType = "short_text"
	TypeOrdering     QuestionType = "ordering"
	TypeFillBlank    QuestionType = "fill_blank"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeSingleChoice, TypeMultiChoice, TypeShortText, TypeOrdering, TypeFillBlank:
		return true
	}
	return false
}

// Media is prompt or option content. Any combination of the three
// fields may be set; at least one is non-empty in valid payloads.
type Media struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
}

// Hint is a reveal-on-demand clue. Hints are numbered from 1 in the
// order they may be revealed.
type Hint struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Difficulty is the platform-assigned difficulty descriptor embedded
// in quiz payloads.
type Difficulty struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Icon       string  `json:"icon"`
}

// Question is a single question within a quiz, deserialized from a
// server payload. The correctness reference fields are populated
// according to Type; the others are zero.
//
// Option indices are 1-based throughout, matching the wire format and
// the keys a learner presses.
type Question struct {
	ID      int64        `json:"id"`
	Ordinal int          `json:"position"`
	Type    QuestionType `json:"type"`
	Prompt  Media        `json:"prompt"`

	// Options holds 1 to 4 answer options. Empty for short-text and
	// fill-blank questions.
	Options []Media `json:"options,omitempty"`

	CorrectOption  int            `json:"correct_option,omitempty"`  // single-choice
	CorrectOptions []int          `json:"correct_options,omitempty"` // multi-choice
	CorrectText    string         `json:"correct_text,omitempty"`    // short-text
	CorrectOrder   []int          `json:"correct_order,omitempty"`   // ordering
	CorrectBlanks  map[int]string `json:"correct_blanks,omitempty"`  // fill-blank, slot -> value

	Hints []Hint `json:"hints,omitempty"`

	Permalink     string `json:"permalink"`
	NextPermalink string `json:"next_question_permalink,omitempty"`
	PrevPermalink string `json:"previous_question_permalink,omitempty"`
}

// OptionText returns the display text of the 1-based option n, or ""
// if n is out of range.
func (q *Question) OptionText(n int) string {
	if n < 1 || n > len(q.Options) {
		return ""
	}
	return q.Options[n-1].Text
}

// Quiz is the container a question belongs to. Question payloads embed
// the quiz so a single fetch resolves both.
type Quiz struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	CreatorID     int64      `json:"creator_id"`
	LessonID      int64      `json:"lesson_id,omitempty"`
	QuestionCount int        `json:"question_count"`
	Difficulty    Difficulty `json:"difficulty"`
}

// FeedItem is a lightweight pointer to a feed candidate produced by the
// recommender. It exists only to be resolved into a full Quiz+Question
// pair.
type FeedItem struct {
	QuizID                 int64  `json:"id"`
	FirstQuestionPermalink string `json:"first_question_permalink"`
}

// Answer is a learner's submitted answer. Exactly one payload field is
// meaningful, selected by the question's type. An Answer is immutable
// once recorded for a question within a session.
type Answer struct {
	QuestionID int64

	Option  int            // single-choice, 1-based
	Options []int          // multi-choice
	Text    string         // short-text
	Order   []int          // ordering
	Blanks  map[int]string // fill-blank, slot -> value

	HintsUsed   []int
	SubmittedAt time.Time
}
