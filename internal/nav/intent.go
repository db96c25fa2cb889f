package nav

// Intent is a navigation request derived from user input. Horizontal
// intents move within the current quiz; vertical intents move through
// the feed.
type Intent int

const (
	IntentNone Intent = iota
	IntentNextQuestion
	IntentPrevQuestion
	IntentNextQuiz
	IntentPrevQuiz
)

func (i Intent) String() string {
	switch i {
	case IntentNextQuestion:
		return "next-question"
	case IntentPrevQuestion:
		return "previous-question"
	case IntentNextQuiz:
		return "next-quiz"
	case IntentPrevQuiz:
		return "previous-quiz"
	default:
		return "none"
	}
}

// Horizontal reports whether the intent stays within the current quiz.
func (i Intent) Horizontal() bool {
	return i == IntentNextQuestion || i == IntentPrevQuestion
}
