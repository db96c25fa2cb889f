package quiz

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyAnswer signals that a submission carries no answer at all.
// Callers surface it as a "provide an answer" prompt; it is not an
// evaluation result.
var ErrEmptyAnswer = errors.New("an answer is required")

// Result is the outcome of evaluating one submission.
type Result struct {
	Correct bool

	// CorrectValue is the canonical correct answer for the question:
	// int for single-choice, []int for multi-choice and ordering,
	// string for short-text, map[int]string for fill-blank.
	CorrectValue any
}

// Evaluate determines whether a is a correct answer to q. It is pure:
// no side effects, no network, no clock. Locking the question,
// transmitting the answer and refreshing statistics are the caller's
// concern.
//
// Empty submissions are rejected with ErrEmptyAnswer before any
// comparison, except the fill-blank vacuous case: a question with zero
// expected solutions accepts an empty submission as correct.
func Evaluate(q *Question, a Answer) (Result, error) {
	switch q.Type {
	case TypeSingleChoice:
		return evalSingleChoice(q, a)
	case TypeMultiChoice:
		return evalMultiChoice(q, a)
	case TypeShortText:
		return evalShortText(q, a)
	case TypeOrdering:
		return evalOrdering(q, a)
	case TypeFillBlank:
		return evalFillBlank(q, a)
	default:
		return Result{}, fmt.Errorf("evaluate: unknown question type %q", q.Type)
	}
}

func evalSingleChoice(q *Question, a Answer) (Result, error) {
	// Selection triggers submission, so an unset option can only mean a
	// programming error upstream.
	if a.Option == 0 {
		return Result{}, ErrEmptyAnswer
	}
	return Result{
		Correct:      a.Option == q.CorrectOption,
		CorrectValue: q.CorrectOption,
	}, nil
}

func evalMultiChoice(q *Question, a Answer) (Result, error) {
	if len(a.Options) == 0 {
		return Result{}, ErrEmptyAnswer
	}
	correct := sortedSet(q.CorrectOptions)
	submitted := sortedSet(a.Options)

	res := Result{CorrectValue: correct}
	if len(submitted) != len(correct) {
		return res, nil
	}
	for i := range correct {
		if submitted[i] != correct[i] {
			return res, nil
		}
	}
	res.Correct = true
	return res, nil
}

func evalShortText(q *Question, a Answer) (Result, error) {
	submitted := strings.TrimSpace(a.Text)
	if submitted == "" {
		return Result{}, ErrEmptyAnswer
	}
	expected := strings.TrimSpace(q.CorrectText)
	return Result{
		Correct:      strings.EqualFold(submitted, expected),
		CorrectValue: q.CorrectText,
	}, nil
}

func evalOrdering(q *Question, a Answer) (Result, error) {
	if len(a.Order) == 0 {
		return Result{}, ErrEmptyAnswer
	}
	res := Result{CorrectValue: q.CorrectOrder}
	if len(a.Order) != len(q.CorrectOrder) {
		return res, nil
	}
	for i, v := range q.CorrectOrder {
		if a.Order[i] != v {
			return res, nil
		}
	}
	res.Correct = true
	return res, nil
}

func evalFillBlank(q *Question, a Answer) (Result, error) {
	res := Result{CorrectValue: q.CorrectBlanks}

	// Vacuous match: nothing expected, nothing submitted.
	if len(q.CorrectBlanks) == 0 {
		res.Correct = len(a.Blanks) == 0
		return res, nil
	}

	if len(a.Blanks) == 0 {
		return Result{}, ErrEmptyAnswer
	}
	if len(a.Blanks) != len(q.CorrectBlanks) {
		return res, nil
	}
	for slot, want := range q.CorrectBlanks {
		got, ok := a.Blanks[slot]
		if !ok || !strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want)) {
			return res, nil
		}
	}
	res.Correct = true
	return res, nil
}

// sortedSet returns a sorted copy of vals with duplicates removed.
func sortedSet(vals []int) []int {
	out := make([]int, 0, len(vals))
	seen := make(map[int]bool, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
