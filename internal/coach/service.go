package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/quizflow/internal/quiz"
)

const explainSystemPrompt = `You are a friendly quiz coach. A learner just answered a question
incorrectly. Explain what went wrong in plain language, at most three
short sentences, without revealing unrelated trivia. Be encouraging,
never condescending.`

// Explanation is the coach's structured verdict on a wrong answer.
type Explanation struct {
	// Summary is a one-line statement of what went wrong.
	Summary string `json:"summary"`

	// Detail walks through why the correct answer is correct.
	Detail string `json:"detail"`

	// Misconception names the likely misunderstanding, when one is
	// identifiable from the submitted answer.
	Misconception string `json:"misconception,omitempty"`
}

// explanationSchema constrains the model output for Explain.
var explanationSchema = &Schema{
	Name:        "answer-explanation",
	Description: "Coaching feedback for an incorrectly answered quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One-line statement of what went wrong",
			},
			"detail": map[string]any{
				"type":        "string",
				"description": "Short walkthrough of the correct answer",
			},
			"misconception": map[string]any{
				"type":        "string",
				"description": "The likely misunderstanding, if identifiable",
			},
		},
		"required":             []any{"summary", "detail"},
		"additionalProperties": false,
	},
}

// Service produces explanations for judged answers.
type Service struct {
	provider Provider
}

// NewService creates a coach service on top of a provider.
func NewService(p Provider) *Service {
	return &Service{provider: p}
}

// Explain asks the model why the submitted answer was wrong. The
// result's CorrectValue is included so the model explains the actual
// answer instead of guessing one.
func (s *Service) Explain(ctx context.Context, q *quiz.Question, a quiz.Answer, res quiz.Result) (*Explanation, error) {
	if res.Correct {
		return nil, fmt.Errorf("explanation requested for a correct answer")
	}

	ctx = WithQuestionID(ctx, q.ID)

	resp, err := s.provider.Generate(ctx, Request{
		System: explainSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildExplainPrompt(q, a, res)},
		},
		Schema:    explanationSchema,
		MaxTokens: 500,
	})
	if err != nil {
		return nil, err
	}

	var exp Explanation
	if err := json.Unmarshal(resp.Content, &exp); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &exp, nil
}

// buildExplainPrompt renders the question, the learner's submission,
// and the correct value as plain text.
func buildExplainPrompt(q *quiz.Question, a quiz.Answer, res quiz.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question (%s): %s\n", q.Type, q.Prompt.Text)

	if len(q.Options) > 0 {
		b.WriteString("Options:\n")
		for i, opt := range q.Options {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, opt.Text)
		}
	}

	fmt.Fprintf(&b, "Learner answered: %s\n", renderAnswer(q, a))
	fmt.Fprintf(&b, "Correct answer: %s\n", renderCorrect(q, res))

	return b.String()
}

func renderAnswer(q *quiz.Question, a quiz.Answer) string {
	switch q.Type {
	case quiz.TypeSingleChoice:
		return optionLabel(q, a.Option)
	case quiz.TypeMultiChoice:
		return optionLabels(q, a.Options)
	case quiz.TypeShortText:
		return a.Text
	case quiz.TypeOrdering:
		return optionLabels(q, a.Order)
	case quiz.TypeFillBlank:
		return renderBlanks(a.Blanks)
	default:
		return ""
	}
}

func renderCorrect(q *quiz.Question, res quiz.Result) string {
	switch v := res.CorrectValue.(type) {
	case int:
		return optionLabel(q, v)
	case []int:
		return optionLabels(q, v)
	case string:
		return v
	case map[int]string:
		return renderBlanks(v)
	default:
		return fmt.Sprintf("%v", res.CorrectValue)
	}
}

func optionLabel(q *quiz.Question, n int) string {
	if text := q.OptionText(n); text != "" {
		return fmt.Sprintf("%d (%s)", n, text)
	}
	return fmt.Sprintf("%d", n)
}

func optionLabels(q *quiz.Question, ns []int) string {
	labels := make([]string, len(ns))
	for i, n := range ns {
		labels[i] = optionLabel(q, n)
	}
	return strings.Join(labels, ", ")
}

func renderBlanks(blanks map[int]string) string {
	keys := make([]int, 0, len(blanks))
	for k := range blanks {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("blank %d: %q", k, blanks[k])
	}
	return strings.Join(parts, ", ")
}
