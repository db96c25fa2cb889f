package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func sampleQuestion() *quiz.Question {
	return &quiz.Question{
		ID:     42,
		Type:   quiz.TypeSingleChoice,
		Prompt: quiz.Media{Text: "What is the capital of France?"},
		Options: []quiz.Media{
			{Text: "London"},
			{Text: "Paris"},
			{Text: "Berlin"},
		},
		CorrectOption: 2,
	}
}

func TestExplainReturnsStructuredExplanation(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"You picked London.","detail":"Paris is the capital of France.","misconception":"Capital confused with largest UK city."}`),
	})
	svc := NewService(mock)

	exp, err := svc.Explain(context.Background(), sampleQuestion(),
		quiz.Answer{QuestionID: 42, Option: 1},
		quiz.Result{Correct: false, CorrectValue: 2},
	)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if exp.Summary != "You picked London." {
		t.Errorf("summary = %q", exp.Summary)
	}
	if exp.Misconception == "" {
		t.Error("expected misconception to survive decoding")
	}
}

func TestExplainPromptNamesBothAnswers(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"s","detail":"d"}`),
	})
	svc := NewService(mock)

	_, err := svc.Explain(context.Background(), sampleQuestion(),
		quiz.Answer{QuestionID: 42, Option: 1},
		quiz.Result{Correct: false, CorrectValue: 2},
	)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"London", "Paris", "1 (London)", "2 (Paris)"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected a structured output schema on the request")
	}
}

func TestExplainRejectsCorrectAnswer(t *testing.T) {
	svc := NewService(NewMockProvider())

	_, err := svc.Explain(context.Background(), sampleQuestion(),
		quiz.Answer{QuestionID: 42, Option: 2},
		quiz.Result{Correct: true, CorrectValue: 2},
	)
	if err == nil {
		t.Fatal("expected error for correct answer")
	}
}

func TestExplainPropagatesProviderError(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock)

	_, err := svc.Explain(context.Background(), sampleQuestion(),
		quiz.Answer{QuestionID: 42, Option: 1},
		quiz.Result{Correct: false, CorrectValue: 2},
	)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestRenderAnswerPerType(t *testing.T) {
	tests := []struct {
		name string
		q    *quiz.Question
		a    quiz.Answer
		want string
	}{
		{
			name: "multi choice",
			q: &quiz.Question{
				Type:    quiz.TypeMultiChoice,
				Options: []quiz.Media{{Text: "a"}, {Text: "b"}, {Text: "c"}},
			},
			a:    quiz.Answer{Options: []int{1, 3}},
			want: "1 (a), 3 (c)",
		},
		{
			name: "short text",
			q:    &quiz.Question{Type: quiz.TypeShortText},
			a:    quiz.Answer{Text: "photosynthesis"},
			want: "photosynthesis",
		},
		{
			name: "fill blank sorted by slot",
			q:    &quiz.Question{Type: quiz.TypeFillBlank},
			a:    quiz.Answer{Blanks: map[int]string{2: "two", 1: "one"}},
			want: `blank 1: "one", blank 2: "two"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderAnswer(tt.q, tt.a); got != tt.want {
				t.Errorf("renderAnswer = %q, want %q", got, tt.want)
			}
		})
	}
}
