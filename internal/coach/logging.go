package coach

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/quizflow/internal/store"
)

// LoggingProvider is a decorator that records every coach request as an
// event in the local store.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.CoachRequestEventData{
		Provider:   l.inner.ModelID(),
		Model:      l.inner.ModelID(),
		QuestionID: questionIDFrom(ctx),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendCoachRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log coach request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

type contextKey string

const questionIDKey contextKey = "coach_question_id"

// WithQuestionID attaches the subject question to the context for event
// logging.
func WithQuestionID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, questionIDKey, id)
}

// questionIDFrom extracts the subject question from the context.
func questionIDFrom(ctx context.Context) int64 {
	if v, ok := ctx.Value(questionIDKey).(int64); ok {
		return v
	}
	return 0
}
