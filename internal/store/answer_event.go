package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/quizflow/ent"
	"github.com/abhisek/quizflow/ent/answerevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetAnswer(data.Answer).
		SetCorrect(data.Correct).
		SetHintsUsed(data.HintsUsed).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CoachRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetQuestionID(data.QuestionID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save coach request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) ([]QuizAnswerStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byQuiz := make(map[int64]*QuizAnswerStats)
	for _, ev := range events {
		s, ok := byQuiz[ev.QuizID]
		if !ok {
			s = &QuizAnswerStats{QuizID: ev.QuizID}
			byQuiz[ev.QuizID] = s
		}
		s.Total++
		if ev.Correct {
			s.Correct++
		}
	}

	stats := make([]QuizAnswerStats, 0, len(byQuiz))
	for _, s := range byQuiz {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].QuizID < stats[j].QuizID
	})
	return stats, nil
}

func (r *eventRepo) CountAnswers(ctx context.Context) (int, int, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answers: %w", err)
	}
	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}
	return total, correct, nil
}
