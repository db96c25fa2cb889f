package store

import (
	"context"
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestVisitedQuizzesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	// Empty store: no history, no error.
	ids, err := repo.VisitedQuizzes()
	if err != nil {
		t.Fatalf("visited (empty): %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty history, got %v", ids)
	}

	if err := repo.SetVisitedQuizzes([]int64{3, 1, 7}); err != nil {
		t.Fatalf("set visited: %v", err)
	}

	ids, err = repo.VisitedQuizzes()
	if err != nil {
		t.Fatalf("visited: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 || ids[2] != 7 {
		t.Errorf("visited = %v, want [3 1 7]", ids)
	}

	// Overwrite replaces, not appends.
	if err := repo.SetVisitedQuizzes([]int64{9}); err != nil {
		t.Fatalf("set visited (overwrite): %v", err)
	}
	ids, _ = repo.VisitedQuizzes()
	if len(ids) != 1 || ids[0] != 9 {
		t.Errorf("visited after overwrite = %v, want [9]", ids)
	}
}

func TestFeedQuizOrderRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	items := []quiz.FeedItem{
		{QuizID: 1, FirstQuestionPermalink: "/q/1-1"},
		{QuizID: 2, FirstQuestionPermalink: "/q/2-1"},
	}
	if err := repo.SetFeedQuizOrder(items); err != nil {
		t.Fatalf("set order: %v", err)
	}

	got, err := repo.FeedQuizOrder()
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if len(got) != 2 || got[1].FirstQuestionPermalink != "/q/2-1" {
		t.Errorf("order = %v", got)
	}
}

func TestStartSessionResetsState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Seed a stale entry under a superseded key plus a full session
	// from a previous run.
	_, err := s.Client().SessionEntry.Create().
		SetKey("visited_quizzes").
		SetValue(`"opaque v1 payload"`).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed legacy entry: %v", err)
	}
	if err := repo.SetVisitedQuizzes([]int64{4, 8}); err != nil {
		t.Fatalf("set visited: %v", err)
	}
	if err := repo.SetFeedQuizOrder([]quiz.FeedItem{{QuizID: 4, FirstQuestionPermalink: "/q/4"}}); err != nil {
		t.Fatalf("set order: %v", err)
	}
	if err := s.EventRepo().AppendAnswer(ctx, AnswerEventData{QuizID: 4, QuestionID: 41, Correct: true}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	if err := repo.StartSession(); err != nil {
		t.Fatalf("start session: %v", err)
	}

	// History and ordering do not survive a session boundary.
	count, err := s.Client().SessionEntry.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 0 {
		t.Errorf("entry count = %d, want 0", count)
	}
	ids, err := repo.VisitedQuizzes()
	if err != nil {
		t.Fatalf("visited after reset: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("visited after reset = %v, want empty", ids)
	}

	// The answer log is not session-scoped and is kept.
	total, _, err := s.EventRepo().CountAnswers(ctx)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if total != 1 {
		t.Errorf("answer count = %d, want 1", total)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	if err := repo.SetVisitedQuizzes([]int64{1, 2}); err != nil {
		t.Fatalf("set visited: %v", err)
	}
	if err := repo.SetFeedQuizOrder([]quiz.FeedItem{{QuizID: 1, FirstQuestionPermalink: "/q/1"}}); err != nil {
		t.Fatalf("set order: %v", err)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	ids, _ := repo.VisitedQuizzes()
	if len(ids) != 0 {
		t.Errorf("visited after clear = %v, want empty", ids)
	}
	items, _ := repo.FeedQuizOrder()
	if len(items) != 0 {
		t.Errorf("order after clear = %v, want empty", items)
	}
}

func TestAppendAnswerAndAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{QuizID: 1, QuestionID: 101, QuestionType: "single_choice", Answer: "2", Correct: true, TimeMs: 1200},
		{QuizID: 1, QuestionID: 102, QuestionType: "short_text", Answer: "paris", Correct: false, HintsUsed: 1, TimeMs: 8000},
		{QuizID: 2, QuestionID: 201, QuestionType: "multi_choice", Answer: "[1,3]", Correct: true, TimeMs: 4100},
	}
	for _, ev := range events {
		if err := repo.AppendAnswer(ctx, ev); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	total, correct, err := repo.CountAnswers(ctx)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if total != 3 || correct != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", total, correct)
	}

	stats, err := repo.AnswerStats(ctx)
	if err != nil {
		t.Fatalf("answer stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats length = %d, want 2", len(stats))
	}
	// Quiz 1 has more answers, so it sorts first.
	if stats[0].QuizID != 1 || stats[0].Total != 2 || stats[0].Correct != 1 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].QuizID != 2 || stats[1].Total != 1 || stats[1].Correct != 1 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}
