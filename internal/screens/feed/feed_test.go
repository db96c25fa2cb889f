package feed

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/nav"
	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/router"
	"github.com/abhisek/quizflow/internal/stats"
	"github.com/abhisek/quizflow/internal/store"
)

// stubBackend implements Backend for testing.
type stubBackend struct {
	pages     map[string]*api.QuestionPage
	feed      []quiz.FeedItem
	quizStats map[int64]*api.QuizStatistics
	recorded  []api.RecordAnswerRequest
	feedCalls []api.NextFeedParams
	anonymous bool
	recordErr error
}

func (b *stubBackend) Authenticated() bool { return !b.anonymous }

func (b *stubBackend) Question(_ context.Context, permalink string) (*api.QuestionPage, error) {
	page, ok := b.pages[permalink]
	if !ok {
		return nil, api.ErrNotFound
	}
	return page, nil
}

func (b *stubBackend) Quiz(_ context.Context, _ int64) (*api.QuizSummary, error) {
	return nil, api.ErrNotFound
}

func (b *stubBackend) NextFeed(_ context.Context, params api.NextFeedParams) ([]quiz.FeedItem, error) {
	b.feedCalls = append(b.feedCalls, params)
	return b.feed, nil
}

func (b *stubBackend) QuizStatistics(_ context.Context, quizID int64) (*api.QuizStatistics, error) {
	st, ok := b.quizStats[quizID]
	if !ok {
		return nil, api.ErrNotFound
	}
	return st, nil
}

func (b *stubBackend) RecordAnswer(_ context.Context, quizID int64, req api.RecordAnswerRequest) error {
	if b.recordErr != nil {
		return b.recordErr
	}
	b.recorded = append(b.recorded, req)
	return nil
}

// stubSession implements store.SessionRepo for testing.
type stubSession struct {
	visited []int64
	order   []quiz.FeedItem
}

func (s *stubSession) VisitedQuizzes() ([]int64, error)           { return s.visited, nil }
func (s *stubSession) SetVisitedQuizzes(ids []int64) error        { s.visited = ids; return nil }
func (s *stubSession) FeedQuizOrder() ([]quiz.FeedItem, error)    { return s.order, nil }
func (s *stubSession) SetFeedQuizOrder(it []quiz.FeedItem) error  { s.order = it; return nil }
func (s *stubSession) StartSession() error                        { s.visited = nil; s.order = nil; return nil }
func (s *stubSession) Clear() error                               { return nil }

// stubEvents implements store.EventRepo for testing.
type stubEvents struct {
	answers []store.AnswerEventData
}

func (s *stubEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	s.answers = append(s.answers, data)
	return nil
}
func (s *stubEvents) AppendCoachRequest(_ context.Context, _ store.CoachRequestEventData) error {
	return nil
}
func (s *stubEvents) AnswerStats(_ context.Context) ([]store.QuizAnswerStats, error) {
	return nil, nil
}
func (s *stubEvents) CountAnswers(_ context.Context) (int, int, error) {
	return 0, 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func capitalQuestion() quiz.Question {
	return quiz.Question{
		ID:      101,
		Ordinal: 1,
		Type:    quiz.TypeSingleChoice,
		Prompt:  quiz.Media{Text: "What is the capital of France?"},
		Options: []quiz.Media{
			{Text: "Lyon"}, {Text: "Paris"}, {Text: "Nice"},
		},
		CorrectOption: 2,
		Hints:         []quiz.Hint{{Number: 1, Text: "It hosts the Louvre."}},
		Permalink:     "quiz-1-q1",
		NextPermalink: "quiz-1-q2",
	}
}

func testBackend() *stubBackend {
	q := capitalQuestion()
	return &stubBackend{
		pages: map[string]*api.QuestionPage{
			"quiz-1-q1": {
				Quiz:     quiz.Quiz{ID: 1, Title: "Capitals", QuestionCount: 3},
				Question: q,
			},
		},
		feed: []quiz.FeedItem{
			{QuizID: 1, FirstQuestionPermalink: "quiz-1-q1"},
			{QuizID: 2, FirstQuestionPermalink: "quiz-2-q1"},
		},
		quizStats: map[int64]*api.QuizStatistics{
			1: {ParticipantCount: 12, AnswerCount: 40, CorrectRate: 0.75},
		},
	}
}

func testFeedScreen(t *testing.T) (*FeedScreen, *stubBackend, *stubEvents) {
	t.Helper()
	backend := testBackend()
	events := &stubEvents{}
	scr := New(backend, &stubSession{}, events, nil)

	msg := scr.Init()()
	ready, ok := msg.(feedReadyMsg)
	if !ok {
		t.Fatalf("expected feedReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("unexpected init error: %v", ready.Err)
	}
	scr.Update(ready)
	return scr, backend, events
}

func TestInitLoadsFirstQuestion(t *testing.T) {
	scr, backend, _ := testFeedScreen(t)

	if scr.loading {
		t.Error("expected loading to be done")
	}
	pos, ok := scr.ctrl.Position()
	if !ok {
		t.Fatal("expected a position after init")
	}
	if pos.Quiz.ID != 1 || pos.Question.ID != 101 {
		t.Errorf("unexpected position: quiz %d question %d", pos.Quiz.ID, pos.Question.ID)
	}
	if len(backend.feedCalls) == 0 || backend.feedCalls[0].Limit != feedPageSize {
		t.Errorf("expected initial listing with limit %d", feedPageSize)
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	scr, backend, events := testFeedScreen(t)

	scr.Update(keyPress('2'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if !scr.submitted {
		t.Fatal("expected submission")
	}
	if !scr.result.Correct {
		t.Error("expected the answer to be correct")
	}
	if len(events.answers) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(events.answers))
	}
	ev := events.answers[0]
	if !ev.Correct || ev.QuizID != 1 || ev.QuestionID != 101 {
		t.Errorf("unexpected answer event: %+v", ev)
	}

	if cmd == nil {
		t.Fatal("expected a record-answer command")
	}
	msg := cmd()
	if rec, ok := msg.(answerRecordedMsg); !ok || rec.Err != nil {
		t.Fatalf("expected answerRecordedMsg without error, got %T %v", msg, msg)
	}
	if len(backend.recorded) != 1 {
		t.Fatalf("expected 1 recorded answer, got %d", len(backend.recorded))
	}
	if backend.recorded[0].SelectedOption != "Paris" {
		t.Errorf("expected selected option text Paris, got %q", backend.recorded[0].SelectedOption)
	}
}

func TestSubmitWithoutSelectionShowsBanner(t *testing.T) {
	scr, _, events := testFeedScreen(t)

	scr.Update(specialKey(tea.KeyEnter))

	if scr.submitted {
		t.Error("expected no submission")
	}
	if scr.banner == "" {
		t.Error("expected a banner prompting for an answer")
	}
	if len(events.answers) != 0 {
		t.Errorf("expected no answer events, got %d", len(events.answers))
	}
}

func TestWrongAnswerLocksAndRecords(t *testing.T) {
	scr, _, events := testFeedScreen(t)

	scr.Update(keyPress('1'))
	scr.Update(specialKey(tea.KeyEnter))

	if scr.result.Correct {
		t.Error("expected an incorrect result")
	}
	if !scr.choice.Locked() {
		t.Error("expected the choice widget to be locked")
	}
	if len(events.answers) != 1 || events.answers[0].Correct {
		t.Errorf("expected one incorrect answer event, got %+v", events.answers)
	}
}

func TestRecordFailureRollsBackSubmission(t *testing.T) {
	scr, backend, _ := testFeedScreen(t)
	backend.recordErr = errors.New("boom")

	scr.Update(keyPress('2'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a record-answer command")
	}
	scr.Update(cmd())

	if scr.submitted {
		t.Error("expected the submission to be rolled back")
	}
	if scr.choice.Locked() {
		t.Error("expected the choice widget to be unlocked again")
	}
	if scr.banner == "" {
		t.Error("expected a banner about the failed transmission")
	}
}

func TestAnonymousSubmitSkipsTransmission(t *testing.T) {
	backend := testBackend()
	backend.anonymous = true
	scr := New(backend, &stubSession{}, &stubEvents{}, nil)
	scr.Update(scr.Init()())

	scr.Update(keyPress('2'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if !scr.submitted {
		t.Fatal("expected submission")
	}
	if cmd != nil {
		t.Error("expected no record-answer command for an anonymous session")
	}
	if len(backend.recorded) != 0 {
		t.Errorf("expected no recorded answers, got %d", len(backend.recorded))
	}
}

func TestHintRevealCappedAndRecorded(t *testing.T) {
	scr, _, events := testFeedScreen(t)

	scr.Update(keyPress('h'))
	scr.Update(keyPress('h'))
	if scr.hintsShown != 1 {
		t.Errorf("expected hint count capped at 1, got %d", scr.hintsShown)
	}

	scr.Update(keyPress('2'))
	scr.Update(specialKey(tea.KeyEnter))
	if events.answers[0].HintsUsed != 1 {
		t.Errorf("expected 1 hint recorded, got %d", events.answers[0].HintsUsed)
	}
}

func TestEnterAfterSubmitMovesOn(t *testing.T) {
	scr, _, _ := testFeedScreen(t)

	scr.Update(keyPress('2'))
	scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if scr.ctrl.State() != nav.StateAwaiting {
		t.Errorf("expected a pending navigation, state %v", scr.ctrl.State())
	}
	if cmd == nil {
		t.Error("expected a resolve command")
	}
}

func TestWheelAccumulatesBeforeFiring(t *testing.T) {
	scr, _, _ := testFeedScreen(t)

	wheelDown := tea.MouseWheelMsg{Button: tea.MouseWheelDown}
	for i := 0; i < 4; i++ {
		scr.Update(wheelDown)
		if scr.ctrl.State() != nav.StateIdle {
			t.Fatalf("expected no navigation after %d ticks", i+1)
		}
	}
	scr.Update(wheelDown)
	if scr.ctrl.State() == nav.StateIdle {
		t.Error("expected the fifth tick to fire a quiz move")
	}
}

func TestWheelBackFiresImmediately(t *testing.T) {
	scr, _, _ := testFeedScreen(t)

	// No history yet, so the intent is dropped, but it must not
	// require accumulation to be produced: a single hard tick resets
	// the forward budget.
	scr.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	scr.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})

	for i := 0; i < 4; i++ {
		scr.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	}
	if scr.ctrl.State() != nav.StateIdle {
		t.Error("expected the forward budget to have been reset")
	}
}

func TestStatsToggleFetchesOnce(t *testing.T) {
	scr, _, _ := testFeedScreen(t)

	_, cmd := scr.Update(keyPress('s'))
	if !scr.showStats {
		t.Fatal("expected the stats panel to open")
	}
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}

	msg := cmd()
	scr.Update(msg)
	st, state := scr.stats.Get(1)
	if state != stats.Ready || st == nil || st.ParticipantCount != 12 {
		t.Errorf("expected cached statistics, state %v", state)
	}

	// Toggling off and on again must not refetch.
	scr.Update(keyPress('s'))
	_, cmd = scr.Update(keyPress('s'))
	if cmd != nil {
		t.Error("expected no second fetch for cached statistics")
	}
}

func TestStaleNavResolutionIgnored(t *testing.T) {
	scr, _, _ := testFeedScreen(t)

	target := &nav.Target{Slide: nav.SlideUp, QuizChange: true}
	scr.Update(navResolvedMsg{Seq: 99, Target: target})

	if scr.ctrl.State() != nav.StateIdle {
		t.Errorf("expected a stale resolution to be ignored, state %v", scr.ctrl.State())
	}
}

func TestFeedErrorThenKeyGoesBack(t *testing.T) {
	backend := testBackend()
	backend.feed = nil
	scr := New(backend, &stubSession{}, &stubEvents{}, nil)

	msg := scr.Init()()
	scr.Update(msg)
	if scr.errMsg == "" {
		t.Fatal("expected an error for an empty feed")
	}

	_, cmd := scr.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected router.PopScreenMsg")
	}
}
