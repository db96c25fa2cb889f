package nav

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/history"
	"github.com/abhisek/quizflow/internal/prefetch"
	"github.com/abhisek/quizflow/internal/quiz"
)

type stubFetcher struct {
	pages     map[string]*api.QuestionPage
	quizzes   map[int64]*api.QuizSummary
	feed      []quiz.FeedItem
	feedErr   error
	pageErr   error
	quizErr   error
	questions []string
	feedCalls []api.NextFeedParams
}

func (s *stubFetcher) Question(_ context.Context, permalink string) (*api.QuestionPage, error) {
	s.questions = append(s.questions, permalink)
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	page, ok := s.pages[permalink]
	if !ok {
		return nil, api.ErrNotFound
	}
	return page, nil
}

func (s *stubFetcher) Quiz(_ context.Context, quizID int64) (*api.QuizSummary, error) {
	if s.quizErr != nil {
		return nil, s.quizErr
	}
	summary, ok := s.quizzes[quizID]
	if !ok {
		return nil, api.ErrNotFound
	}
	return summary, nil
}

func (s *stubFetcher) NextFeed(_ context.Context, params api.NextFeedParams) ([]quiz.FeedItem, error) {
	s.feedCalls = append(s.feedCalls, params)
	if s.feedErr != nil {
		return nil, s.feedErr
	}
	return s.feed, nil
}

func page(quizID int64, permalink string) *api.QuestionPage {
	return &api.QuestionPage{
		Quiz:     quiz.Quiz{ID: quizID, Title: "quiz"},
		Question: quiz.Question{ID: quizID*100 + 1, Type: quiz.TypeSingleChoice, Permalink: permalink},
	}
}

type navStore struct {
	visited []int64
	order   []quiz.FeedItem
}

func (s *navStore) VisitedQuizzes() ([]int64, error)       { return s.visited, nil }
func (s *navStore) SetVisitedQuizzes(ids []int64) error    { s.visited = ids; return nil }
func (s *navStore) FeedQuizOrder() ([]quiz.FeedItem, error) { return s.order, nil }
func (s *navStore) SetFeedQuizOrder(items []quiz.FeedItem) error {
	s.order = items
	return nil
}

func newTestController(t *testing.T, fetcher *stubFetcher, store *navStore) *Controller {
	t.Helper()
	if store == nil {
		store = &navStore{}
	}
	queue := prefetch.New(fetcher)
	tracker := history.Load(store)
	order := LoadFeedOrder(store)
	ctrl := NewController(fetcher, queue, tracker, order)
	return ctrl
}

func TestDispatchDroppedWhileBusy(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]*api.QuestionPage{"/q/2": page(1, "/q/2")}}
	ctrl := newTestController(t, fetcher, nil)
	ctrl.SetPosition(Position{
		Quiz:     quiz.Quiz{ID: 1},
		Question: quiz.Question{ID: 101, NextPermalink: "/q/2"},
	})

	out := ctrl.Dispatch(IntentNextQuestion)
	require.NotNil(t, out.Resolution)
	assert.Equal(t, StateAwaiting, ctrl.State())

	// Anything arriving while resolution is in flight is a no-op.
	assert.True(t, ctrl.Dispatch(IntentNextQuestion).Dropped)
	assert.True(t, ctrl.Dispatch(IntentNextQuiz).Dropped)
}

func TestDispatchNextQuestionWithoutLinkDropped(t *testing.T) {
	ctrl := newTestController(t, &stubFetcher{}, nil)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 1}, Question: quiz.Question{ID: 101}})

	assert.True(t, ctrl.Dispatch(IntentNextQuestion).Dropped)
	assert.True(t, ctrl.Dispatch(IntentPrevQuestion).Dropped)
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestNextQuizPrefersPrefetchHead(t *testing.T) {
	fetcher := &stubFetcher{}
	ctrl := newTestController(t, fetcher, nil)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 1}, Question: quiz.Question{ID: 101}})

	ctrl.queue.Apply(0, []prefetch.Item{
		{Quiz: quiz.Quiz{ID: 2}, Question: quiz.Question{ID: 201}},
		{Quiz: quiz.Quiz{ID: 3}, Question: quiz.Question{ID: 301}},
	})

	out := ctrl.Dispatch(IntentNextQuiz)
	require.NotNil(t, out.Target)
	assert.Equal(t, int64(2), out.Target.Quiz.ID)
	assert.Equal(t, SlideUp, out.Target.Slide)
	assert.Equal(t, StateTransitioning, ctrl.State())

	// Exactly one entry was consumed and nothing hit the network.
	assert.Equal(t, 1, ctrl.queue.Depth())
	assert.Empty(t, fetcher.questions)
	assert.Empty(t, fetcher.feedCalls)
}

func TestNextQuizFallsBackToFeedOrder(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]*api.QuestionPage{"/q/b1": page(5, "/q/b1")}}
	store := &navStore{}
	ctrl := newTestController(t, fetcher, store)
	require.NoError(t, ctrl.RecordListing([]quiz.FeedItem{
		{QuizID: 4, FirstQuestionPermalink: "/q/a1"},
		{QuizID: 5, FirstQuestionPermalink: "/q/b1"},
	}))
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 4}, Question: quiz.Question{ID: 401}})

	out := ctrl.Dispatch(IntentNextQuiz)
	require.NotNil(t, out.Resolution)

	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, int64(5), target.Quiz.ID)
	assert.True(t, target.QuizChange)
	assert.Empty(t, fetcher.feedCalls)
}

func TestNextQuizDirectFetchExcludesHistory(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]*api.QuestionPage{"/q/fresh": page(9, "/q/fresh")},
		feed:  []quiz.FeedItem{{QuizID: 9, FirstQuestionPermalink: "/q/fresh"}},
	}
	store := &navStore{visited: []int64{2, 3}}
	ctrl := newTestController(t, fetcher, store)
	ctrl.SetPosition(Position{
		Quiz:     quiz.Quiz{ID: 4},
		Question: quiz.Question{ID: 401, Permalink: "/q/cur"},
	})

	out := ctrl.Dispatch(IntentNextQuiz)
	require.NotNil(t, out.Resolution)

	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, int64(9), target.Quiz.ID)

	require.Len(t, fetcher.feedCalls, 1)
	call := fetcher.feedCalls[0]
	assert.Equal(t, 1, call.Limit)
	assert.Equal(t, int64(4), call.CurrentQuizID)
	assert.Equal(t, "/q/cur", call.CurrentQuestion)
	assert.Equal(t, []int64{2, 3}, call.Exclude)
}

func TestPrevQuizGatedOnFirstQuiz(t *testing.T) {
	ctrl := newTestController(t, &stubFetcher{}, &navStore{})
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 7}, Question: quiz.Question{ID: 701}})

	assert.False(t, ctrl.CanGoBack())
	assert.True(t, ctrl.Dispatch(IntentPrevQuiz).Dropped)
	assert.Equal(t, StateIdle, ctrl.State())

	// A looped-back position whose only history entry is itself is
	// equally a dead end.
	store := &navStore{visited: []int64{7}}
	ctrl = newTestController(t, &stubFetcher{}, store)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 7}, Question: quiz.Question{ID: 701}})
	assert.False(t, ctrl.CanGoBack())
	assert.True(t, ctrl.Dispatch(IntentPrevQuiz).Dropped)
}

func TestPrevQuizEnabledOnSecondQuiz(t *testing.T) {
	fetcher := &stubFetcher{
		pages:   map[string]*api.QuestionPage{"/q/a1": page(1, "/q/a1")},
		quizzes: map[int64]*api.QuizSummary{1: {Quiz: quiz.Quiz{ID: 1}, FirstQuestionPermalink: "/q/a1"}},
	}
	store := &navStore{}
	ctrl := newTestController(t, fetcher, store)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 1}, Question: quiz.Question{ID: 101, Permalink: "/q/a1"}})
	require.False(t, ctrl.CanGoBack())

	ctrl.queue.Apply(0, []prefetch.Item{{Quiz: quiz.Quiz{ID: 2}, Question: quiz.Question{ID: 201}}})
	out := ctrl.Dispatch(IntentNextQuiz)
	require.NotNil(t, out.Target)
	_, ok := ctrl.Commit()
	require.True(t, ok)

	// One navigation in, the backward control lights up and resolves
	// to the first quiz's first question.
	assert.True(t, ctrl.CanGoBack())

	out = ctrl.Dispatch(IntentPrevQuiz)
	require.NotNil(t, out.Resolution)
	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, int64(1), target.Quiz.ID)
	assert.Equal(t, "/q/a1", target.Question.Permalink)
	assert.Equal(t, SlideDown, target.Slide)
}

func TestPrevQuizResolvesHistoryPredecessor(t *testing.T) {
	fetcher := &stubFetcher{
		pages:   map[string]*api.QuestionPage{"/q/old": page(2, "/q/old")},
		quizzes: map[int64]*api.QuizSummary{2: {Quiz: quiz.Quiz{ID: 2}, FirstQuestionPermalink: "/q/old"}},
	}
	store := &navStore{visited: []int64{2, 3}}
	ctrl := newTestController(t, fetcher, store)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 3}, Question: quiz.Question{ID: 301}})

	out := ctrl.Dispatch(IntentPrevQuiz)
	require.NotNil(t, out.Resolution)

	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, int64(2), target.Quiz.ID)
	assert.Equal(t, SlideDown, target.Slide)
}

func TestPrevQuizSilentDegradeOnFailure(t *testing.T) {
	fetcher := &stubFetcher{
		quizErr: errors.New("boom"),
		pageErr: errors.New("boom"),
	}
	store := &navStore{
		visited: []int64{2, 3},
		order:   []quiz.FeedItem{{QuizID: 2, FirstQuestionPermalink: "/q/old"}, {QuizID: 3, FirstQuestionPermalink: "/q/cur"}},
	}
	ctrl := newTestController(t, fetcher, store)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 3}, Question: quiz.Question{ID: 301}})

	out := ctrl.Dispatch(IntentPrevQuiz)
	require.NotNil(t, out.Resolution)

	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	assert.NoError(t, err)
	assert.Nil(t, target)

	// A miss returns the controller to idle without a transition.
	assert.False(t, ctrl.Complete(out.Resolution.Seq, target, err))
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestPrevQuizCancellationPropagates(t *testing.T) {
	fetcher := &stubFetcher{quizErr: context.Canceled}
	store := &navStore{visited: []int64{2, 3}}
	ctrl := newTestController(t, fetcher, store)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 3}, Question: quiz.Question{ID: 301}})

	out := ctrl.Dispatch(IntentPrevQuiz)
	require.NotNil(t, out.Resolution)

	_, err := ctrl.Resolve(context.Background(), out.Resolution)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompleteIgnoresStaleSeq(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]*api.QuestionPage{"/q/2": page(1, "/q/2")}}
	ctrl := newTestController(t, fetcher, nil)
	ctrl.SetPosition(Position{
		Quiz:     quiz.Quiz{ID: 1},
		Question: quiz.Question{ID: 101, NextPermalink: "/q/2"},
	})

	out := ctrl.Dispatch(IntentNextQuestion)
	require.NotNil(t, out.Resolution)

	stale := out.Resolution.Seq - 1
	assert.False(t, ctrl.Complete(stale, &Target{}, nil))
	assert.Equal(t, StateAwaiting, ctrl.State())

	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	require.NoError(t, err)
	assert.True(t, ctrl.Complete(out.Resolution.Seq, target, nil))
	assert.Equal(t, StateTransitioning, ctrl.State())
}

func TestCommitRecordsDepartedQuiz(t *testing.T) {
	store := &navStore{}
	ctrl := newTestController(t, &stubFetcher{}, store)
	ctrl.SetPosition(Position{Quiz: quiz.Quiz{ID: 1}, Question: quiz.Question{ID: 101}})

	ctrl.queue.Apply(0, []prefetch.Item{{Quiz: quiz.Quiz{ID: 2}, Question: quiz.Question{ID: 201}}})
	out := ctrl.Dispatch(IntentNextQuiz)
	require.NotNil(t, out.Target)

	committed, ok := ctrl.Commit()
	require.True(t, ok)
	assert.True(t, committed.QuizChanged)
	assert.Equal(t, int64(1), committed.FromQuizID)
	assert.Equal(t, int64(2), committed.Position.Quiz.ID)
	assert.Equal(t, StateIdle, ctrl.State())

	// The quiz we left is now in history; the one we are on is not.
	assert.Equal(t, []int64{1}, store.visited)
}

func TestCommitQuestionMoveSkipsHistory(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]*api.QuestionPage{"/q/2": page(1, "/q/2")}}
	store := &navStore{}
	ctrl := newTestController(t, fetcher, store)
	ctrl.SetPosition(Position{
		Quiz:     quiz.Quiz{ID: 1},
		Question: quiz.Question{ID: 101, NextPermalink: "/q/2"},
	})

	out := ctrl.Dispatch(IntentNextQuestion)
	require.NotNil(t, out.Resolution)
	target, err := ctrl.Resolve(context.Background(), out.Resolution)
	require.NoError(t, err)
	require.True(t, ctrl.Complete(out.Resolution.Seq, target, err))

	committed, ok := ctrl.Commit()
	require.True(t, ok)
	assert.False(t, committed.QuizChanged)
	assert.Empty(t, store.visited)
}

func TestRepeatedForwardThenNextQuiz(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]*api.QuestionPage{
		"/q/1-2": {Quiz: quiz.Quiz{ID: 1}, Question: quiz.Question{ID: 102, Permalink: "/q/1-2", NextPermalink: "/q/1-3", PrevPermalink: "/q/1-1"}},
		"/q/1-3": {Quiz: quiz.Quiz{ID: 1}, Question: quiz.Question{ID: 103, Permalink: "/q/1-3", PrevPermalink: "/q/1-2"}},
	}}
	ctrl := newTestController(t, fetcher, nil)
	ctrl.SetPosition(Position{
		Quiz:     quiz.Quiz{ID: 1},
		Question: quiz.Question{ID: 101, Permalink: "/q/1-1", NextPermalink: "/q/1-2"},
	})

	for _, want := range []string{"/q/1-2", "/q/1-3"} {
		out := ctrl.Dispatch(IntentNextQuestion)
		require.NotNil(t, out.Resolution)
		target, err := ctrl.Resolve(context.Background(), out.Resolution)
		require.NoError(t, err)
		require.True(t, ctrl.Complete(out.Resolution.Seq, target, err))
		committed, ok := ctrl.Commit()
		require.True(t, ok)
		assert.Equal(t, want, committed.Position.Question.Permalink)
	}

	// Last question in the quiz has no forward link; the next-quiz
	// path still works from the prefetch queue.
	assert.True(t, ctrl.Dispatch(IntentNextQuestion).Dropped)

	ctrl.queue.Apply(0, []prefetch.Item{{Quiz: quiz.Quiz{ID: 2}, Question: quiz.Question{ID: 201}}})
	out := ctrl.Dispatch(IntentNextQuiz)
	require.NotNil(t, out.Target)
	assert.Equal(t, int64(2), out.Target.Quiz.ID)
}
