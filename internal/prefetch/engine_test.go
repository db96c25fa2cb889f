package prefetch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/quiz"
)

// mockFetcher implements Fetcher with canned feed items and per-permalink
// question pages or errors.
type mockFetcher struct {
	feed      []quiz.FeedItem
	feedErr   error
	pages     map[string]*api.QuestionPage
	pageErrs  map[string]error
	feedCalls []api.NextFeedParams
	resolved  []string
}

func (m *mockFetcher) NextFeed(_ context.Context, params api.NextFeedParams) ([]quiz.FeedItem, error) {
	m.feedCalls = append(m.feedCalls, params)
	if m.feedErr != nil {
		return nil, m.feedErr
	}
	return m.feed, nil
}

func (m *mockFetcher) Question(_ context.Context, permalink string) (*api.QuestionPage, error) {
	m.resolved = append(m.resolved, permalink)
	if err, ok := m.pageErrs[permalink]; ok {
		return nil, err
	}
	page, ok := m.pages[permalink]
	if !ok {
		return nil, fmt.Errorf("no page for %s", permalink)
	}
	return page, nil
}

func feedItem(id int64) quiz.FeedItem {
	return quiz.FeedItem{QuizID: id, FirstQuestionPermalink: fmt.Sprintf("quiz-%d-q1", id)}
}

func pageFor(id int64) *api.QuestionPage {
	return &api.QuestionPage{
		Quiz:     quiz.Quiz{ID: id},
		Question: quiz.Question{ID: id * 10, Permalink: fmt.Sprintf("quiz-%d-q1", id)},
	}
}

func fetcherFor(ids ...int64) *mockFetcher {
	m := &mockFetcher{pages: map[string]*api.QuestionPage{}, pageErrs: map[string]error{}}
	for _, id := range ids {
		m.feed = append(m.feed, feedItem(id))
		m.pages[feedItem(id).FirstQuestionPermalink] = pageFor(id)
	}
	return m
}

func TestRunCycleResolvesSequentially(t *testing.T) {
	m := fetcherFor(1, 2, 3)
	e := New(m)

	ctx, cycle := e.StartCycle(context.Background())
	items, err := e.RunCycle(ctx, 9, "current-q", []int64{4, 5})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Append order matches feed order.
	assert.Equal(t, []string{"quiz-1-q1", "quiz-2-q1", "quiz-3-q1"}, m.resolved)

	require.True(t, e.Apply(cycle, items))
	assert.Equal(t, 3, e.Depth())
	head, ok := e.Head()
	require.True(t, ok)
	assert.Equal(t, int64(1), head.Quiz.ID)
}

func TestRunCycleExcludeParams(t *testing.T) {
	m := fetcherFor(1)
	e := New(m)

	ctx, _ := e.StartCycle(context.Background())
	_, err := e.RunCycle(ctx, 9, "current-q", []int64{4, 5})
	require.NoError(t, err)

	require.Len(t, m.feedCalls, 1)
	params := m.feedCalls[0]
	assert.Equal(t, int64(9), params.CurrentQuizID)
	assert.Equal(t, "current-q", params.CurrentQuestion)
	assert.Equal(t, BatchSize, params.Limit)
	assert.Equal(t, []int64{4, 5}, params.Exclude)
}

func TestRunCycleSkipsFailedCandidate(t *testing.T) {
	m := fetcherFor(1, 2, 3)
	m.pageErrs["quiz-2-q1"] = errors.New("boom")
	e := New(m)

	var logged []string
	e.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	ctx, cycle := e.StartCycle(context.Background())
	items, err := e.RunCycle(ctx, 0, "", nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Quiz.ID)
	assert.Equal(t, int64(3), items[1].Quiz.ID)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "quiz 2")

	e.Apply(cycle, items)
	assert.Equal(t, 2, e.Depth())
}

func TestRunCycleAbortsOnCancellation(t *testing.T) {
	m := fetcherFor(1, 2, 3)
	e := New(m)

	ctx, cancel := context.WithCancel(context.Background())
	cycleCtx, _ := e.StartCycle(ctx)

	// The cycle is superseded before any candidate resolves: no items
	// survive and the error is a cancellation, not a failure.
	cancel()
	_, err := e.RunCycle(cycleCtx, 0, "", nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.resolved)
}

func TestApplyDiscardsStaleCycle(t *testing.T) {
	m := fetcherFor(1, 2)
	e := New(m)

	ctx1, cycle1 := e.StartCycle(context.Background())
	items1, err := e.RunCycle(ctx1, 0, "", nil)
	require.NoError(t, err)

	// A newer cycle starts before cycle 1's results are applied.
	m2 := fetcherFor(8, 9)
	e.fetcher = m2
	ctx2, cycle2 := e.StartCycle(context.Background())

	// Cycle 1's context is cancelled by the new cycle.
	assert.Error(t, ctx1.Err())
	assert.NoError(t, ctx2.Err())

	items2, err := e.RunCycle(ctx2, 0, "", nil)
	require.NoError(t, err)

	// Stale results are discarded even though they resolved "later".
	require.True(t, e.Apply(cycle2, items2))
	assert.False(t, e.Apply(cycle1, items1))

	assert.Equal(t, 2, e.Depth())
	head, _ := e.Head()
	assert.Equal(t, int64(8), head.Quiz.ID)
}

func TestQueueCapAndRefillThreshold(t *testing.T) {
	e := New(fetcherFor())

	// Force-fill past the cap: Apply stops at MaxDepth.
	var items []Item
	for i := range 8 {
		items = append(items, Item{Quiz: quiz.Quiz{ID: int64(i)}})
	}
	_, cycle := e.StartCycle(context.Background())
	e.Apply(cycle, items)
	assert.Equal(t, MaxDepth, e.Depth())
	assert.False(t, e.NeedsRefill())

	// Consuming the head pops exactly one entry.
	_, ok := e.Pop()
	require.True(t, ok)
	assert.Equal(t, MaxDepth-1, e.Depth())
	assert.False(t, e.NeedsRefill())

	e.Pop()
	assert.False(t, e.NeedsRefill())

	// Depth 2 hits the refill threshold.
	e.Pop()
	assert.Equal(t, RefillThreshold, e.Depth())
	assert.True(t, e.NeedsRefill())
}

func TestPopEmpty(t *testing.T) {
	e := New(fetcherFor())
	_, ok := e.Pop()
	assert.False(t, ok)
	_, ok = e.Head()
	assert.False(t, ok)
	assert.True(t, e.NeedsRefill())
}

func TestRunCycleFeedFailure(t *testing.T) {
	m := fetcherFor()
	m.feedErr = errors.New("recommender down")
	e := New(m)

	ctx, _ := e.StartCycle(context.Background())
	_, err := e.RunCycle(ctx, 0, "", nil)
	require.Error(t, err)
}

func TestRunCycleTruncatesOversizedBatch(t *testing.T) {
	m := fetcherFor(1, 2, 3, 4, 5)
	e := New(m)

	ctx, _ := e.StartCycle(context.Background())
	items, err := e.RunCycle(ctx, 0, "", nil)
	require.NoError(t, err)
	assert.Len(t, items, BatchSize)
}
