package stats

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizflow/internal/api"
)

type mockFetcher struct {
	stats map[int64]*api.QuizStatistics
	errs  map[int64]error
	calls int
}

func (m *mockFetcher) QuizStatistics(_ context.Context, quizID int64) (*api.QuizStatistics, error) {
	m.calls++
	if err, ok := m.errs[quizID]; ok {
		return nil, err
	}
	s, ok := m.stats[quizID]
	if !ok {
		return nil, fmt.Errorf("wrap: %w", api.ErrNotFound)
	}
	return s, nil
}

func TestFetchAndMemoize(t *testing.T) {
	m := &mockFetcher{stats: map[int64]*api.QuizStatistics{
		7: {ParticipantCount: 120, AnswerCount: 300, CorrectRate: 0.7},
	}}
	c := New(m)

	_, state := c.Get(7)
	assert.Equal(t, Missing, state)

	require.True(t, c.BeginFetch(7))
	stats, err := c.Fetch(context.Background(), 7)
	c.Apply(7, stats, err)

	got, state := c.Get(7)
	assert.Equal(t, Ready, state)
	assert.Equal(t, 120, got.ParticipantCount)

	// A second expansion does not fetch again.
	assert.False(t, c.BeginFetch(7))
	assert.Equal(t, 1, m.calls)
}

func TestInFlightGuard(t *testing.T) {
	c := New(&mockFetcher{})
	require.True(t, c.BeginFetch(1))

	// The fetch is still in flight; a concurrent expansion must not
	// start a second one.
	assert.False(t, c.BeginFetch(1))
	_, state := c.Get(1)
	assert.Equal(t, Loading, state)
}

func TestNotFoundCachedAsNoData(t *testing.T) {
	m := &mockFetcher{}
	c := New(m)

	require.True(t, c.BeginFetch(3))
	stats, err := c.Fetch(context.Background(), 3)
	c.Apply(3, stats, err)

	got, state := c.Get(3)
	assert.Equal(t, NoData, state)
	assert.Nil(t, got)

	// "No data" is a cached answer, not a retry candidate.
	assert.False(t, c.BeginFetch(3))
	assert.Equal(t, 1, m.calls)
}

func TestTransientFailureIsRetryable(t *testing.T) {
	m := &mockFetcher{errs: map[int64]error{5: errors.New("timeout")}}
	c := New(m)

	require.True(t, c.BeginFetch(5))
	stats, err := c.Fetch(context.Background(), 5)
	c.Apply(5, stats, err)

	_, state := c.Get(5)
	assert.Equal(t, Failed, state)

	// A retry is allowed after a failure.
	delete(m.errs, 5)
	m.stats = map[int64]*api.QuizStatistics{5: {ParticipantCount: 1}}
	require.True(t, c.BeginFetch(5))
	stats, err = c.Fetch(context.Background(), 5)
	c.Apply(5, stats, err)

	got, state := c.Get(5)
	assert.Equal(t, Ready, state)
	assert.Equal(t, 1, got.ParticipantCount)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	m := &mockFetcher{stats: map[int64]*api.QuizStatistics{2: {AnswerCount: 10}}}
	c := New(m)

	require.True(t, c.BeginFetch(2))
	stats, err := c.Fetch(context.Background(), 2)
	c.Apply(2, stats, err)
	assert.Equal(t, 1, c.Len())

	c.Invalidate(2)
	_, state := c.Get(2)
	assert.Equal(t, Missing, state)
	assert.True(t, c.BeginFetch(2))
}

func TestEntriesGrowIndependently(t *testing.T) {
	m := &mockFetcher{stats: map[int64]*api.QuizStatistics{
		1: {AnswerCount: 1},
		2: {AnswerCount: 2},
	}}
	c := New(m)

	for _, id := range []int64{1, 2} {
		require.True(t, c.BeginFetch(id))
		stats, err := c.Fetch(context.Background(), id)
		c.Apply(id, stats, err)
	}

	assert.Equal(t, 2, c.Len())
	s1, _ := c.Get(1)
	s2, _ := c.Get(2)
	assert.Equal(t, 1, s1.AnswerCount)
	assert.Equal(t, 2, s2.AnswerCount)
}
