// Package stats memoizes per-quiz aggregate statistics so repeatedly
// expanding a quiz card does not refetch. Entries are only ever added
// wholesale; the map grows monotonically for the life of the session,
// with one exception: submitting an answer invalidates that quiz's
// entry so the next expansion shows fresh counts.
package stats

import (
	"context"
	"errors"

	"github.com/abhisek/quizflow/internal/api"
)

// State describes what the cache knows about a quiz.
type State int

const (
	// Missing: never fetched; Get triggers nothing by itself.
	Missing State = iota
	// Loading: a fetch is in flight; a second fetch must not start.
	Loading
	// Ready: statistics are cached.
	Ready
	// NoData: the platform has nothing published yet (404). Cached.
	NoData
	// Failed: the last fetch failed; retryable, nothing cached.
	Failed
)

// Fetcher is the slice of the API client the cache needs.
type Fetcher interface {
	QuizStatistics(ctx context.Context, quizID int64) (*api.QuizStatistics, error)
}

type entry struct {
	state State
	stats *api.QuizStatistics
}

// Cache is mutated only from the owning event loop: BeginFetch and
// Apply on the Update side, Fetch in a command goroutine.
type Cache struct {
	fetcher Fetcher
	entries map[int64]*entry
}

// New creates an empty Cache.
func New(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher, entries: make(map[int64]*entry)}
}

// Get returns the cached statistics and state for a quiz.
func (c *Cache) Get(quizID int64) (*api.QuizStatistics, State) {
	e, ok := c.entries[quizID]
	if !ok {
		return nil, Missing
	}
	return e.stats, e.state
}

// BeginFetch marks a fetch in flight and reports whether the caller
// should actually start one. It returns false while a fetch is already
// running or data is cached, so two expansions cannot race.
func (c *Cache) BeginFetch(quizID int64) bool {
	e, ok := c.entries[quizID]
	if ok && (e.state == Loading || e.state == Ready || e.state == NoData) {
		return false
	}
	c.entries[quizID] = &entry{state: Loading}
	return true
}

// Fetch performs the network call. Run it in a command goroutine and
// hand the outcome back to Apply.
func (c *Cache) Fetch(ctx context.Context, quizID int64) (*api.QuizStatistics, error) {
	return c.fetcher.QuizStatistics(ctx, quizID)
}

// Apply records a fetch outcome. A 404 means no statistics are
// published yet and is cached as NoData; any other failure leaves a
// retryable Failed state without caching a negative result.
func (c *Cache) Apply(quizID int64, stats *api.QuizStatistics, err error) {
	switch {
	case err == nil:
		c.entries[quizID] = &entry{state: Ready, stats: stats}
	case errors.Is(err, api.ErrNotFound):
		c.entries[quizID] = &entry{state: NoData}
	default:
		c.entries[quizID] = &entry{state: Failed}
	}
}

// Invalidate drops a quiz's entry after an answer submission so the
// next expansion refetches.
func (c *Cache) Invalidate(quizID int64) {
	delete(c.entries, quizID)
}

// Len returns the number of known quizzes.
func (c *Cache) Len() int {
	return len(c.entries)
}
