// Package prefetch keeps a standing buffer of fully-resolved upcoming
// feed items so forward navigation never blocks on network latency.
//
// The engine's queue is mutated only from the owning event loop
// (StartCycle, Apply, Pop). RunCycle does the network work and may run
// in a command goroutine: it reads nothing but its arguments and the
// fetcher, and returns items for the event loop to Apply.
package prefetch

import (
	"context"
	"fmt"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/quiz"
)

const (
	// MaxDepth caps the resolved-item queue.
	MaxDepth = 5

	// RefillThreshold triggers a refill when depth drops to or below it.
	RefillThreshold = 2

	// BatchSize is how many candidates a refill cycle resolves.
	BatchSize = 3
)

// Fetcher is the slice of the API client the engine needs.
type Fetcher interface {
	NextFeed(ctx context.Context, params api.NextFeedParams) ([]quiz.FeedItem, error)
	Question(ctx context.Context, permalink string) (*api.QuestionPage, error)
}

// Item is a resolved feed candidate: the quiz plus its first question,
// ready to navigate to without a fetch.
type Item struct {
	Quiz     quiz.Quiz
	Question quiz.Question
}

// Engine owns the prefetch queue and the cycle bookkeeping.
type Engine struct {
	fetcher Fetcher

	queue  []Item
	cycle  uint64
	cancel context.CancelFunc

	// Logf reports skipped candidates. Defaults to discard.
	Logf func(format string, args ...any)
}

// New creates an Engine over the given fetcher.
func New(fetcher Fetcher) *Engine {
	return &Engine{
		fetcher: fetcher,
		Logf:    func(string, ...any) {},
	}
}

// Depth returns the current queue depth.
func (e *Engine) Depth() int {
	return len(e.queue)
}

// NeedsRefill reports whether a refill cycle should start. It is a
// no-op signal above the threshold.
func (e *Engine) NeedsRefill() bool {
	return len(e.queue) <= RefillThreshold
}

// Head returns the next resolved item without consuming it.
func (e *Engine) Head() (Item, bool) {
	if len(e.queue) == 0 {
		return Item{}, false
	}
	return e.queue[0], true
}

// Pop consumes the head of the queue.
func (e *Engine) Pop() (Item, bool) {
	if len(e.queue) == 0 {
		return Item{}, false
	}
	item := e.queue[0]
	e.queue = e.queue[1:]
	return item, true
}

// StartCycle begins a new refill cycle: it cancels any still-in-flight
// previous cycle and returns the context and identifier for the new
// one. Only results tagged with the returned identifier will be
// applied, so a slow response from an abandoned position cannot corrupt
// the queue.
func (e *Engine) StartCycle(parent context.Context) (context.Context, uint64) {
	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	e.cancel = cancel
	e.cycle++
	return ctx, e.cycle
}

// Stop cancels any in-flight cycle.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// RunCycle fetches a candidate batch and resolves up to BatchSize of
// them sequentially, keeping queue-append order deterministic. A
// failed candidate is logged and skipped; a cancellation aborts the
// remaining candidates immediately.
func (e *Engine) RunCycle(ctx context.Context, currentQuizID int64, currentPermalink string, exclude []int64) ([]Item, error) {
	candidates, err := e.fetcher.NextFeed(ctx, api.NextFeedParams{
		CurrentQuestion: currentPermalink,
		CurrentQuizID:   currentQuizID,
		Limit:           BatchSize,
		Exclude:         exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch feed candidates: %w", err)
	}

	if len(candidates) > BatchSize {
		candidates = candidates[:BatchSize]
	}

	var items []Item
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := e.fetcher.Question(ctx, cand.FirstQuestionPermalink)
		if err != nil {
			if api.IsCanceled(err) || ctx.Err() != nil {
				return nil, context.Canceled
			}
			e.Logf("prefetch: skipping quiz %d: %v", cand.QuizID, err)
			continue
		}
		items = append(items, Item{Quiz: page.Quiz, Question: page.Question})
	}
	return items, nil
}

// Apply appends a completed cycle's items to the queue, capped at
// MaxDepth. Results from any cycle but the current one are discarded.
func (e *Engine) Apply(cycle uint64, items []Item) bool {
	if cycle != e.cycle {
		return false
	}
	for _, item := range items {
		if len(e.queue) >= MaxDepth {
			break
		}
		e.queue = append(e.queue, item)
	}
	return true
}
