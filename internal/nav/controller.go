// Package nav is the single authority for "where am I" and "where do I
// go next" in the quiz feed. It turns raw input into tagged intents,
// runs an explicit state machine around target resolution, and
// coordinates the prefetch queue, visit history, and feed ordering.
package nav

import (
	"context"
	"time"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/history"
	"github.com/abhisek/quizflow/internal/prefetch"
	"github.com/abhisek/quizflow/internal/quiz"
)

// TransitionDuration is the animation window applied to quiz-level
// transitions before the route change commits.
const TransitionDuration = 220 * time.Millisecond

// State is the controller's phase. No intent is accepted outside
// StateIdle; overlapping intents are dropped, not buffered.
type State int

const (
	StateIdle State = iota
	StateAwaiting
	StateTransitioning
)

// Slide classifies the outgoing view's animation for quiz-level moves.
// Question-level moves are immediate and carry SlideNone.
type Slide string

const (
	SlideNone Slide = ""
	SlideUp   Slide = "slideUp"
	SlideDown Slide = "slideDown"
)

// Position is the learner's current location in the feed.
type Position struct {
	Quiz     quiz.Quiz
	Question quiz.Question
}

// Target is a resolved navigation destination.
type Target struct {
	Quiz     quiz.Quiz
	Question quiz.Question

	Slide Slide

	// QuizChange marks feed-level moves: commit records the outgoing
	// quiz in history and the prefetch queue may need a refill.
	QuizChange bool
}

// Fetcher is the slice of the API client the controller needs for
// on-demand resolution.
type Fetcher interface {
	Question(ctx context.Context, permalink string) (*api.QuestionPage, error)
	Quiz(ctx context.Context, quizID int64) (*api.QuizSummary, error)
	NextFeed(ctx context.Context, params api.NextFeedParams) ([]quiz.FeedItem, error)
}

// Resolution captures everything a network lookup needs, snapshotted
// at dispatch time. Resolve reads only the fetcher and these fields,
// so it is safe to run in a command goroutine while the event loop
// keeps handling input.
type Resolution struct {
	Seq    uint64
	Intent Intent

	permalink         string  // direct permalink to fetch, if known
	fallbackPermalink string  // feed-order fallback for previous-quiz
	prevQuizID        int64   // history predecessor (0 = none)
	direct            bool    // next-quiz: ask the recommender directly
	currentQuizID     int64   // direct lookup context
	currentPermalink  string  //
	exclude           []int64 //
	slide             Slide
	quizChange        bool
}

// Outcome is the result of dispatching an intent.
type Outcome struct {
	// Target is set when the intent resolved synchronously (prefetch
	// queue hit); the controller is already transitioning.
	Target *Target

	// Resolution is set when a network lookup is required; the
	// controller is awaiting it.
	Resolution *Resolution

	// Dropped means the intent was a no-op: controller busy, or no
	// target can exist.
	Dropped bool
}

// Controller owns navigation state. All mutating methods must be
// called from the owning event loop; only Resolve may run elsewhere.
type Controller struct {
	fetcher Fetcher
	queue   *prefetch.Engine
	history *history.Tracker
	order   *FeedOrder

	state   State
	seq     uint64
	pos     Position
	hasPos  bool
	pending *Target
}

// NewController wires the controller to its collaborators.
func NewController(fetcher Fetcher, queue *prefetch.Engine, tracker *history.Tracker, order *FeedOrder) *Controller {
	return &Controller{
		fetcher: fetcher,
		queue:   queue,
		history: tracker,
		order:   order,
	}
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Position returns the current location, if one is set.
func (c *Controller) Position() (Position, bool) {
	return c.pos, c.hasPos
}

// SetPosition establishes the initial location without a transition
// (entry into the feed, or a direct link).
func (c *Controller) SetPosition(pos Position) {
	c.pos = pos
	c.hasPos = true
	c.state = StateIdle
	c.pending = nil
}

// CanGoBack reports whether the previous-quiz control is meaningful.
// It is false on the session's first quiz and true from the second
// onward, since commit records every quiz the learner leaves.
func (c *Controller) CanGoBack() bool {
	return c.hasPos && c.history.CanGoBack(c.pos.Quiz.ID)
}

// RecordListing stores a freshly seen feed listing for feed-order
// resolution.
func (c *Controller) RecordListing(items []quiz.FeedItem) error {
	return c.order.Set(items)
}

// Dispatch accepts an intent. It either resolves synchronously from
// local state, hands back a Resolution to run asynchronously, or drops
// the intent.
func (c *Controller) Dispatch(intent Intent) Outcome {
	if c.state != StateIdle || !c.hasPos {
		return Outcome{Dropped: true}
	}

	switch intent {
	case IntentNextQuestion:
		return c.dispatchQuestion(intent, c.pos.Question.NextPermalink)
	case IntentPrevQuestion:
		return c.dispatchQuestion(intent, c.pos.Question.PrevPermalink)
	case IntentNextQuiz:
		return c.dispatchNextQuiz()
	case IntentPrevQuiz:
		return c.dispatchPrevQuiz()
	default:
		return Outcome{Dropped: true}
	}
}

func (c *Controller) dispatchQuestion(intent Intent, permalink string) Outcome {
	if permalink == "" {
		return Outcome{Dropped: true}
	}
	c.state = StateAwaiting
	c.seq++
	return Outcome{Resolution: &Resolution{
		Seq:       c.seq,
		Intent:    intent,
		permalink: permalink,
	}}
}

func (c *Controller) dispatchNextQuiz() Outcome {
	// Source 1: the prefetch queue head, already resolved.
	if item, ok := c.queue.Pop(); ok {
		target := &Target{
			Quiz:       item.Quiz,
			Question:   item.Question,
			Slide:      SlideUp,
			QuizChange: true,
		}
		c.pending = target
		c.state = StateTransitioning
		return Outcome{Target: target}
	}

	c.state = StateAwaiting
	c.seq++
	res := &Resolution{
		Seq:        c.seq,
		Intent:     IntentNextQuiz,
		slide:      SlideUp,
		quizChange: true,
	}

	// Source 2: the feed-order successor from the last full listing.
	if succ, ok := c.order.SuccessorOf(c.pos.Quiz.ID); ok {
		res.permalink = succ.FirstQuestionPermalink
		return Outcome{Resolution: res}
	}

	// Source 3: a direct "what's next" recommendation.
	res.direct = true
	res.currentQuizID = c.pos.Quiz.ID
	res.currentPermalink = c.pos.Question.Permalink
	res.exclude = c.history.Entries()
	return Outcome{Resolution: res}
}

func (c *Controller) dispatchPrevQuiz() Outcome {
	prev, ok := c.history.PredecessorOf(c.pos.Quiz.ID)
	if !ok {
		return Outcome{Dropped: true}
	}

	c.state = StateAwaiting
	c.seq++
	res := &Resolution{
		Seq:        c.seq,
		Intent:     IntentPrevQuiz,
		slide:      SlideDown,
		quizChange: true,
		prevQuizID: prev,
	}
	if pred, ok := c.order.PredecessorOf(c.pos.Quiz.ID); ok {
		res.fallbackPermalink = pred.FirstQuestionPermalink
	}
	return Outcome{Resolution: res}
}

// Resolve performs the network lookups for a Resolution. It returns
// (nil, nil) when no target exists: for backward navigation that
// includes fetch failures, which degrade silently. Cancellation is
// propagated, never swallowed.
func (c *Controller) Resolve(ctx context.Context, res *Resolution) (*Target, error) {
	switch {
	case res.Intent.Horizontal():
		page, err := c.fetcher.Question(ctx, res.permalink)
		if err != nil {
			return nil, err
		}
		return &Target{Quiz: page.Quiz, Question: page.Question}, nil

	case res.Intent == IntentNextQuiz:
		permalink := res.permalink
		if permalink == "" && res.direct {
			items, err := c.fetcher.NextFeed(ctx, api.NextFeedParams{
				CurrentQuestion: res.currentPermalink,
				CurrentQuizID:   res.currentQuizID,
				Limit:           1,
				Exclude:         res.exclude,
			})
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return nil, nil
			}
			permalink = items[0].FirstQuestionPermalink
		}
		if permalink == "" {
			return nil, nil
		}
		page, err := c.fetcher.Question(ctx, permalink)
		if err != nil {
			return nil, err
		}
		return &Target{Quiz: page.Quiz, Question: page.Question, Slide: res.slide, QuizChange: true}, nil

	case res.Intent == IntentPrevQuiz:
		return c.resolvePrevQuiz(ctx, res)

	default:
		return nil, nil
	}
}

// resolvePrevQuiz tries the history predecessor first; the feed-order
// predecessor is the fallback. Backward navigation is a convenience,
// not a guarantee: any failure short of cancellation resolves to "no
// target".
func (c *Controller) resolvePrevQuiz(ctx context.Context, res *Resolution) (*Target, error) {
	if res.prevQuizID != 0 {
		// History stores identifiers, not permalinks; recover the
		// first-question permalink with one fetch.
		summary, err := c.fetcher.Quiz(ctx, res.prevQuizID)
		if err == nil && summary.FirstQuestionPermalink != "" {
			page, err := c.fetcher.Question(ctx, summary.FirstQuestionPermalink)
			if err == nil {
				return &Target{Quiz: page.Quiz, Question: page.Question, Slide: res.slide, QuizChange: true}, nil
			}
			if api.IsCanceled(err) {
				return nil, err
			}
		} else if err != nil && api.IsCanceled(err) {
			return nil, err
		}
	}

	if res.fallbackPermalink != "" {
		page, err := c.fetcher.Question(ctx, res.fallbackPermalink)
		if err == nil {
			return &Target{Quiz: page.Quiz, Question: page.Question, Slide: res.slide, QuizChange: true}, nil
		}
		if api.IsCanceled(err) {
			return nil, err
		}
	}

	return nil, nil
}

// Complete hands a resolution outcome back to the controller. A stale
// sequence number is ignored. A miss or failure returns the controller
// to idle; a hit begins the transition window. The boolean reports
// whether a transition began.
func (c *Controller) Complete(seq uint64, target *Target, err error) bool {
	if c.state != StateAwaiting || seq != c.seq {
		return false
	}
	if err != nil || target == nil {
		c.state = StateIdle
		return false
	}
	c.pending = target
	c.state = StateTransitioning
	return true
}

// Committed describes a finished navigation.
type Committed struct {
	Position    Position
	QuizChanged bool
	FromQuizID  int64
}

// Commit finalizes the pending transition: the position moves, and for
// quiz-level moves the outgoing quiz is recorded in history. History
// never receives a quiz while the learner is still on it.
func (c *Controller) Commit() (Committed, bool) {
	if c.state != StateTransitioning || c.pending == nil {
		return Committed{}, false
	}

	old := c.pos
	target := c.pending
	c.pos = Position{Quiz: target.Quiz, Question: target.Question}
	c.hasPos = true
	c.pending = nil
	c.state = StateIdle

	committed := Committed{Position: c.pos, QuizChanged: target.QuizChange}
	if target.QuizChange {
		committed.FromQuizID = old.Quiz.ID
		_ = c.history.Record(old.Quiz.ID)
	}
	return committed, true
}
