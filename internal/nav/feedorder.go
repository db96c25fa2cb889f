package nav

import "github.com/abhisek/quizflow/internal/quiz"

// OrderStore persists the quiz ordering of the last full feed listing
// the learner saw, so feed-order neighbors resolve without a
// round-trip.
type OrderStore interface {
	FeedQuizOrder() ([]quiz.FeedItem, error)
	SetFeedQuizOrder(items []quiz.FeedItem) error
}

// FeedOrder is the in-memory view of that ordering.
type FeedOrder struct {
	store OrderStore
	items []quiz.FeedItem
}

// LoadFeedOrder restores the ordering from the session store. A read
// failure leaves it empty; feed-order resolution just misses.
func LoadFeedOrder(store OrderStore) *FeedOrder {
	f := &FeedOrder{store: store}
	if store != nil {
		if items, err := store.FeedQuizOrder(); err == nil {
			f.items = items
		}
	}
	return f
}

// Set replaces the ordering with a freshly seen listing and writes it
// through.
func (f *FeedOrder) Set(items []quiz.FeedItem) error {
	f.items = append([]quiz.FeedItem(nil), items...)
	if f.store == nil {
		return nil
	}
	return f.store.SetFeedQuizOrder(f.items)
}

// SuccessorOf returns the feed item after quizID in the listing.
func (f *FeedOrder) SuccessorOf(quizID int64) (quiz.FeedItem, bool) {
	for i, item := range f.items {
		if item.QuizID == quizID && i+1 < len(f.items) {
			return f.items[i+1], true
		}
	}
	return quiz.FeedItem{}, false
}

// PredecessorOf returns the feed item before quizID in the listing.
func (f *FeedOrder) PredecessorOf(quizID int64) (quiz.FeedItem, bool) {
	for i, item := range f.items {
		if item.QuizID == quizID && i > 0 {
			return f.items[i-1], true
		}
	}
	return quiz.FeedItem{}, false
}
