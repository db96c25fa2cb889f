// Package history maintains the rolling log of quizzes the learner has
// passed through this session. The log answers two questions for the
// navigation layer: "which quiz came before this one" and "is backward
// navigation meaningful yet".
package history

import "fmt"

// MaxEntries is the number of quiz identifiers retained. Older entries
// fall off the front.
const MaxEntries = 50

// Store persists the visited-quiz log for the duration of a session.
// Implementations must treat the slice as newest-last.
type Store interface {
	VisitedQuizzes() ([]int64, error)
	SetVisitedQuizzes(ids []int64) error
}

// Tracker is the in-memory view of the visit log, written through to
// its Store on every mutation. It is mutated only by the navigation
// layer's commit step; everything else reads.
type Tracker struct {
	store   Store
	entries []int64
}

// Load builds a Tracker from the session store. A store read failure is
// not fatal: the tracker starts empty and backward navigation simply
// stays disabled until quizzes are visited.
func Load(store Store) *Tracker {
	t := &Tracker{store: store}
	if store != nil {
		if ids, err := store.VisitedQuizzes(); err == nil {
			t.entries = clampTail(ids, MaxEntries)
		}
	}
	return t
}

// Record appends quizID as the most recent entry. A prior occurrence of
// the same identifier is removed first, so recording is idempotent with
// respect to ordering: the entry moves, it does not duplicate.
func (t *Tracker) Record(quizID int64) error {
	kept := t.entries[:0]
	for _, id := range t.entries {
		if id != quizID {
			kept = append(kept, id)
		}
	}
	t.entries = append(kept, quizID)
	t.entries = clampTail(t.entries, MaxEntries)

	if t.store == nil {
		return nil
	}
	if err := t.store.SetVisitedQuizzes(t.entries); err != nil {
		return fmt.Errorf("persist visit history: %w", err)
	}
	return nil
}

// PredecessorOf returns the quiz visited immediately before currentQuizID.
// The log never contains the quiz the learner is currently on, so after
// one navigation the single entry *is* the predecessor. When
// currentQuizID does appear (the learner looped back via a direct link),
// the entry before it wins. Returns false when nothing precedes the
// current quiz.
func (t *Tracker) PredecessorOf(currentQuizID int64) (int64, bool) {
	if len(t.entries) == 0 {
		return 0, false
	}
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i] == currentQuizID {
			if i == 0 {
				return 0, false
			}
			return t.entries[i-1], true
		}
	}
	return t.entries[len(t.entries)-1], true
}

// CanGoBack reports whether backward navigation is meaningful from
// currentQuizID: some earlier quiz exists to return to. On the very
// first quiz of a session the log is empty and this is false; it
// becomes true as soon as one quiz has been left behind.
func (t *Tracker) CanGoBack(currentQuizID int64) bool {
	_, ok := t.PredecessorOf(currentQuizID)
	return ok
}

// Len returns the number of recorded entries.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the log, oldest first.
func (t *Tracker) Entries() []int64 {
	out := make([]int64, len(t.entries))
	copy(out, t.entries)
	return out
}

// clampTail keeps the most recent max entries.
func clampTail(ids []int64, max int) []int64 {
	if len(ids) > max {
		return ids[len(ids)-max:]
	}
	return ids
}
