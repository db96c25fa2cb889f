package nav

// Gesture thresholds, in input units (pixels for pointer input, cells
// for terminal drags scaled by the caller).
const (
	// SwipeThreshold is the horizontal drag distance past which a
	// question-level intent fires.
	SwipeThreshold = 50

	// VerticalSwipeThreshold is the vertical drag distance past which
	// a quiz-level intent fires.
	VerticalSwipeThreshold = 70

	// WheelBudget is the accumulated downward wheel delta that fires
	// next-quiz. Forward intent is debounced through accumulation.
	WheelBudget = 320

	// WheelBackThreshold is the single upward wheel delta that fires
	// previous-quiz immediately, without accumulation.
	WheelBackThreshold = 120
)

// Swipe recognizes drag gestures. Begin records the press position;
// End classifies the release into an intent.
type Swipe struct {
	startX, startY int
	active         bool
}

// Begin starts tracking a drag at (x, y).
func (s *Swipe) Begin(x, y int) {
	s.startX, s.startY = x, y
	s.active = true
}

// Active reports whether a drag is being tracked.
func (s *Swipe) Active() bool {
	return s.active
}

// Cancel abandons the current drag.
func (s *Swipe) Cancel() {
	s.active = false
}

// End classifies the drag ending at (x, y). The dominant axis wins:
// leftward past the threshold is next-question, rightward is
// previous-question; upward drag (content pulled up) is next-quiz,
// downward is previous-quiz. A drag under both thresholds is no intent.
func (s *Swipe) End(x, y int) Intent {
	if !s.active {
		return IntentNone
	}
	s.active = false

	dx := x - s.startX
	dy := y - s.startY

	if abs(dx) >= abs(dy) {
		switch {
		case dx < -SwipeThreshold:
			return IntentNextQuestion
		case dx > SwipeThreshold:
			return IntentPrevQuestion
		}
		return IntentNone
	}

	switch {
	case dy < -VerticalSwipeThreshold:
		return IntentNextQuiz
	case dy > VerticalSwipeThreshold:
		return IntentPrevQuiz
	}
	return IntentNone
}

// Wheel accumulates scroll deltas into quiz-level intents. Downward
// deltas (positive) accumulate toward WheelBudget; an upward delta at
// or past WheelBackThreshold fires immediately. The asymmetry is
// deliberate: backing up is an explicit correction, advancing is easy
// to do by accident while reading.
type Wheel struct {
	accum int
}

// Add feeds one scroll event's delta and returns the fired intent, if
// any. Positive deltas scroll down (toward the next quiz).
func (w *Wheel) Add(delta int) Intent {
	if delta < 0 {
		if -delta >= WheelBackThreshold {
			w.accum = 0
			return IntentPrevQuiz
		}
		// A gentle upward scroll only unwinds forward progress.
		w.accum += delta
		if w.accum < 0 {
			w.accum = 0
		}
		return IntentNone
	}

	w.accum += delta
	if w.accum > WheelBudget {
		w.accum = 0
		return IntentNextQuiz
	}
	return IntentNone
}

// Reset clears accumulated delta, e.g. on quiz change.
func (w *Wheel) Reset() {
	w.accum = 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
