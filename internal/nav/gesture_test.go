package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		endX   int
		want   Intent
	}{
		{"left past threshold", 100, 49, IntentNextQuestion},
		{"right past threshold", 100, 151, IntentPrevQuestion},
		{"left exactly at threshold", 100, 50, IntentNone},
		{"small drag", 100, 90, IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Swipe
			s.Begin(tt.startX, 10)
			got := s.End(tt.endX, 10)
			assert.Equal(t, tt.want, got)
			assert.False(t, s.Active())
		})
	}
}

func TestSwipeVertical(t *testing.T) {
	tests := []struct {
		name   string
		startY int
		endY   int
		want   Intent
	}{
		{"drag up past threshold", 100, 29, IntentNextQuiz},
		{"drag down past threshold", 100, 171, IntentPrevQuiz},
		{"up exactly at threshold", 100, 30, IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Swipe
			s.Begin(20, tt.startY)
			assert.Equal(t, tt.want, s.End(20, tt.endY))
		})
	}
}

func TestSwipeDominantAxisWins(t *testing.T) {
	var s Swipe
	// Both axes past their thresholds; the larger displacement decides.
	s.Begin(100, 100)
	assert.Equal(t, IntentNextQuiz, s.End(40, 10))

	s.Begin(100, 100)
	assert.Equal(t, IntentNextQuestion, s.End(9, 20))
}

func TestSwipeEndWithoutBegin(t *testing.T) {
	var s Swipe
	assert.Equal(t, IntentNone, s.End(0, 0))
}

func TestSwipeCancel(t *testing.T) {
	var s Swipe
	s.Begin(100, 100)
	s.Cancel()
	assert.False(t, s.Active())
	assert.Equal(t, IntentNone, s.End(0, 0))
}

func TestWheelAccumulatesForward(t *testing.T) {
	var w Wheel
	assert.Equal(t, IntentNone, w.Add(120))
	assert.Equal(t, IntentNone, w.Add(120))
	// 360 accumulated: past the budget.
	assert.Equal(t, IntentNextQuiz, w.Add(120))
	// The budget resets after firing.
	assert.Equal(t, IntentNone, w.Add(120))
}

func TestWheelBackwardImmediate(t *testing.T) {
	var w Wheel
	assert.Equal(t, IntentPrevQuiz, w.Add(-120))
	assert.Equal(t, IntentPrevQuiz, w.Add(-200))
}

func TestWheelGentleUpUnwinds(t *testing.T) {
	var w Wheel
	w.Add(200)
	// A soft upward tick reduces the accumulator instead of navigating.
	assert.Equal(t, IntentNone, w.Add(-40))
	assert.Equal(t, IntentNone, w.Add(120))
	assert.Equal(t, IntentNone, w.Add(40))
	// 200 - 40 + 120 + 40 = 320, not strictly past the budget.
	assert.Equal(t, IntentNextQuiz, w.Add(1))
}

func TestWheelUnwindFloorsAtZero(t *testing.T) {
	var w Wheel
	w.Add(30)
	w.Add(-100)
	// Accumulator clamps at zero; it never goes negative.
	assert.Equal(t, IntentNone, w.Add(319))
	assert.Equal(t, IntentNextQuiz, w.Add(2))
}

func TestWheelReset(t *testing.T) {
	var w Wheel
	w.Add(300)
	w.Reset()
	assert.Equal(t, IntentNone, w.Add(300))
	assert.Equal(t, IntentNextQuiz, w.Add(100))
}
