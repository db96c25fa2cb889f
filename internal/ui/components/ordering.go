package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/ui/theme"
)

// Ordering lets the learner arrange options into a sequence. The
// current arrangement is a permutation of 1-based option numbers;
// space grabs the item under the cursor and the next move carries it.
type Ordering struct {
	Options []string

	order    []int // 1-based option numbers in display order
	Cursor   int
	grabbed  bool
	locked   bool
	solution []int
}

// NewOrdering creates an arranger seeded with the option order as given.
func NewOrdering(options []string) Ordering {
	order := make([]int, len(options))
	for i := range options {
		order[i] = i + 1
	}
	return Ordering{Options: options, order: order}
}

// Up moves the cursor, carrying a grabbed item with it.
func (o *Ordering) Up() {
	if o.locked || o.Cursor == 0 {
		return
	}
	if o.grabbed {
		o.order[o.Cursor], o.order[o.Cursor-1] = o.order[o.Cursor-1], o.order[o.Cursor]
	}
	o.Cursor--
}

// Down moves the cursor, carrying a grabbed item with it.
func (o *Ordering) Down() {
	if o.locked || o.Cursor >= len(o.order)-1 {
		return
	}
	if o.grabbed {
		o.order[o.Cursor], o.order[o.Cursor+1] = o.order[o.Cursor+1], o.order[o.Cursor]
	}
	o.Cursor++
}

// Grab toggles carry mode for the item under the cursor.
func (o *Ordering) Grab() {
	if o.locked {
		return
	}
	o.grabbed = !o.grabbed
}

// Order returns the current arrangement as 1-based option numbers.
func (o *Ordering) Order() []int {
	out := make([]int, len(o.order))
	copy(out, o.order)
	return out
}

// Lock freezes the arranger and records the expected sequence.
func (o *Ordering) Lock(solution []int) {
	o.locked = true
	o.grabbed = false
	o.solution = solution
}

// Unlock reopens the arranger, keeping the current arrangement.
func (o *Ordering) Unlock() {
	o.locked = false
	o.solution = nil
}

// Locked reports whether the arranger is frozen.
func (o *Ordering) Locked() bool {
	return o.locked
}

// View renders the arrangement.
func (o Ordering) View() string {
	var b strings.Builder
	for i, n := range o.order {
		cursor := "  "
		if i == o.Cursor && !o.locked {
			if o.grabbed {
				cursor = "◆ "
			} else {
				cursor = "▸ "
			}
		}
		text := ""
		if n-1 < len(o.Options) {
			text = o.Options[n-1]
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, text)

		switch {
		case o.locked && i < len(o.solution) && o.solution[i] == n:
			b.WriteString(theme.Correct.Render(line))
		case o.locked:
			b.WriteString(theme.Incorrect.Render(line))
		case i == o.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
