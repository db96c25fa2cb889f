package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/ui/theme"
)

// Choice renders a list of answer options for single- and
// multiple-selection questions. Option numbers are 1-based to match
// submission indices. Once locked, the list shows feedback colors and
// stops reacting to input.
type Choice struct {
	Options []string
	Multi   bool

	Cursor int
	Chosen map[int]bool // 1-based option numbers

	locked  bool
	correct map[int]bool // 1-based, populated at lock time
}

// NewChoice creates a selector over the given option texts.
func NewChoice(options []string, multi bool) Choice {
	return Choice{
		Options: options,
		Multi:   multi,
		Chosen:  make(map[int]bool),
	}
}

// Up moves the cursor up.
func (c *Choice) Up() {
	if c.locked || c.Cursor == 0 {
		return
	}
	c.Cursor--
}

// Down moves the cursor down.
func (c *Choice) Down() {
	if c.locked || c.Cursor >= len(c.Options)-1 {
		return
	}
	c.Cursor++
}

// Toggle flips the option under the cursor. Single-selection mode
// clears any prior pick first.
func (c *Choice) Toggle() {
	if c.locked {
		return
	}
	n := c.Cursor + 1
	if !c.Multi {
		for k := range c.Chosen {
			delete(c.Chosen, k)
		}
		c.Chosen[n] = true
		return
	}
	if c.Chosen[n] {
		delete(c.Chosen, n)
	} else {
		c.Chosen[n] = true
	}
}

// Pick selects option n (1-based) directly, for number-key input.
func (c *Choice) Pick(n int) {
	if c.locked || n < 1 || n > len(c.Options) {
		return
	}
	c.Cursor = n - 1
	c.Toggle()
}

// Selected returns the chosen option numbers in ascending order.
func (c *Choice) Selected() []int {
	var out []int
	for n := 1; n <= len(c.Options); n++ {
		if c.Chosen[n] {
			out = append(out, n)
		}
	}
	return out
}

// Lock freezes the selector and records the correct option numbers for
// feedback rendering.
func (c *Choice) Lock(correct []int) {
	c.locked = true
	c.correct = make(map[int]bool, len(correct))
	for _, n := range correct {
		c.correct[n] = true
	}
}

// Unlock reopens the selector, keeping the current selection.
func (c *Choice) Unlock() {
	c.locked = false
	c.correct = nil
}

// Locked reports whether the selector is frozen.
func (c *Choice) Locked() bool {
	return c.locked
}

// View renders the option list.
func (c Choice) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		n := i + 1
		cursor := "  "
		if i == c.Cursor && !c.locked {
			cursor = "▸ "
		}
		mark := " "
		if c.Chosen[n] {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d) %s", cursor, mark, n, opt)

		switch {
		case c.locked && c.correct[n]:
			b.WriteString(theme.Correct.Render(line))
		case c.locked && c.Chosen[n]:
			b.WriteString(theme.Incorrect.Render(line))
		case c.locked:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
