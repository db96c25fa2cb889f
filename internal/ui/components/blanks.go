package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/ui/theme"
)

// Blanks is a bank of text inputs for fill-in-the-blank questions,
// one input per blank slot, tab-navigable.
type Blanks struct {
	inputs []TextInput
	Active int
	locked bool
}

// NewBlanks creates count blank inputs.
func NewBlanks(count int) Blanks {
	inputs := make([]TextInput, count)
	for i := range inputs {
		inputs[i] = NewTextInput(fmt.Sprintf("blank %d", i+1), 40)
	}
	b := Blanks{inputs: inputs}
	b.syncFocus()
	return b
}

// Init focuses the first input.
func (b Blanks) Init() tea.Cmd {
	if len(b.inputs) == 0 {
		return nil
	}
	return b.inputs[0].Init()
}

// Next moves focus to the following blank, wrapping around.
func (b *Blanks) Next() {
	if b.locked || len(b.inputs) == 0 {
		return
	}
	b.Active = (b.Active + 1) % len(b.inputs)
	b.syncFocus()
}

// Update forwards the message to the active input.
func (b Blanks) Update(msg tea.Msg) (Blanks, tea.Cmd) {
	if b.locked || b.Active >= len(b.inputs) {
		return b, nil
	}
	var cmd tea.Cmd
	b.inputs[b.Active], cmd = b.inputs[b.Active].Update(msg)
	return b, cmd
}

// Values returns the entered text keyed by 1-based slot number.
// Untouched blanks are omitted.
func (b Blanks) Values() map[int]string {
	out := make(map[int]string)
	for i, in := range b.inputs {
		if v := strings.TrimSpace(in.Value()); v != "" {
			out[i+1] = v
		}
	}
	return out
}

// Lock freezes the inputs and marks each against the expected values.
func (b *Blanks) Lock(expected map[int]string) {
	b.locked = true
	for i := range b.inputs {
		want := expected[i+1]
		got := strings.TrimSpace(b.inputs[i].Value())
		b.inputs[i].Submit(strings.EqualFold(got, strings.TrimSpace(want)))
		b.inputs[i].Model.Blur()
	}
}

// Unlock reopens the bank, keeping the entered text.
func (b *Blanks) Unlock() {
	b.locked = false
	for i := range b.inputs {
		b.inputs[i].Unsubmit()
	}
	b.syncFocus()
}

// Locked reports whether the bank is frozen.
func (b Blanks) Locked() bool {
	return b.locked
}

// View renders the blanks stacked vertically.
func (b Blanks) View() string {
	var sb strings.Builder
	for i, in := range b.inputs {
		label := fmt.Sprintf("%d. ", i+1)
		if i == b.Active && !b.locked {
			sb.WriteString(theme.Selected.Render(label))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Blanks) syncFocus() {
	for i := range b.inputs {
		if i == b.Active {
			b.inputs[i].Model.Focus()
		} else {
			b.inputs[i].Model.Blur()
		}
	}
}
