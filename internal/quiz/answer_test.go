package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSingleChoice(t *testing.T) {
	q := &Question{Type: TypeSingleChoice, CorrectOption: 2}

	res, err := Evaluate(q, Answer{Option: 2})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 2, res.CorrectValue)

	res, err = Evaluate(q, Answer{Option: 3})
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, 2, res.CorrectValue)
}

func TestEvaluateSingleChoiceUnset(t *testing.T) {
	q := &Question{Type: TypeSingleChoice, CorrectOption: 1}
	_, err := Evaluate(q, Answer{})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestEvaluateMultiChoice(t *testing.T) {
	q := &Question{Type: TypeMultiChoice, CorrectOptions: []int{1, 3}}

	tests := []struct {
		name      string
		submitted []int
		correct   bool
	}{
		{"exact", []int{1, 3}, true},
		{"reordered", []int{3, 1}, true},
		{"duplicates collapse", []int{3, 1, 3}, true},
		{"missing one", []int{1}, false},
		{"extra one", []int{1, 2, 3}, false},
		{"disjoint", []int{2, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(q, Answer{Options: tt.submitted})
			require.NoError(t, err)
			assert.Equal(t, tt.correct, res.Correct)
		})
	}

	_, err := Evaluate(q, Answer{})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestEvaluateShortText(t *testing.T) {
	q := &Question{Type: TypeShortText, CorrectText: "Mitochondria"}

	for _, sub := range []string{"Mitochondria", "mitochondria", "  MITOCHONDRIA  "} {
		res, err := Evaluate(q, Answer{Text: sub})
		require.NoError(t, err)
		assert.True(t, res.Correct, "submission %q", sub)
	}

	res, err := Evaluate(q, Answer{Text: "ribosome"})
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, "Mitochondria", res.CorrectValue)

	_, err = Evaluate(q, Answer{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestEvaluateOrderingIsSequenceSensitive(t *testing.T) {
	q := &Question{Type: TypeOrdering, CorrectOrder: []int{2, 1, 3}}

	res, err := Evaluate(q, Answer{Order: []int{2, 1, 3}})
	require.NoError(t, err)
	assert.True(t, res.Correct)

	// Same elements, different order: incorrect. This is the contrast
	// with multi-choice set semantics.
	res, err = Evaluate(q, Answer{Order: []int{1, 2, 3}})
	require.NoError(t, err)
	assert.False(t, res.Correct)

	res, err = Evaluate(q, Answer{Order: []int{2, 1}})
	require.NoError(t, err)
	assert.False(t, res.Correct)

	_, err = Evaluate(q, Answer{})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestEvaluateFillBlank(t *testing.T) {
	q := &Question{
		Type:          TypeFillBlank,
		CorrectBlanks: map[int]string{1: "force", 2: "mass"},
	}

	res, err := Evaluate(q, Answer{Blanks: map[int]string{1: "Force", 2: "mass "}})
	require.NoError(t, err)
	assert.True(t, res.Correct)

	res, err = Evaluate(q, Answer{Blanks: map[int]string{1: "force", 2: "energy"}})
	require.NoError(t, err)
	assert.False(t, res.Correct)

	// Mismatched slot count.
	res, err = Evaluate(q, Answer{Blanks: map[int]string{1: "force"}})
	require.NoError(t, err)
	assert.False(t, res.Correct)

	res, err = Evaluate(q, Answer{Blanks: map[int]string{1: "force", 2: "mass", 3: "x"}})
	require.NoError(t, err)
	assert.False(t, res.Correct)

	_, err = Evaluate(q, Answer{})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestEvaluateFillBlankVacuous(t *testing.T) {
	q := &Question{Type: TypeFillBlank}

	// Zero expected solutions and zero submitted entries: correct.
	res, err := Evaluate(q, Answer{})
	require.NoError(t, err)
	assert.True(t, res.Correct)

	// Zero expected solutions and a non-empty submission: incorrect.
	res, err = Evaluate(q, Answer{Blanks: map[int]string{1: "stray"}})
	require.NoError(t, err)
	assert.False(t, res.Correct)
}

func TestEvaluateUnknownType(t *testing.T) {
	q := &Question{Type: QuestionType("essay")}
	_, err := Evaluate(q, Answer{Text: "anything"})
	require.Error(t, err)
}

func TestQuestionTypeValid(t *testing.T) {
	for _, typ := range []QuestionType{TypeSingleChoice, TypeMultiChoice, TypeShortText, TypeOrdering, TypeFillBlank} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, QuestionType("essay").Valid())
	assert.False(t, QuestionType("").Valid())
}

func TestOptionText(t *testing.T) {
	q := &Question{Options: []Media{{Text: "a"}, {Text: "b"}}}
	assert.Equal(t, "a", q.OptionText(1))
	assert.Equal(t, "b", q.OptionText(2))
	assert.Equal(t, "", q.OptionText(0))
	assert.Equal(t, "", q.OptionText(3))
}
