package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionPageBody = `{
	"quiz": {
		"id": 7,
		"title": "Cell Biology Basics",
		"creator_id": 12,
		"question_count": 3,
		"difficulty": {"label": "medium", "score": 0.61, "confidence": 0.9, "icon": "flame"}
	},
	"question": {
		"id": 31,
		"position": 1,
		"type": "single_choice",
		"prompt": {"text": "Which organelle produces ATP?"},
		"options": [{"text": "Nucleus"}, {"text": "Mitochondria"}, {"text": "Ribosome"}],
		"correct_option": 2,
		"permalink": "cell-bio-q1",
		"next_question_permalink": "cell-bio-q2"
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Token: "tok", Timeout: 5 * time.Second})
}

func TestQuestion(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quizzes/q/cell-bio-q1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(questionPageBody))
	})

	page, err := c.Question(context.Background(), "cell-bio-q1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Quiz.ID)
	assert.Equal(t, "medium", page.Quiz.Difficulty.Label)
	assert.Equal(t, int64(31), page.Question.ID)
	assert.Equal(t, 2, page.Question.CorrectOption)
	assert.Equal(t, "cell-bio-q2", page.Question.NextPermalink)
	assert.Empty(t, page.Question.PrevPermalink)
}

func TestQuestionRejectsMalformedPayload(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Missing the required permalink.
		_, _ = w.Write([]byte(`{"quiz": {"id": 1, "title": "x"}, "question": {"id": 2, "type": "short_text"}}`))
	})

	_, err := c.Question(context.Background(), "broken")
	require.Error(t, err)
	var invalid *ErrInvalidPayload
	assert.ErrorAs(t, err, &invalid)
}

func TestQuestionRejectsUnknownType(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quiz": {"id": 1, "title": "x"}, "question": {"id": 2, "type": "essay", "permalink": "p"}}`))
	})

	_, err := c.Question(context.Background(), "p")
	var invalid *ErrInvalidPayload
	require.ErrorAs(t, err, &invalid)
}

func TestNextFeedQueryShape(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cell-bio-q1", q.Get("current_question"))
		assert.Equal(t, "7", q.Get("current_quiz_id"))
		assert.Equal(t, "3", q.Get("limit"))
		assert.Equal(t, "4,9", q.Get("exclude"))
		_, _ = w.Write([]byte(`{"items": [
			{"id": 21, "first_question_permalink": "algebra-q1"},
			{"id": 22, "first_question_permalink": "history-q1"}
		]}`))
	})

	items, err := c.NextFeed(context.Background(), NextFeedParams{
		CurrentQuestion: "cell-bio-q1",
		CurrentQuizID:   7,
		Limit:           3,
		Exclude:         []int64{4, 9},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(21), items[0].QuizID)
	assert.Equal(t, "algebra-q1", items[0].FirstQuestionPermalink)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"not found", http.StatusNotFound, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrNotFound)
		}},
		{"unauthorized", http.StatusUnauthorized, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrUnauthorized)
		}},
		{"forbidden", http.StatusForbidden, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrUnauthorized)
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, http.StatusInternalServerError, se.Code)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.QuizStatistics(context.Background(), 1)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestUnauthorizedHookFires(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	fired := 0
	c.SetUnauthorizedHook(func() { fired++ })

	_, err := c.Quiz(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, fired)
}

func TestLogoutHookDropsToken(t *testing.T) {
	var auth []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id": 5, "title": "x"}`))
	})
	c.SetUnauthorizedHook(c.Logout)
	require.True(t, c.Authenticated())

	_, err := c.Quiz(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The hook tore the session down: no token on the retry, and the
	// request succeeds anonymously.
	assert.False(t, c.Authenticated())
	_, err = c.Quiz(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, auth, 2)
	assert.Equal(t, "Bearer tok", auth[0])
	assert.Empty(t, auth[1])
}

func TestRecordAnswerBody(t *testing.T) {
	var got RecordAnswerRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quizzes/7/record-answer", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.RecordAnswer(context.Background(), 7, RecordAnswerRequest{
		QuestionID:     31,
		Answer:         2,
		SelectedOption: "Mitochondria",
		HintsUsed:      []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), got.QuestionID)
	assert.Equal(t, "Mitochondria", got.SelectedOption)
	assert.Equal(t, []int{1}, got.HintsUsed)
}

func TestCancellationPassesThrough(t *testing.T) {
	block := make(chan struct{})
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Question(ctx, "q")
	require.Error(t, err)
	assert.True(t, IsCanceled(err))
}

func TestAuthenticated(t *testing.T) {
	assert.True(t, New(Config{BaseURL: "http://x", Token: "t"}).Authenticated())
	assert.False(t, New(Config{BaseURL: "http://x"}).Authenticated())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{BaseURL: "https://api.example.com"}.Validate())
	assert.Error(t, Config{}.Validate())
	assert.Error(t, Config{BaseURL: "ftp://nope"}.Validate())
}
