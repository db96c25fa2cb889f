// Package api is the typed HTTP client for the quiz platform. It maps
// HTTP failures onto a small taxonomy (ErrNotFound, ErrUnauthorized,
// StatusError) and validates response payloads against embedded JSON
// Schemas before handing them to the engine.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizflow/internal/quiz"
)

// Client talks to the platform API. Safe for use from command
// goroutines: the token is the only mutable state and it sits behind
// the mutex.
type Client struct {
	baseURL   string
	sessionID string
	timeout   time.Duration
	http      *http.Client

	mu    sync.RWMutex
	token string

	// onUnauthorized runs once per rejected call, before ErrUnauthorized
	// is returned. Used to tear down the session globally.
	onUnauthorized func()
}

// New creates a Client from cfg. Every request carries a fresh
// per-process session identifier so the recommender can scope its
// dedupe window to one browsing session.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		sessionID: uuid.NewString(),
		timeout:   timeout,
		http:      &http.Client{},
	}
}

// SetUnauthorizedHook installs the session-teardown hook. Install it
// before the first request; it is not guarded.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// Authenticated reports whether a session token is configured.
func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Logout drops the session token. Subsequent requests go out
// anonymously instead of repeating a rejected credential.
func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// Question fetches the full Question+Quiz payload for a permalink.
func (c *Client) Question(ctx context.Context, permalink string) (*QuestionPage, error) {
	var page QuestionPage
	path := "/quizzes/q/" + url.PathEscape(permalink)
	if err := c.getJSON(ctx, path, nil, questionPageSchema, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NextFeed asks the recommender for upcoming feed items.
func (c *Client) NextFeed(ctx context.Context, params NextFeedParams) ([]quiz.FeedItem, error) {
	q := url.Values{}
	if params.CurrentQuestion != "" {
		q.Set("current_question", params.CurrentQuestion)
	}
	if params.CurrentQuizID != 0 {
		q.Set("current_quiz_id", strconv.FormatInt(params.CurrentQuizID, 10))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if len(params.Exclude) > 0 {
		ids := make([]string, len(params.Exclude))
		for i, id := range params.Exclude {
			ids[i] = strconv.FormatInt(id, 10)
		}
		q.Set("exclude", strings.Join(ids, ","))
	}

	var resp feedResponse
	if err := c.getJSON(ctx, "/feed/next", q, feedSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// QuizStatistics fetches aggregate statistics for a quiz. A 404 is
// returned as ErrNotFound; the stats cache treats it as "no data".
func (c *Client) QuizStatistics(ctx context.Context, quizID int64) (*QuizStatistics, error) {
	var stats QuizStatistics
	path := fmt.Sprintf("/analytics/quizzes/%d/detailed-statistics", quizID)
	if err := c.getJSON(ctx, path, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Quiz fetches the quiz summary, used to recover the first-question
// permalink for backward navigation.
func (c *Client) Quiz(ctx context.Context, quizID int64) (*QuizSummary, error) {
	var summary QuizSummary
	path := fmt.Sprintf("/quizzes/%d", quizID)
	if err := c.getJSON(ctx, path, nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RecordAnswer transmits a submitted answer. A failure is returned so
// the caller can roll back its submitted state and let the learner
// retry.
func (c *Client) RecordAnswer(ctx context.Context, quizID int64, req RecordAnswerRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}
	path := fmt.Sprintf("/quizzes/%d/record-answer", quizID)
	return c.do(ctx, http.MethodPost, path, nil, body, nil, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, schema *payloadSchema, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, schema, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, schema *payloadSchema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Session-ID", c.sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", u, ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s: %w", u, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &StatusError{Code: resp.StatusCode, URL: u}
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if schema != nil {
		if err := schema.validate(raw); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidPayload{Name: path, Err: err}
	}
	return nil
}
