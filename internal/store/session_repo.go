package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizflow/ent"
	"github.com/abhisek/quizflow/ent/sessionentry"
	"github.com/abhisek/quizflow/internal/quiz"
)

// Current entry keys. The v2 suffix marks the JSON-array format; v1
// entries used a different layout and are dropped unread.
const (
	visitedQuizzesKey = "visited_quizzes:v2"
	feedQuizOrderKey  = "feed_quiz_order:v2"
)

// legacyKeys are superseded entry names from the v1 layout. They are
// deleted by name, never parsed.
var legacyKeys = []string{
	"visited_quizzes",
	"feed_quiz_order",
}

// sessionKeys are the entries scoped to a single browsing session.
var sessionKeys = []string{
	visitedQuizzesKey,
	feedQuizOrderKey,
}

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) VisitedQuizzes() ([]int64, error) {
	var ids []int64
	if err := r.get(visitedQuizzesKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *sessionRepo) SetVisitedQuizzes(ids []int64) error {
	return r.put(visitedQuizzesKey, ids)
}

func (r *sessionRepo) FeedQuizOrder() ([]quiz.FeedItem, error) {
	var items []quiz.FeedItem
	if err := r.get(feedQuizOrderKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *sessionRepo) SetFeedQuizOrder(items []quiz.FeedItem) error {
	return r.put(feedQuizOrderKey, items)
}

func (r *sessionRepo) StartSession() error {
	ctx := context.Background()
	keys := append(append([]string(nil), legacyKeys...), sessionKeys...)
	_, err := r.client.SessionEntry.Delete().
		Where(sessionentry.KeyIn(keys...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset session entries: %w", err)
	}
	return nil
}

func (r *sessionRepo) Clear() error {
	ctx := context.Background()
	_, err := r.client.SessionEntry.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session entries: %w", err)
	}
	return nil
}

// get loads and unmarshals the entry at key into out. A missing entry
// leaves out untouched.
func (r *sessionRepo) get(key string, out any) error {
	ctx := context.Background()
	entry, err := r.client.SessionEntry.Query().
		Where(sessionentry.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("query %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// put marshals v and upserts it at key.
func (r *sessionRepo) put(key string, v any) error {
	ctx := context.Background()
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	existing, err := r.client.SessionEntry.Query().
		Where(sessionentry.Key(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query %s: %w", key, err)
		}
		_, err = r.client.SessionEntry.Create().
			SetKey(key).
			SetValue(string(raw)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create %s: %w", key, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetValue(string(raw)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	return nil
}
