package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEntry is a keyed blob of session state. Keys are versioned
// (e.g. "visited_quizzes:v2") so a format change gets a fresh key and
// the stale one can be purged by name.
type SessionEntry struct {
	ent.Schema
}

func (SessionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Versioned entry name"),
		field.String("value").
			Comment("JSON payload"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (SessionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
