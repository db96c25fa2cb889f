// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// CoachRequestEvent is the predicate function for coachrequestevent builders.
type CoachRequestEvent func(*sql.Selector)

// SessionEntry is the predicate function for sessionentry builders.
type SessionEntry func(*sql.Selector)
