// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeInt64},
		{Name: "question_id", Type: field.TypeInt64},
		{Name: "question_type", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// CoachRequestEventsColumns holds the columns for the "coach_request_events" table.
	CoachRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// CoachRequestEventsTable holds the schema information for the "coach_request_events" table.
	CoachRequestEventsTable = &schema.Table{
		Name:       "coach_request_events",
		Columns:    CoachRequestEventsColumns,
		PrimaryKey: []*schema.Column{CoachRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coachrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[1]},
			},
			{
				Name:    "coachrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[2]},
			},
			{
				Name:    "coachrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[3]},
			},
			{
				Name:    "coachrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[9]},
			},
		},
	}
	// SessionEntriesColumns holds the columns for the "session_entries" table.
	SessionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionEntriesTable holds the schema information for the "session_entries" table.
	SessionEntriesTable = &schema.Table{
		Name:       "session_entries",
		Columns:    SessionEntriesColumns,
		PrimaryKey: []*schema.Column{SessionEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionentry_key",
				Unique:  false,
				Columns: []*schema.Column{SessionEntriesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CoachRequestEventsTable,
		SessionEntriesTable,
	}
)

func init() {
}
