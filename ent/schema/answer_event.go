package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answer submission against a feed question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("quiz_id").
			Comment("Quiz the question belongs to"),
		field.Int64("question_id").
			Comment("Question that was answered"),
		field.String("question_type").
			NotEmpty().
			Comment("single_choice, multi_choice, short_text, ordering, or fill_blank"),
		field.String("answer").
			Comment("Serialized learner answer"),
		field.Bool("correct").
			Comment("Whether the submission was judged correct"),
		field.Int("hints_used").
			Default(0).
			Comment("Number of hints revealed before answering"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from question display to submission"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
