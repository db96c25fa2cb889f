package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoachRequestEvent records one request to a coach model provider.
type CoachRequestEvent struct {
	ent.Schema
}

func (CoachRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CoachRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("anthropic, openai, gemini, openrouter, or mock"),
		field.String("model").
			NotEmpty().
			Comment("Model that served the request"),
		field.Int64("question_id").
			Default(0).
			Comment("Question the explanation was requested for"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
	}
}

func (CoachRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("success"),
	}
}
