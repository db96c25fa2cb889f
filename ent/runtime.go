// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizflow/ent/answerevent"
	"github.com/abhisek/quizflow/ent/coachrequestevent"
	"github.com/abhisek/quizflow/ent/schema"
	"github.com/abhisek/quizflow/ent/sessionentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescHintsUsed is the schema descriptor for hints_used field.
	answereventDescHintsUsed := answereventFields[5].Descriptor()
	// answerevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	answerevent.DefaultHintsUsed = answereventDescHintsUsed.Default.(int)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	coachrequesteventMixin := schema.CoachRequestEvent{}.Mixin()
	coachrequesteventMixinFields0 := coachrequesteventMixin[0].Fields()
	_ = coachrequesteventMixinFields0
	coachrequesteventFields := schema.CoachRequestEvent{}.Fields()
	_ = coachrequesteventFields
	// coachrequesteventDescTimestamp is the schema descriptor for timestamp field.
	coachrequesteventDescTimestamp := coachrequesteventMixinFields0[1].Descriptor()
	// coachrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coachrequestevent.DefaultTimestamp = coachrequesteventDescTimestamp.Default.(func() time.Time)
	// coachrequesteventDescProvider is the schema descriptor for provider field.
	coachrequesteventDescProvider := coachrequesteventFields[0].Descriptor()
	// coachrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	coachrequestevent.ProviderValidator = coachrequesteventDescProvider.Validators[0].(func(string) error)
	// coachrequesteventDescModel is the schema descriptor for model field.
	coachrequesteventDescModel := coachrequesteventFields[1].Descriptor()
	// coachrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	coachrequestevent.ModelValidator = coachrequesteventDescModel.Validators[0].(func(string) error)
	// coachrequesteventDescQuestionID is the schema descriptor for question_id field.
	coachrequesteventDescQuestionID := coachrequesteventFields[2].Descriptor()
	// coachrequestevent.DefaultQuestionID holds the default value on creation for the question_id field.
	coachrequestevent.DefaultQuestionID = coachrequesteventDescQuestionID.Default.(int64)
	// coachrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	coachrequesteventDescInputTokens := coachrequesteventFields[3].Descriptor()
	// coachrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	coachrequestevent.DefaultInputTokens = coachrequesteventDescInputTokens.Default.(int)
	// coachrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	coachrequesteventDescOutputTokens := coachrequesteventFields[4].Descriptor()
	// coachrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	coachrequestevent.DefaultOutputTokens = coachrequesteventDescOutputTokens.Default.(int)
	// coachrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	coachrequesteventDescLatencyMs := coachrequesteventFields[5].Descriptor()
	// coachrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	coachrequestevent.DefaultLatencyMs = coachrequesteventDescLatencyMs.Default.(int64)
	sessionentryFields := schema.SessionEntry{}.Fields()
	_ = sessionentryFields
	// sessionentryDescKey is the schema descriptor for key field.
	sessionentryDescKey := sessionentryFields[0].Descriptor()
	// sessionentry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	sessionentry.KeyValidator = sessionentryDescKey.Validators[0].(func(string) error)
	// sessionentryDescUpdatedAt is the schema descriptor for updated_at field.
	sessionentryDescUpdatedAt := sessionentryFields[2].Descriptor()
	// sessionentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionentry.DefaultUpdatedAt = sessionentryDescUpdatedAt.Default.(func() time.Time)
	// sessionentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionentry.UpdateDefaultUpdatedAt = sessionentryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
