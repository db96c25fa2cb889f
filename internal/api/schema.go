package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema guards deserialization of the payloads the engine
// navigates by. A malformed question or feed payload is rejected here
// rather than surfacing as a nil-pointer deep inside the controller.
type payloadSchema struct {
	name string
	def  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

func (s *payloadSchema) validate(raw []byte) error {
	s.once.Do(func() {
		s.compiled, s.compErr = compile(s.name, s.def)
	})
	if s.compErr != nil {
		return &ErrInvalidPayload{Name: s.name, Err: fmt.Errorf("compile schema: %w", s.compErr)}
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidPayload{Name: s.name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := s.compiled.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Name: s.name, Err: err}
	}
	return nil
}

func compile(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value; round-trip the map to
	// normalize Go literals into the representation it expects.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(resource)
}

var mediaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text":      map[string]any{"type": "string"},
		"image_url": map[string]any{"type": "string"},
		"audio_url": map[string]any{"type": "string"},
	},
}

var questionPageSchema = &payloadSchema{
	name: "question-page",
	def: map[string]any{
		"type":     "object",
		"required": []any{"quiz", "question"},
		"properties": map[string]any{
			"quiz": map[string]any{
				"type":     "object",
				"required": []any{"id", "title"},
				"properties": map[string]any{
					"id":             map[string]any{"type": "integer"},
					"title":          map[string]any{"type": "string"},
					"creator_id":     map[string]any{"type": "integer"},
					"lesson_id":      map[string]any{"type": "integer"},
					"question_count": map[string]any{"type": "integer", "minimum": 0},
					"difficulty": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"label":      map[string]any{"type": "string"},
							"score":      map[string]any{"type": "number"},
							"confidence": map[string]any{"type": "number"},
							"icon":       map[string]any{"type": "string"},
						},
					},
				},
			},
			"question": map[string]any{
				"type":     "object",
				"required": []any{"id", "type", "permalink"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer"},
					"position": map[string]any{"type": "integer"},
					"type": map[string]any{
						"enum": []any{
							string("single_choice"),
							string("multi_choice"),
							string("short_text"),
							string("ordering"),
							string("fill_blank"),
						},
					},
					"prompt": mediaSchema,
					"options": map[string]any{
						"type":     "array",
						"maxItems": 4,
						"items":    mediaSchema,
					},
					"permalink":                   map[string]any{"type": "string", "minLength": 1},
					"next_question_permalink":     map[string]any{"type": "string"},
					"previous_question_permalink": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var feedSchema = &payloadSchema{
	name: "feed",
	def: map[string]any{
		"type":     "object",
		"required": []any{"items"},
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "first_question_permalink"},
					"properties": map[string]any{
						"id":                       map[string]any{"type": "integer"},
						"first_question_permalink": map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
	},
}
