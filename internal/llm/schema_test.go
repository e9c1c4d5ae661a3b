package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// questionSchema mirrors the shape exam generation asks for, shrunk to
// a single question.
func questionSchema() *Schema {
	return &Schema{
		Name:        "practice-question",
		Description: "One multiple-choice governance question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stem": map[string]any{"type": "string"},
				"options": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":   map[string]any{"type": "string"},
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"id", "text"},
					},
				},
				"correctOptionId": map[string]any{"type": "string"},
				"difficultyTag": map[string]any{
					"type": "string",
					"enum": []any{"recall", "apply", "analyse", "judgement"},
				},
			},
			"required": []any{"stem", "options", "correctOptionId"},
		},
	}
}

func TestSchemaCheckAcceptsConformingReply(t *testing.T) {
	reply := json.RawMessage(`{
		"stem": "A processor wants to reuse training data. What applies?",
		"options": [{"id":"A","text":"Purpose limitation"},{"id":"B","text":"Nothing"}],
		"correctOptionId": "A",
		"difficultyTag": "apply"
	}`)
	if err := questionSchema().Check(reply); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestSchemaCheckOptionalFieldsMayBeAbsent(t *testing.T) {
	reply := json.RawMessage(`{
		"stem": "What is data minimisation?",
		"options": [{"id":"A","text":"Collect only what is needed"}],
		"correctOptionId": "A"
	}`)
	if err := questionSchema().Check(reply); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestSchemaCheckRejectsMissingRequired(t *testing.T) {
	reply := json.RawMessage(`{"stem": "An orphaned stem"}`)
	err := questionSchema().Check(reply)
	if err == nil {
		t.Fatal("expected missing required fields to fail")
	}
	var bad *ErrBadReply
	if !errors.As(err, &bad) {
		t.Fatalf("error = %T, want *ErrBadReply", err)
	}
}

func TestSchemaCheckRejectsUnknownTag(t *testing.T) {
	reply := json.RawMessage(`{
		"stem": "s",
		"options": [{"id":"A","text":"t"}],
		"correctOptionId": "A",
		"difficultyTag": "trivial"
	}`)
	var bad *ErrBadReply
	if err := questionSchema().Check(reply); !errors.As(err, &bad) {
		t.Fatalf("error = %T, want *ErrBadReply for enum violation", err)
	}
}

func TestSchemaCheckRejectsWrongItemShape(t *testing.T) {
	reply := json.RawMessage(`{
		"stem": "s",
		"options": ["just a string"],
		"correctOptionId": "A"
	}`)
	var bad *ErrBadReply
	if err := questionSchema().Check(reply); !errors.As(err, &bad) {
		t.Fatalf("error = %T, want *ErrBadReply for item shape", err)
	}
}

func TestSchemaCheckRejectsNonJSON(t *testing.T) {
	for _, raw := range []string{`I refuse to answer in JSON.`, ``} {
		var bad *ErrBadReply
		if err := questionSchema().Check(json.RawMessage(raw)); !errors.As(err, &bad) {
			t.Fatalf("raw %q: error = %T, want *ErrBadReply", raw, err)
		}
	}
}

func TestSchemaCompilesOnce(t *testing.T) {
	s := questionSchema()
	reply := json.RawMessage(`{"stem":"s","options":[],"correctOptionId":"A"}`)
	if err := s.Check(reply); err != nil {
		t.Fatalf("first Check: %v", err)
	}
	// Mutating the definition after first use must not change behavior;
	// the compiled schema is fixed.
	s.Definition["required"] = []any{"nonexistent"}
	if err := s.Check(reply); err != nil {
		t.Fatalf("second Check: %v", err)
	}
}
