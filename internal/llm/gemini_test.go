package llm

import (
	"context"
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.in, geminiAliases); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	converted := geminiSchema(questionSchema().Definition)

	if converted.Type != "OBJECT" {
		t.Fatalf("type = %s", converted.Type)
	}
	if len(converted.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(converted.Properties))
	}
	if converted.Properties["stem"].Type != "STRING" {
		t.Errorf("stem type = %s", converted.Properties["stem"].Type)
	}

	options := converted.Properties["options"]
	if options.Type != "ARRAY" {
		t.Fatalf("options type = %s", options.Type)
	}
	if options.Items == nil || options.Items.Type != "OBJECT" {
		t.Fatalf("options items = %+v", options.Items)
	}
	if len(options.Items.Required) != 2 {
		t.Errorf("option item required = %v", options.Items.Required)
	}

	if got := len(converted.Properties["difficultyTag"].Enum); got != 4 {
		t.Errorf("difficulty enum values = %d, want 4", got)
	}
	if len(converted.Required) != 3 {
		t.Errorf("required = %v", converted.Required)
	}
}

func TestGeminiRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected an error without an API key")
	}
}
