package llm

import "testing"

func TestOpenRouterRoutedModelPassesThrough(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "or-key",
		Model:  "google/gemini-2.0-flash-exp",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if got := p.ModelID(); got != "google/gemini-2.0-flash-exp" {
		t.Errorf("ModelID() = %q", got)
	}
}

func TestOpenRouterRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
		t.Fatal("expected an error without an API key")
	}
}
