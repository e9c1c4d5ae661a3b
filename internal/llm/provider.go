// Package llm is the provider layer for question generation: one
// interface over Anthropic, OpenAI, Gemini and OpenRouter, with retry
// and event-logging middleware stacked on top by the factory.
package llm

import (
	"context"
	"encoding/json"
)

// Provider executes one structured-output call against a model.
type Provider interface {
	// Generate sends the prompt and returns the model's reply. When the
	// prompt carries a Schema, the reply Content is JSON already checked
	// against it.
	Generate(ctx context.Context, prompt Prompt) (*Reply, error)

	// ModelID is the model this provider is configured to call.
	ModelID() string
}

// Prompt is a single-turn request. Exam generation never needs a
// conversation, only a role, one instruction, and the shape of the
// answer.
type Prompt struct {
	// System sets the model's role and the rules it must not break.
	System string

	// User is the instruction for this call: the exam contract, its
	// concept scope, and any feedback from a rejected round.
	User string

	// Schema, when set, is the JSON shape the reply must satisfy.
	// Providers request it through their native structured-output
	// mechanism and check the reply before returning it.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Reply is a model's answer to one Prompt.
type Reply struct {
	// Content is the reply body: schema-checked JSON when the prompt
	// carried a schema, raw text otherwise.
	Content json.RawMessage

	// Model is the model that actually served the call, which may be a
	// dated ID behind a configured alias.
	Model string

	Usage Usage
}

// Usage is the token count for one call, as reported by the provider.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// aliasOrID resolves a configured model name through an alias table,
// passing unknown names through as literal model IDs.
func aliasOrID(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
