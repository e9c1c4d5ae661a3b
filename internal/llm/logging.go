package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fasahat78/startege/internal/store"
)

// eventLogger records every call, success or failure, as an event row.
// The event carries the configured provider name, the model that served
// the call, and the full prompt/reply bodies for debugging rejected
// generations.
type eventLogger struct {
	next     Provider
	provider string
	events   store.EventRepo
}

// WithLogging wraps a provider so every call lands in the event log
// under the given provider name.
func WithLogging(next Provider, providerName string, events store.EventRepo) Provider {
	return &eventLogger{next: next, provider: providerName, events: events}
}

func (l *eventLogger) Generate(ctx context.Context, prompt Prompt) (*Reply, error) {
	start := time.Now()
	reply, err := l.next.Generate(ctx, prompt)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(prompt),
	}
	if reply != nil {
		data.Model = reply.Model
		data.InputTokens = reply.Usage.InputTokens
		data.OutputTokens = reply.Usage.OutputTokens
		data.ResponseBody = string(reply.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A full event log is diagnostics, not correctness: an append
	// failure must not fail the call it describes.
	if appendErr := l.events.AppendLLMRequest(ctx, data); appendErr != nil {
		log.Printf("llm: append request event: %v", appendErr)
	}

	return reply, err
}

func (l *eventLogger) ModelID() string { return l.next.ModelID() }

// transcript renders the prompt the way `llm view` shows it.
func transcript(prompt Prompt) string {
	var b strings.Builder

	if prompt.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", prompt.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", prompt.User)

	if prompt.Schema != nil {
		if def, err := json.Marshal(prompt.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema %s]\n%s\n", prompt.Schema.Name, def)
		}
	}
	return b.String()
}
