package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider: either a
// content payload or an error, never both.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider serves scripted replies in FIFO order and records every
// prompt it receives, so tests can assert on what was asked.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse

	// Prompts are the recorded requests, in call order.
	Prompts []Prompt
}

// NewMockProvider scripts the provider with the given replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{queue: replies}
}

// Generate serves the next scripted reply. An exhausted queue behaves
// like an outage.
func (m *MockProvider) Generate(_ context.Context, prompt Prompt) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.queue) == 0 {
		return nil, &ErrUnavailable{Err: errors.New("mock reply queue exhausted")}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Reply{
		Content: next.Content,
		Model:   "mock-model",
		Usage:   next.Usage,
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock-model" }

// AddResponse appends one more scripted reply.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

// CallCount is the number of Generate calls served so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
