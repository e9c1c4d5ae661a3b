package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicAgainst(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"usage":       map[string]any{"input_tokens": 310, "output_tokens": 240},
	}
}

func TestAnthropicServesQuestionSet(t *testing.T) {
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(string(questionReply), "end_turn"))
	})

	reply, err := p.Generate(context.Background(), Prompt{
		System:    "You are an assessment designer.",
		User:      "Generate the level 1 exam.",
		MaxTokens: 4096,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(reply.Content) != string(questionReply) {
		t.Fatalf("content = %s", reply.Content)
	}
	if reply.Usage.InputTokens != 310 || reply.Usage.OutputTokens != 240 {
		t.Fatalf("usage = %+v", reply.Usage)
	}
	if reply.Model != "claude-haiku-4-5-20251001" {
		t.Fatalf("model = %q", reply.Model)
	}
}

func TestAnthropicTruncationIsAnError(t *testing.T) {
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"questions":[{"id":"q1"`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Prompt{User: "generate", MaxTokens: 16})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("error = %T (%v), want *ErrTruncated", err, err)
	}
}

func TestAnthropicRateLimit(t *testing.T) {
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
	})

	_, err := p.Generate(context.Background(), Prompt{User: "generate", MaxTokens: 64})
	var rl *ErrRateLimited
	if !errors.As(err, &rl) {
		t.Fatalf("error = %T (%v), want *ErrRateLimited", err, err)
	}
}

func TestAnthropicServerError(t *testing.T) {
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "boom"},
		})
	})

	_, err := p.Generate(context.Background(), Prompt{User: "generate", MaxTokens: 64})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T (%v), want *ErrUnavailable", err, err)
	}
}

func TestAnthropicAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-haiku-4-5-20251001", "claude-haiku-4-5-20251001"},
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.in, anthropicAliases); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
