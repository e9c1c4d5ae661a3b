package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fasahat78/startege/internal/store"
)

// captureEvents is an in-memory store.EventRepo recording appends.
type captureEvents struct {
	appended []store.LLMRequestEventData
}

func (c *captureEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.appended = append(c.appended, data)
	return nil
}

func (c *captureEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (c *captureEvents) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (c *captureEvents) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (c *captureEvents) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestLoggingRecordsProviderNameNotModel(t *testing.T) {
	events := &captureEvents{}
	p := WithLogging(NewMockProvider(MockResponse{
		Content: questionReply,
		Usage:   Usage{InputTokens: 200, OutputTokens: 150},
	}), "anthropic", events)

	ctx := WithPurpose(context.Background(), PurposeExamGen)
	if _, err := p.Generate(ctx, Prompt{System: "designer", User: "generate"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(events.appended) != 1 {
		t.Fatalf("events = %d, want 1", len(events.appended))
	}
	e := events.appended[0]
	if e.Provider != "anthropic" {
		t.Errorf("provider = %q, want the configured provider name", e.Provider)
	}
	if e.Model != "mock-model" {
		t.Errorf("model = %q, want the serving model ID", e.Model)
	}
	if e.Purpose != "exam-gen" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 200 || e.OutputTokens != 150 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("success = false for a served call")
	}
	if e.ResponseBody != string(questionReply) {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingRecordsFailures(t *testing.T) {
	events := &captureEvents{}
	p := WithLogging(NewMockProvider(MockResponse{
		Err: &ErrUnavailable{Err: errors.New("503")},
	}), "openai", events)

	if _, err := p.Generate(context.Background(), Prompt{User: "generate"}); err == nil {
		t.Fatal("expected the scripted failure to surface")
	}

	if len(events.appended) != 1 {
		t.Fatalf("events = %d, want 1", len(events.appended))
	}
	e := events.appended[0]
	if e.Success {
		t.Error("success = true for a failed call")
	}
	if e.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if e.Provider != "openai" {
		t.Errorf("provider = %q", e.Provider)
	}
}

func TestTranscriptCarriesPromptAndSchema(t *testing.T) {
	body := transcript(Prompt{
		System: "You are an assessment designer.",
		User:   "Generate the level 3 exam.",
		Schema: questionSchema(),
	})

	for _, want := range []string{
		"[system]\nYou are an assessment designer.",
		"[user]\nGenerate the level 3 exam.",
		"[schema practice-question]",
		"correctOptionId",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("transcript missing %q", want)
		}
	}
}
