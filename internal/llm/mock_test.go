package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

var questionReply = json.RawMessage(`{"questions":[{"id":"q1","stem":"Which lawful basis applies?"}]}`)

func TestMockservesRepliesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: questionReply, Usage: Usage{InputTokens: 120, OutputTokens: 80}},
		MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)

	first, err := mock.Generate(context.Background(), Prompt{User: "Generate the level 1 exam."})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != string(questionReply) {
		t.Fatalf("first reply = %s", first.Content)
	}
	if first.Usage.InputTokens != 120 || first.Usage.OutputTokens != 80 {
		t.Fatalf("usage = %+v", first.Usage)
	}

	second, err := mock.Generate(context.Background(), Prompt{User: "Generate again."})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) != `{"questions":[]}` {
		t.Fatalf("second reply = %s", second.Content)
	}
}

func TestMockExhaustedQueueIsAnOutage(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Prompt{User: "anything"})
	if err == nil {
		t.Fatal("expected error from an empty queue")
	}
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *ErrUnavailable", err)
	}
}

func TestMockRecordsPrompts(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: questionReply})

	_, _ = mock.Generate(context.Background(), Prompt{
		System: "You are an assessment designer.",
		User:   "Generate the GDPR category exam.",
	})

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Prompts[0].System != "You are an assessment designer." {
		t.Errorf("system = %q", mock.Prompts[0].System)
	}
	if mock.Prompts[0].User != "Generate the GDPR category exam." {
		t.Errorf("user = %q", mock.Prompts[0].User)
	}
}

func TestMockServesScriptedErrors(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimited{}})

	_, err := mock.Generate(context.Background(), Prompt{User: "x"})
	var rl *ErrRateLimited
	if !errors.As(err, &rl) {
		t.Fatalf("error = %T, want *ErrRateLimited", err)
	}
}

func TestMockModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock-model" {
		t.Fatalf("ModelID = %q", got)
	}
}

func TestPurposeLabels(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unspecified" {
		t.Fatalf("default purpose = %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposeExamGen)); p != "exam-gen" {
		t.Fatalf("purpose = %q", p)
	}
}
