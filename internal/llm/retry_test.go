package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryPassesThroughFirstSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: questionReply})
	p := WithRetry(mock, fastRetry())

	reply, err := p.Generate(context.Background(), Prompt{User: "generate"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(reply.Content) != string(questionReply) {
		t.Fatalf("content = %s", reply.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("503")}},
		MockResponse{Content: questionReply},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Prompt{User: "generate"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterBudget(t *testing.T) {
	down := MockResponse{Err: &ErrUnavailable{Err: errors.New("503")}}
	mock := NewMockProvider(down, down, down)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Prompt{User: "generate"})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *ErrUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryDoesNotRepeatTruncation(t *testing.T) {
	// A reply cut off at the token budget will be cut off again.
	mock := NewMockProvider(
		MockResponse{Err: &ErrTruncated{Content: questionReply}},
		MockResponse{Content: questionReply},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Prompt{User: "generate"})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("error = %T, want *ErrTruncated", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryGrantsBadReplyOneMoreAttempt(t *testing.T) {
	bad := MockResponse{Err: &ErrBadReply{Err: errors.New("fails schema")}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: questionReply})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Prompt{User: "generate"})
	var badErr *ErrBadReply
	if !errors.As(err, &badErr) {
		t.Fatalf("error = %T, want *ErrBadReply", err)
	}
	// One retry for a bad reply, then stop; the third scripted reply
	// must never be reached.
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("503")}},
		MockResponse{Content: questionReply},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Prompt{User: "generate"}); err == nil {
		t.Fatal("expected error under a cancelled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimited{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: questionReply},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Prompt{User: "generate"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock-model" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}
