package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimited means the provider refused the call with a 429. The
// retry layer waits RetryAfter when the provider supplied one.
type ErrRateLimited struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider rate limited: %v", e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrBadReply means the reply arrived but is unusable: not JSON, or
// JSON that fails the prompt's schema. Content carries the offending
// reply for the event log.
type ErrBadReply struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadReply) Error() string {
	return fmt.Sprintf("unusable model reply: %v", e.Err)
}

func (e *ErrBadReply) Unwrap() error { return e.Err }

// ErrUnavailable means the provider could not serve the call at all:
// unreachable, 5xx, or a scripted outage in tests.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrTruncated means the reply was cut off at the MaxTokens budget.
// The budget is configuration, so retrying the same call cannot help.
type ErrTruncated struct {
	Content json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "model reply truncated at the token budget"
}
