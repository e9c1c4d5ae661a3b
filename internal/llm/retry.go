package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds the retry layer: how many calls one Generate may
// cost, and the backoff curve between them.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// retryProvider re-issues calls that failed for transient reasons.
type retryProvider struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a provider with bounded retries and backoff.
func WithRetry(next Provider, cfg RetryConfig) Provider {
	return &retryProvider{next: next, cfg: cfg}
}

type retryClass int

const (
	retryNever  retryClass = iota // deterministic failure, same call fails again
	retryOnce                     // a bad reply earns one more roll of the dice
	retryAlways                   // transient: outage, rate limit, network
)

func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var trunc *ErrTruncated
	if errors.As(err, &trunc) {
		// Token budget is configuration, not luck.
		return retryNever
	}
	var bad *ErrBadReply
	if errors.As(err, &bad) {
		return retryOnce
	}
	return retryAlways
}

func (r *retryProvider) Generate(ctx context.Context, prompt Prompt) (*Reply, error) {
	var lastErr error
	badReplies := 0

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		reply, err := r.next.Generate(ctx, prompt)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			badReplies++
			if badReplies > 1 {
				return nil, err
			}
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string { return r.next.ModelID() }

// wait picks the pause before the next attempt: the provider's own
// Retry-After when it gave one, otherwise capped exponential backoff
// with half-to-full jitter so concurrent callers fall out of lockstep.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimited
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := time.Duration(float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt)))
	if base > r.cfg.MaxWait {
		base = r.cfg.MaxWait
	}
	return base/2 + rand.N(base/2+1)
}
