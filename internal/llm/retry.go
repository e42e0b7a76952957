package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the backoff loop around backend calls. Delays are
// pure exponential with no jitter so the sequence is deterministic:
// InitialDelay, InitialDelay*Multiplier, InitialDelay*Multiplier^2, ...
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration
	Multiplier   float64
}

// DefaultRetryPolicy is the production policy: up to three retries after
// the initial attempt, doubling from one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		InitialDelay: time.Second,
		Multiplier:   2,
	}
}

// Notify observes each scheduled retry with the error that triggered it
// and the delay about to be slept.
type Notify func(err error, delay time.Duration)

type retryClient struct {
	inner  Client
	policy RetryPolicy
	notify Notify
}

// WithRetry wraps a client so transient backend failures are retried with
// exponential backoff. Each wrapped call owns its own attempt counter and
// delay; attempts within one call are strictly sequential. Cancelling the
// context aborts the wait and surfaces the context error rather than an
// ExhaustedError.
func WithRetry(inner Client, policy RetryPolicy, notify Notify) Client {
	return &retryClient{inner: inner, policy: policy, notify: notify}
}

func (c *retryClient) Name() string { return c.inner.Name() }

func (c *retryClient) Generate(ctx context.Context, req *Request) (*Result, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.policy.InitialDelay
	bo.Multiplier = c.policy.Multiplier
	bo.RandomizationFactor = 0
	bo.MaxInterval = 1 << 62 // no ceiling; the retry bound limits growth
	bo.MaxElapsedTime = 0
	bo.Reset()

	var res *Result
	attempts := 0

	operation := func() error {
		attempts++
		r, err := c.inner.Generate(ctx, req)
		if err != nil {
			if !Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		res = r
		return nil
	}

	var notify backoff.Notify
	if c.notify != nil {
		notify = backoff.Notify(c.notify)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.policy.MaxRetries)), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		if Retryable(err) {
			return nil, &ExhaustedError{Attempts: attempts, Err: err}
		}
		return nil, err
	}
	return res, nil
}
