package service

import (
	"context"
	"fmt"
	"time"

	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/logger"
)

// RetryPolicy bounds how a unit of work is retried on lock contention
type RetryPolicy struct {
	MaxAttempts    int
	Backoff        func(attempt int) time.Duration
	AttemptTimeout time.Duration
}

// LinearBackoff waits attempt × step after the given failed attempt
func LinearBackoff(step time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// DefaultRetryPolicy allows three attempts of at most 30s each, backing off 1s then 2s
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		Backoff:        LinearBackoff(time.Second),
		AttemptTimeout: 30 * time.Second,
	}
}

// Sleeper blocks for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// RetryCoordinator reruns a whole transactional unit when it fails on lock contention.
// It holds no mutable state and is safe for concurrent use.
type RetryCoordinator struct {
	policy RetryPolicy
	sleep  Sleeper
}

// RetryOption configures a RetryCoordinator
type RetryOption func(*RetryCoordinator)

// WithSleeper replaces the backoff wait, mainly for tests
func WithSleeper(sleep Sleeper) RetryOption {
	return func(c *RetryCoordinator) {
		c.sleep = sleep
	}
}

// NewRetryCoordinator creates a coordinator for policy
func NewRetryCoordinator(policy RetryPolicy, opts ...RetryOption) *RetryCoordinator {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Backoff == nil {
		policy.Backoff = func(int) time.Duration { return 0 }
	}
	c := &RetryCoordinator{policy: policy, sleep: sleepContext}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the coordinator's policy
func (c *RetryCoordinator) Policy() RetryPolicy {
	return c.policy
}

// Run calls fn until it succeeds, fails with a non-transient error, or the attempt budget is spent.
// Each attempt gets its own context bounded by the policy's AttemptTimeout.
func (c *RetryCoordinator) Run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var last error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		err := c.runAttempt(ctx, fn)
		if err == nil {
			return nil
		}
		if !apperrors.IsTransient(err) {
			return err
		}
		last = err

		if attempt == c.policy.MaxAttempts {
			break
		}
		backoff := c.policy.Backoff(attempt)
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"operation": operation,
			"attempt":   attempt,
			"backoff":   backoff.String(),
		}).WithError(err).Warn("lock contention, retrying")

		if err := c.sleep(ctx, backoff); err != nil {
			return err
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"operation": operation,
		"attempts":  c.policy.MaxAttempts,
	}).WithError(last).Error("lock contention retries exhausted")
	return apperrors.NewContentionExhaustedError(operation, c.policy.MaxAttempts, last)
}

func (c *RetryCoordinator) runAttempt(ctx context.Context, fn func(ctx context.Context) error) error {
	attemptCtx, cancel := ctx, context.CancelFunc(func() {})
	if c.policy.AttemptTimeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, c.policy.AttemptTimeout)
	}
	defer cancel()

	err := fn(attemptCtx)
	if err == nil || apperrors.IsTransient(err) {
		return err
	}
	// The attempt deadline fired while the caller is still waiting: treat it as a lock wait timeout.
	if attemptCtx.Err() != nil && ctx.Err() == nil {
		return fmt.Errorf("%w: attempt exceeded %s: %v", apperrors.ErrLockWaitTimeout, c.policy.AttemptTimeout, err)
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
