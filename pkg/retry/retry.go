// Package retry re-runs transient failures with exponential backoff and jitter.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// StatusCoder is implemented by errors that carry an HTTP-like status code.
type StatusCoder interface {
	StatusCode() int
}

type Options struct {
	// MaxRetries is the total number of attempts, including the first one.
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
	RetryableStatuses []int

	// OnRetry is called before each wait.
	OnRetry func(attempt int, err error, delay time.Duration)
	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
	// Jitter returns a value in [0,1). Defaults to math/rand/v2.
	Jitter func() float64
}

func DefaultOptions() Options {
	return Options{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		MaxDelay:          10 * time.Second,
		BackoffMultiplier: 2,
		RetryableStatuses: []int{408, 429, 500, 502, 503, 504},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxRetries <= 0 {
		o.MaxRetries = d.MaxRetries
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = d.InitialDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = d.MaxDelay
	}
	if o.BackoffMultiplier <= 0 {
		o.BackoffMultiplier = d.BackoffMultiplier
	}
	if o.RetryableStatuses == nil {
		o.RetryableStatuses = d.RetryableStatuses
	}
	if o.Sleep == nil {
		o.Sleep = sleep
	}
	if o.Jitter == nil {
		o.Jitter = rand.Float64
	}
	return o
}

// Delay is min(initial*multiplier^attempt + jitter, max), where jitter is
// up to 10% of the exponential part. attempt starts at 0.
func (o Options) Delay(attempt int, jitter float64) time.Duration {
	exponential := float64(o.InitialDelay) * math.Pow(o.BackoffMultiplier, float64(attempt))
	d := exponential + jitter*0.1*exponential
	if d > float64(o.MaxDelay) {
		return o.MaxDelay
	}
	return time.Duration(d)
}

func (o Options) retryable(err error) bool {
	var sc StatusCoder
	if !errors.As(err, &sc) {
		return false
	}
	status := sc.StatusCode()
	for _, s := range o.RetryableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// attempts are used up. The last error is returned unchanged.
func Do[T any](ctx context.Context, opts Options, fn func(ctx context.Context) (T, error)) (T, error) {
	opts = opts.withDefaults()

	var zero T
	var lastErr error
	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !opts.retryable(err) || attempt == opts.MaxRetries-1 {
			return zero, err
		}

		delay := opts.Delay(attempt, opts.Jitter())
		if opts.OnRetry != nil {
			opts.OnRetry(attempt+1, err, delay)
		}
		if err := opts.Sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
