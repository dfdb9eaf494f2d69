package batch

import (
	"context"
	"errors"
	"time"
)

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// BackoffFunc returns the wait after the retries-th consecutive failure (1-based).
type BackoffFunc func(retries int) time.Duration

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ExponentialBackoff waits base*2^retries after the retries-th failure, capped at limit.
// ExponentialBackoff(time.Second, 10*time.Second) yields 2s, 4s, 8s, 10s, ...
func ExponentialBackoff(base, limit time.Duration) BackoffFunc {
	return func(retries int) time.Duration {
		if retries < 1 {
			retries = 1
		}
		if retries > 32 {
			return limit
		}
		d := base << retries
		if d <= 0 || d > limit {
			return limit
		}
		return d
	}
}

// RetryWithBackoff calls fn until it succeeds or maxAttempts calls have failed.
// Between failures it sleeps for backoff(failures). There is no sleep after
// the final failure. It returns the number of calls made and the last error.
// A sleep interrupted by ctx stops the loop early.
func RetryWithBackoff(
	ctx context.Context,
	fn func(ctx context.Context, attempt int) error,
	maxAttempts int,
	backoff BackoffFunc,
	sleep Sleeper,
) (int, error) {
	maxAttempts = max(1, maxAttempts)

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx, attempt); err == nil {
			return attempt, nil
		}
		if attempt >= maxAttempts {
			return attempt, err
		}
		if serr := sleep(ctx, backoff(attempt)); serr != nil {
			return attempt, errors.Join(err, serr)
		}
	}
}
