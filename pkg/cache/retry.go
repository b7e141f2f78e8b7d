package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNetwork reports that a remote backend could not be reached.
	ErrNetwork = errors.New("cache backend unreachable")

	// ErrClosed is returned by operations on a closed cache.
	ErrClosed = errors.New("cache closed")
)

// retryable marks an error as transient.
type retryable struct{ err error }

func (e retryable) Error() string { return e.err.Error() }
func (e retryable) Unwrap() error { return e.err }

// Retryable marks err as transient so [Backoff.Retry] tries again.
// Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return retryable{err}
}

// IsRetryable reports whether err, or anything it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var r retryable
	return errors.As(err, &r)
}

// Backoff retries transient failures with a doubling delay.
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// DefaultBackoff is used when dialing remote backends: three attempts,
// 500ms then 1s apart.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 500 * time.Millisecond}

// Retry calls fn until it succeeds, returns an error not marked
// [Retryable], or the attempts run out. The last error is returned
// unchanged, so callers can still match it with errors.Is.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
	return err
}

// RetryWithBackoff retries fn with [DefaultBackoff].
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultBackoff.Retry(ctx, fn)
}
