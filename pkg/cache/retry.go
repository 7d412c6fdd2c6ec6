package cache

import (
	"context"
	"errors"
	"time"
)

// Backoff schedule for transient backend failures.
const (
	retryAttempts  = 3
	retryBaseDelay = 500 * time.Millisecond
)

// RetryableError marks an error as transient so RetryWithBackoff will
// try again. Backends wrap only the failures worth retrying; anything
// else aborts the operation immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is marked transient anywhere in its
// chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn until it succeeds, fails with a
// non-retryable error, or runs out of attempts. The delay between
// attempts doubles each round and the wait respects ctx cancellation.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
