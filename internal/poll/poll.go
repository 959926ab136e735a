// Package poll runs a check at a fixed interval until it reports done or an
// attempt budget is spent.
package poll

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrExhausted is returned when the check never reported done within the
// configured number of attempts.
var ErrExhausted = errors.New("poll attempts exhausted")

// errNotDone marks an attempt whose check has not been satisfied yet.
var errNotDone = errors.New("condition not met")

// Settings bounds a polling loop.
type Settings struct {
	Attempts int           // Total number of checks, including the first one.
	Interval time.Duration // Pause between two checks.
}

// Check is evaluated once per attempt. attempt starts at 1. Returning an error
// stops polling immediately and surfaces that error.
type Check func(ctx context.Context, attempt int) (done bool, err error)

// Until evaluates check until it reports done, returns an error, the attempt
// budget is spent or ctx is canceled. It returns the number of attempts made.
// No pause follows the final attempt.
func Until(ctx context.Context, s Settings, check Check) (int, error) {
	if s.Attempts < 1 {
		return 0, ErrExhausted
	}

	interval := s.Interval
	if interval <= 0 {
		interval = time.Nanosecond
	}

	backoff := retry.WithMaxRetries(uint64(s.Attempts-1), retry.NewConstant(interval))

	attempts := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		done, err := check(ctx, attempts)
		if err != nil {
			return err
		}
		if !done {
			return retry.RetryableError(errNotDone)
		}
		return nil
	})
	if errors.Is(err, errNotDone) {
		return attempts, ErrExhausted
	}
	return attempts, err
}
