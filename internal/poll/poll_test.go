package poll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/approvegate/internal/poll"
)

var fast = poll.Settings{Attempts: 5, Interval: time.Millisecond}

func TestUntil_DoneOnFirstAttempt(t *testing.T) {
	attempts, err := poll.Until(context.Background(), fast, func(_ context.Context, _ int) (bool, error) {
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestUntil_DoneOnThirdAttempt(t *testing.T) {
	var seen []int
	attempts, err := poll.Until(context.Background(), fast, func(_ context.Context, attempt int) (bool, error) {
		seen = append(seen, attempt)
		return attempt == 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestUntil_Exhausted(t *testing.T) {
	calls := 0
	attempts, err := poll.Until(context.Background(), fast, func(_ context.Context, _ int) (bool, error) {
		calls++
		return false, nil
	})

	require.ErrorIs(t, err, poll.ErrExhausted)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, 5, calls)
}

func TestUntil_ErrorStopsImmediately(t *testing.T) {
	boom := errors.New("api down")
	attempts, err := poll.Until(context.Background(), fast, func(_ context.Context, _ int) (bool, error) {
		return false, boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestUntil_ZeroAttempts(t *testing.T) {
	called := false
	attempts, err := poll.Until(context.Background(), poll.Settings{}, func(_ context.Context, _ int) (bool, error) {
		called = true
		return true, nil
	})

	require.ErrorIs(t, err, poll.ErrExhausted)
	assert.Zero(t, attempts)
	assert.False(t, called)
}

func TestUntil_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	slow := poll.Settings{Attempts: 10, Interval: time.Hour}
	attempts, err := poll.Until(ctx, slow, func(_ context.Context, _ int) (bool, error) {
		cancel()
		return false, nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}
