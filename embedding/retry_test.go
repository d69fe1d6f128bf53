package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/indexit/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithBackoff_Success(t *testing.T) {
	calls := 0
	operation := func() error {
		calls++
		return nil
	}

	err := RetryWithBackoff(context.Background(), operation, 3, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_EventualSuccess(t *testing.T) {
	calls := 0
	operation := func() error {
		calls++
		if calls < 3 {
			return ai.Transient(errors.New("rate limited"))
		}
		return nil
	}

	err := RetryWithBackoff(context.Background(), operation, 5, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_AllAttemptsFail(t *testing.T) {
	calls := 0
	transient := ai.Transient(errors.New("timeout"))
	operation := func() error {
		calls++
		return transient
	}

	err := RetryWithBackoff(context.Background(), operation, 3, 10*time.Millisecond)
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, transient)
}

func TestRetryWithBackoff_FatalNotRetried(t *testing.T) {
	calls := 0
	fatal := errors.New("invalid api key")
	operation := func() error {
		calls++
		return fatal
	}

	err := RetryWithBackoff(context.Background(), operation, 5, 10*time.Millisecond)
	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls, "fatal errors must not be retried")
}

func TestRetryWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	operation := func() error {
		return ai.Transient(errors.New("timeout"))
	}

	err := RetryWithBackoff(ctx, operation, 10, 10*time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryWithBackoff_ContextCanceledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	operation := func() error {
		return ai.Transient(errors.New("timeout"))
	}

	err := RetryWithBackoff(ctx, operation, 10, 100*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryWithBackoff_ExponentialBackoff(t *testing.T) {
	calls := 0
	var timestamps []time.Time
	operation := func() error {
		calls++
		timestamps = append(timestamps, time.Now())
		if calls < 3 {
			return ai.Transient(errors.New("timeout"))
		}
		return nil
	}

	err := RetryWithBackoff(context.Background(), operation, 5, 20*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, timestamps, 3)

	// Second gap (40ms) should be roughly double the first (20ms).
	first := timestamps[1].Sub(timestamps[0])
	second := timestamps[2].Sub(timestamps[1])
	assert.GreaterOrEqual(t, first, 20*time.Millisecond)
	assert.GreaterOrEqual(t, second, 40*time.Millisecond)
}

func TestRetryWithBackoff_ZeroMaxAttempts(t *testing.T) {
	operation := func() error { return nil }

	err := RetryWithBackoff(context.Background(), operation, 0, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}
