package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

func TestRetrier_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_RecoversAfterFailures(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_ExhaustsBudget(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("persistent")
	})

	assert.Error(t, err)
	assert.Equal(t, 4, calls)
}

func TestRetrier_NonRetryableStopsImmediately(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool { return false }

	calls := 0
	err := New(cfg).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("fatal")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := New(fastConfig()).Execute(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
