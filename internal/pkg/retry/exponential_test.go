package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forestbar/api/internal/pkg/logger"
)

func newTestRetrier(cfg Config) (*Retrier, *[]time.Duration, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := New(cfg, logger.NewZapLoggerWithCore(core, "test"))
	var slept []time.Duration
	r.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return r, &slept, logs
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	r, slept, logs := newTestRetrier(Config{MaxRetries: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2})

	calls := 0
	err := r.Execute(context.Background(), "postgres", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *slept)
	assert.Equal(t, 2, logs.FilterMessage("Operation failed, retrying").Len())
	assert.Equal(t, 1, logs.FilterMessage("Operation succeeded after retries").Len())
}

func TestRetrier_GivesUp(t *testing.T) {
	r, slept, _ := newTestRetrier(Config{MaxRetries: 2, BaseDelay: time.Second, MaxDelay: 1500 * time.Millisecond, Multiplier: 2})
	errDown := errors.New("down")

	calls := 0
	err := r.Execute(context.Background(), "redis", func(context.Context) error {
		calls++
		return errDown
	})

	assert.ErrorIs(t, err, errDown)
	assert.Contains(t, err.Error(), "redis failed after 3 attempts")
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 1500 * time.Millisecond}, *slept)
}

func TestRetrier_StopsOnCancelledContext(t *testing.T) {
	r, _, _ := newTestRetrier(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := r.Execute(ctx, "postgres", func(context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestSleepCtx(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))
}
