package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		Initial:    time.Millisecond,
		Max:        4 * time.Millisecond,
		Multiplier: 2.0,
		Timeout:    250 * time.Millisecond,
	}
}

func TestUntil_ImmediateSuccess(t *testing.T) {
	attempts := 0
	err := Until(context.Background(), fastConfig(), "test resource", func(context.Context) (bool, error) {
		attempts++
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestUntil_SucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := Until(context.Background(), fastConfig(), "test resource", func(context.Context) (bool, error) {
		attempts++
		return attempts >= 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestUntil_Timeout(t *testing.T) {
	cfg := fastConfig()
	cfg.Timeout = 20 * time.Millisecond

	attempts := 0
	err := Until(context.Background(), cfg, "instance to reach RUNNING", func(context.Context) (bool, error) {
		attempts++
		return false, nil
	})

	require.Error(t, err)
	testutil.AssertTimeout(t, err)
	assert.Contains(t, err.Error(), "instance to reach RUNNING")
	assert.Greater(t, attempts, 1, "should have retried before the deadline")
}

func TestUntil_PropagatesCheckError(t *testing.T) {
	boom := errors.New("permission denied")
	err := Until(context.Background(), fastConfig(), "test resource", func(context.Context) (bool, error) {
		return false, boom
	})

	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	assert.False(t, apperrors.IsTimeout(err))
}

func TestUntil_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Until(ctx, fastConfig(), "test resource", func(context.Context) (bool, error) {
		return false, nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperrors.IsTimeout(err))
}

func TestNextInterval(t *testing.T) {
	tests := []struct {
		name     string
		current  time.Duration
		max      time.Duration
		expected time.Duration
	}{
		{name: "doubles", current: 2 * time.Second, max: 30 * time.Second, expected: 4 * time.Second},
		{name: "caps at max", current: 20 * time.Second, max: 30 * time.Second, expected: 30 * time.Second},
		{name: "stays at max", current: 30 * time.Second, max: 30 * time.Second, expected: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextInterval(tt.current, tt.max, 2.0))
		})
	}
}
