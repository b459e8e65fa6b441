package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeadlineInfo_NoDeadline(t *testing.T) {
	attrs := GetDeadlineInfo(context.Background())

	assert.Equal(t, []any{"deadline", "none", "deadline_remaining", "none"}, attrs)
}

func TestGetDeadlineInfo_WithDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	attrs := GetDeadlineInfo(ctx)
	require.Len(t, attrs, 4)
	assert.Equal(t, "deadline", attrs[0])
	assert.Equal(t, "deadline_remaining", attrs[2])

	deadline, ok := attrs[1].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, deadline)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), parsed, 5*time.Second)
}
