package challenge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownRunsToZero(t *testing.T) {
	ctx := context.Background()
	ticks := countdown(ctx, 30*time.Millisecond, 10*time.Millisecond)

	first, ok := <-ticks
	require.True(t, ok)
	assert.Equal(t, 30*time.Millisecond, first)

	var last time.Duration = first
	for remaining := range ticks {
		assert.LessOrEqual(t, remaining, last)
		last = remaining
	}
	assert.Equal(t, time.Duration(0), last)
}

func TestCountdownStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := countdown(ctx, time.Hour, 10*time.Millisecond)

	first := <-ticks
	assert.Equal(t, time.Hour, first)
	cancel()

	// The channel closes without ever reaching zero.
	deadline := time.After(time.Second)
	for {
		select {
		case remaining, ok := <-ticks:
			if !ok {
				return
			}
			assert.Positive(t, remaining)
		case <-deadline:
			t.Fatal("countdown channel did not close after cancel")
		}
	}
}

func TestFormatClock(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-3 * time.Second, "00:00"},
		{5 * time.Second, "00:05"},
		{20 * time.Minute, "20:00"},
		{45*time.Minute + 7*time.Second, "45:07"},
		{time.Hour, "1:00:00"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2:03:04"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatClock(tc.d), "duration %s", tc.d)
	}
}
