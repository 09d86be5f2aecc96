package challenge

import (
	"context"
	"fmt"
	"time"
)

// Countdown emits the remaining time once per second until it reaches
// zero or ctx is cancelled. The channel is closed on teardown, so a
// consumer ranging over it exits cleanly in both cases.
func Countdown(ctx context.Context, total time.Duration) <-chan time.Duration {
	return countdown(ctx, total, time.Second)
}

func countdown(ctx context.Context, total, step time.Duration) <-chan time.Duration {
	ch := make(chan time.Duration, 1)
	deadline := time.Now().Add(total)

	go func() {
		defer close(ch)
		ticker := time.NewTicker(step)
		defer ticker.Stop()

		ch <- total
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				remaining := time.Until(deadline)
				if remaining <= 0 {
					ch <- 0
					return
				}
				ch <- remaining.Round(step)
			}
		}
	}()
	return ch
}

// FormatClock renders a duration as MM:SS (or H:MM:SS past an hour),
// the format shown next to the timer during a challenge.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
