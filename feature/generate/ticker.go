package generate

import (
	"context"
	"time"
)

// PollInterval is how often watch mode checks the input file.
const PollInterval = time.Second

// Ticks converts a time.Ticker into the tick channel Watch consumes.
// The channel closes when ctx is done.
func Ticks(ctx context.Context, interval time.Duration) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
