// Package debounce coalesces rapidly changing values into settled emissions.
package debounce

import (
	"context"
	"time"
)

// DefaultWindow is the quiescence window used by the search box.
const DefaultWindow = 300 * time.Millisecond

// Debounce forwards the most recent value from in once no new value has
// arrived for window. Every input restarts the timer, so only settled values
// are emitted. Cancelling ctx or closing in discards any pending emission and
// closes the returned channel.
func Debounce[T any](ctx context.Context, window time.Duration, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		var (
			timer   *time.Timer
			timerC  <-chan time.Time
			pending T
		)
		stop := func() {
			if timer != nil && !timer.Stop() {
				select {
				case <-timerC:
				default:
				}
			}
		}

		for {
			select {
			case v, ok := <-in:
				if !ok {
					stop()
					return
				}
				pending = v
				if timer == nil {
					timer = time.NewTimer(window)
				} else {
					stop()
					timer.Reset(window)
				}
				timerC = timer.C

			case <-timerC:
				timerC = nil
				timer = nil
				select {
				case out <- pending:
				case <-ctx.Done():
					return
				}

			case <-ctx.Done():
				stop()
				return
			}
		}
	}()

	return out
}
