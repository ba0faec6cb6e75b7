package core

import (
	"context"
	"time"
)

// RunLoop drives two independent cadences from a single goroutine: timer is
// invoked every timerPeriod and frame every framePeriod. The callbacks never
// run concurrently with each other. RunLoop returns when ctx is done.
func RunLoop(ctx context.Context, timerPeriod, framePeriod time.Duration, timer, frame func()) error {
	if timerPeriod <= 0 {
		timerPeriod = time.Millisecond
	}
	if framePeriod <= 0 {
		framePeriod = time.Second / 60
	}
	timerTick := time.NewTicker(timerPeriod)
	defer timerTick.Stop()
	frameTick := time.NewTicker(framePeriod)
	defer frameTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timerTick.C:
			if timer != nil {
				timer()
			}
		case <-frameTick.C:
			if frame != nil {
				frame()
			}
		}
	}
}
