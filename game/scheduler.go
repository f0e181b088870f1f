package game

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval is one frame at 60 Hz
const DefaultFrameInterval = time.Second / 60

// Loop calls a step function once per tick until it is stopped.
// Steps never overlap: the next tick is only taken after the step returns,
// and ticks missed meanwhile are dropped by the ticker.
type Loop struct {
	interval time.Duration
	step     func()
	stopped  atomic.Bool
	frames   atomic.Uint64
}

// NewLoop creates a loop; a non-positive interval uses DefaultFrameInterval
func NewLoop(interval time.Duration, step func()) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{interval: interval, step: step}
}

// Run blocks until Stop is called or ctx is done.
// It returns ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		if l.stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if l.stopped.Load() {
			return nil
		}
		l.step()
		l.frames.Add(1)
	}
}

// Stop ends the loop before its next step. It is safe to call from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Frames returns the number of completed steps
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
