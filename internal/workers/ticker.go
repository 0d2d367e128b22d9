// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// defaultTickerInterval is used when a non-positive interval is given.
const defaultTickerInterval = time.Second

// TickerWorker calls a function on a fixed period until its context ends.
type TickerWorker struct {
	interval time.Duration
	fn       func(ctx context.Context)

	overlap bool
}

// NewTickerWorker returns a worker that calls fn every interval. The first
// call happens one interval after Run starts. A non-positive interval
// defaults to one second.
func NewTickerWorker(interval time.Duration, fn func(ctx context.Context)) *TickerWorker {
	if interval <= 0 {
		interval = defaultTickerInterval
	}
	return &TickerWorker{interval: interval, fn: fn}
}

// WithOverlap makes every tick call fn in its own goroutine, so a slow call
// does not delay the following ticks. Run still waits for all calls to
// return before it does.
func (t *TickerWorker) WithOverlap() *TickerWorker {
	t.overlap = true
	return t
}

// Interval returns the tick period.
func (t *TickerWorker) Interval() time.Duration {
	return t.interval
}

// Run implements [Worker]. It returns nil once ctx is done.
func (t *TickerWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !t.overlap {
				t.fn(ctx)
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				t.fn(ctx)
			}()
		}
	}
}
