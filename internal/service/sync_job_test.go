// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRefresher counts Refresh calls and optionally blocks each one.
type spyRefresher struct {
	calls    atomic.Int64
	inFlight atomic.Int64
	delay    time.Duration
}

func (s *spyRefresher) Refresh(ctx context.Context) error {
	s.calls.Add(1)
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
		}
	}
	return nil
}

// spyCountdown counts ticks.
type spyCountdown struct {
	ticks atomic.Int64
}

func (c *spyCountdown) Reset()       {}
func (c *spyCountdown) Tick() int    { c.ticks.Add(1); return 0 }
func (c *spyCountdown) Seconds() int { return 0 }

func newTestJob(refresher Refresher, countdown Countdown, poll, tick time.Duration) SyncJob {
	return NewSyncJob(refresher, countdown, config.ClientSync{
		PollInterval:  poll,
		CountdownTick: tick,
	}, logger.Nop())
}

// ── Start ────────────────────────────────────────────────────────────────────

func TestSyncJob_Start_RefreshesImmediately(t *testing.T) {
	spy := &spyRefresher{}
	job := newTestJob(spy, &spyCountdown{}, time.Hour, time.Hour)

	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)
}

func TestSyncJob_Start_PollsAndTicks(t *testing.T) {
	spy := &spyRefresher{}
	countdown := &spyCountdown{}
	job := newTestJob(spy, countdown, 10*time.Millisecond, 5*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	// one immediate refresh plus at least three scheduled ones
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(4))
	assert.GreaterOrEqual(t, countdown.ticks.Load(), int64(5))
}

func TestSyncJob_Start_SlowRefreshDoesNotDelayPolling(t *testing.T) {
	spy := &spyRefresher{delay: 40 * time.Millisecond}
	job := newTestJob(spy, &spyCountdown{}, 10*time.Millisecond, time.Hour)

	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Zero(t, spy.inFlight.Load(), "Stop must wait for in-flight refreshes")
}

func TestSyncJob_Start_RestartsRunningJob(t *testing.T) {
	spy := &spyRefresher{}
	job := newTestJob(spy, &spyCountdown{}, time.Hour, time.Hour)

	job.Start(context.Background())
	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, time.Millisecond)
}

func TestSyncJob_ParentContextCancelStopsJob(t *testing.T) {
	spy := &spyRefresher{}
	countdown := &spyCountdown{}
	job := newTestJob(spy, countdown, 5*time.Millisecond, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	refreshes, ticks := spy.calls.Load(), countdown.ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, refreshes, spy.calls.Load())
	assert.Equal(t, ticks, countdown.ticks.Load())
}

// ── Stop ─────────────────────────────────────────────────────────────────────

func TestSyncJob_Stop_CancelsBothTimers(t *testing.T) {
	spy := &spyRefresher{}
	countdown := &spyCountdown{}
	job := newTestJob(spy, countdown, 5*time.Millisecond, 5*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	refreshes, ticks := spy.calls.Load(), countdown.ticks.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, refreshes, spy.calls.Load(), "poll timer must be stopped")
	assert.Equal(t, ticks, countdown.ticks.Load(), "countdown ticker must be stopped")
}

func TestSyncJob_Stop_WithoutStart(t *testing.T) {
	job := newTestJob(&spyRefresher{}, &spyCountdown{}, time.Second, time.Second)

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

// ── Countdown through the job ────────────────────────────────────────────────

func TestSyncJob_CountdownDecrementsBetweenRefreshes(t *testing.T) {
	syncStore := store.NewSyncStore(true)
	countdown := NewCountdown(syncStore, 5)
	var refreshed atomic.Bool
	refresher := RefresherFunc(func(context.Context) error {
		countdown.Reset()
		refreshed.Store(true)
		return nil
	})
	job := newTestJob(refresher, countdown, time.Hour, 5*time.Millisecond)

	job.Start(context.Background())
	require.Eventually(t, func() bool {
		return refreshed.Load() && syncStore.Countdown() == 0
	}, time.Second, time.Millisecond)
	job.Stop()

	assert.Equal(t, 0, syncStore.Snapshot().SecondsUntilNextRefresh)
}
