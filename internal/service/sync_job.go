// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/workers"
)

type syncJob struct {
	refresher Refresher
	countdown Countdown

	pollInterval  time.Duration
	countdownTick time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a job that drives refresher and countdown with the
// intervals from syncCfg. The job is idle until Start is called.
func NewSyncJob(refresher Refresher, countdown Countdown, syncCfg config.ClientSync, log *logger.Logger) SyncJob {
	return &syncJob{
		refresher:     refresher,
		countdown:     countdown,
		pollInterval:  syncCfg.PollInterval,
		countdownTick: syncCfg.CountdownTick,
		logger:        log,
	}
}

// Start implements [SyncJob]. The initial refresh, the poll timer and the
// countdown ticker run as one worker group. A slow refresh does not hold
// back the next poll tick, so overlapping refreshes are possible and are
// settled by the store's ordering policy. The group exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	group := workers.NewWorkers(
		workers.WorkerFunc(func(ctx context.Context) error {
			j.refresh(ctx)
			return nil
		}),
		workers.NewTickerWorker(j.pollInterval, j.refresh).WithOverlap(),
		workers.NewTickerWorker(j.countdownTick, func(context.Context) {
			j.countdown.Tick()
		}),
	)

	j.logger.Info().
		Dur("poll_interval", j.pollInterval).
		Dur("countdown_tick", j.countdownTick).
		Msg("sync job started")

	go func() {
		defer j.wg.Done()
		if err := group.Run(jobCtx); err != nil {
			j.logger.Err(err).Msg("sync job stopped with error")
			return
		}
		j.logger.Info().Msg("sync job stopped")
	}()
}

// Stop implements [SyncJob]. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh errors are already notified by the engine.
func (j *syncJob) refresh(ctx context.Context) {
	_ = j.refresher.Refresh(ctx)
}
