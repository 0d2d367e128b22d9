// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/MKhiriev/go-image-board/models"
)

type syncEngine struct {
	adapter   adapter.ImageStoreAdapter
	store     *store.SyncStore
	countdown Countdown
	notifier  Notifier

	seq atomic.Uint64

	logger *logger.Logger
}

// NewSyncEngine returns the engine that writes records and reachability
// into syncStore. Every refresh resets countdown before the store is
// contacted.
func NewSyncEngine(
	imageStore adapter.ImageStoreAdapter,
	syncStore *store.SyncStore,
	countdown Countdown,
	notifier Notifier,
	log *logger.Logger,
) SyncEngine {
	return &syncEngine{
		adapter:   imageStore,
		store:     syncStore,
		countdown: countdown,
		notifier:  notifier,
		logger:    log,
	}
}

// Refresh implements [Refresher]. Overlapping calls are allowed; each one
// takes the next sequence number and the store decides whether its result
// still applies. A call abandoned because ctx ended leaves the state as it
// was.
func (e *syncEngine) Refresh(ctx context.Context) error {
	seq := e.seq.Add(1)
	e.countdown.Reset()

	started := time.Now()
	records, err := e.adapter.List(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			e.logger.Debug().Uint64("seq", seq).Msg("refresh abandoned")
			return fmt.Errorf("refresh: %w", err)
		}

		applied := e.store.ApplyFailure(seq, err)
		e.logger.Warn().
			Err(err).
			Uint64("seq", seq).
			Bool("applied", applied).
			Dur("took", time.Since(started)).
			Msg("refresh failed")
		if applied {
			e.notifier.Error(app.MsgFetchFailed)
		}
		return fmt.Errorf("refresh: %w", err)
	}

	applied := e.store.ApplySuccess(seq, records)
	e.logger.Debug().
		Uint64("seq", seq).
		Bool("applied", applied).
		Int("count", len(records)).
		Dur("took", time.Since(started)).
		Msg("refresh succeeded")

	return nil
}

func (e *syncEngine) Snapshot() models.SyncState {
	return e.store.Snapshot()
}

func (e *syncEngine) DisplayRecords() []models.ImageRecord {
	return models.SortForDisplay(e.store.Snapshot().Records)
}
