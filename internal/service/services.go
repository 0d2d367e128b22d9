// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/MKhiriev/go-image-board/internal/validators"
)

// ClientServices groups the services of one client session.
type ClientServices struct {
	SyncEngine      SyncEngine
	Countdown       Countdown
	MutationService MutationService
	SyncJob         SyncJob
}

// NewClientServices wires the services of a session around syncStore.
func NewClientServices(
	imageStore adapter.ImageStoreAdapter,
	syncStore *store.SyncStore,
	cfg *config.ClientConfig,
	notifier Notifier,
	log *logger.Logger,
) *ClientServices {
	countdown := NewCountdown(syncStore, cfg.Sync.PollIntervalSeconds())
	engine := NewSyncEngine(imageStore, syncStore, countdown, notifier, log)
	mutations := NewMutationService(imageStore, validators.NewUploadValidator(cfg.Upload), engine, notifier, log)

	return &ClientServices{
		SyncEngine:      engine,
		Countdown:       countdown,
		MutationService: mutations,
		SyncJob:         NewSyncJob(engine, countdown, cfg.Sync, log),
	}
}
