// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/MKhiriev/go-image-board/internal/store"
)

// Session is the explicit context of one gallery session. Nothing in it is
// process-global: two sessions never share state.
type Session struct {
	Config   *config.ClientConfig
	Images   adapter.ImageStoreAdapter
	Store    *store.SyncStore
	Services *service.ClientServices
}

// NewSession builds the gateway, the sync store and the services described
// by cfg. Notifications of every service go to notifier.
func NewSession(cfg *config.ClientConfig, notifier service.Notifier, log *logger.Logger) (*Session, error) {
	images, err := adapter.NewHTTPImageStoreAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create image store adapter: %w", err)
	}

	syncStore := store.NewSyncStore(cfg.Sync.DiscardStale())

	log.Info().
		Str("store", cfg.Adapter.Address).
		Str("ordering", cfg.Sync.RefreshOrdering).
		Msg("session created")

	return &Session{
		Config:   cfg,
		Images:   images,
		Store:    syncStore,
		Services: service.NewClientServices(images, syncStore, cfg, notifier, log),
	}, nil
}
