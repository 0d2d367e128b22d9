// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-image-board/internal/config"
)

// Storages groups the repositories of the development image store.
type Storages struct {
	Images ImageRepository
}

// NewStorages opens the repositories described by cfg.
func NewStorages(cfg config.Server) (*Storages, error) {
	images, err := NewFileImageRepository(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("error creating image repository: %w", err)
	}

	return &Storages{Images: images}, nil
}
