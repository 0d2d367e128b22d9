// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds state that outlives a single call.
//
// On the client side [SyncStore] is the session's one SyncState. The
// development image store keeps its images behind [ImageRepository].
package store

import (
	"context"

	"github.com/MKhiriev/go-image-board/models"
)

// ImageRepository persists image binaries together with their metadata.
type ImageRepository interface {
	// List returns the metadata of every stored image in insertion order.
	List(ctx context.Context) ([]models.ImageRecord, error)

	// Open returns the binary of the image stored under file.
	Open(ctx context.Context, file string) ([]byte, error)

	// Save stores an image under its blob name, replacing an image with the
	// same name. An empty title is stored as absent and a zero creation date
	// defaults to now.
	Save(ctx context.Context, image models.UploadPayload) (models.ImageRecord, error)

	// Delete removes the image stored under file and its metadata.
	Delete(ctx context.Context, file string) error
}
