// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote image store.
//
// The primary abstraction is [ImageStoreAdapter], the only component in the
// client that touches the network. The package ships an HTTP/REST
// implementation ([NewHTTPImageStoreAdapter]).
//
// Every failure is classified as [ErrTransport] or [ErrMalformedResponse].
// Non-2xx responses are returned as [*StatusError], which additionally
// matches a per-status sentinel (e.g. [ErrNotFound] for 404) so that callers
// can use [errors.Is] and [errors.As] for transport-agnostic handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-image-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_store_adapter_mock.go -package=mock

// ImageStoreAdapter defines communication with the remote image store.
// Implementations hold no client state and validate nothing: payload rules
// are enforced by the service layer before an adapter is called.
type ImageStoreAdapter interface {
	// List reads the metadata of every stored image. It succeeds only if the
	// transport completes with a 2xx status and the body decodes into a JSON
	// array of well-formed records.
	List(ctx context.Context) ([]models.ImageRecord, error)

	// FetchImage downloads the binary of the image identified by file.
	FetchImage(ctx context.Context, file string) ([]byte, error)

	// Upload stores a new image with its title and creation date.
	Upload(ctx context.Context, payload models.UploadPayload) error

	// Delete removes the image identified by file and returns the store's
	// plain-text confirmation message. A non-2xx response is returned as a
	// [*StatusError] carrying the status code.
	Delete(ctx context.Context, file string) (string, error)

	// Health checks the store's liveness endpoint.
	Health(ctx context.Context) error

	// ImageURL returns the absolute URL from which file can be fetched.
	ImageURL(file string) string
}
