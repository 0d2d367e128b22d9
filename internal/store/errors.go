// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrImageNotFound is returned when no stored image has the requested
	// file name.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidFileName is returned for names that are empty or would
	// escape the content directory.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level storage errors. These wrap the underlying filesystem or
// encoding failure.
var (
	// ErrReadingMetadata is returned when the metadata file cannot be read
	// or decoded.
	ErrReadingMetadata = errors.New("error reading image metadata")

	// ErrWritingMetadata is returned when the metadata file cannot be
	// encoded or written.
	ErrWritingMetadata = errors.New("error writing image metadata")

	// ErrWritingImage is returned when an image file cannot be written or
	// removed.
	ErrWritingImage = errors.New("error writing image file")
)
