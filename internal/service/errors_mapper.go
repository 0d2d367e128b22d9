// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/app"
)

// mapAdapterError adds the matching service error to a store rejection.
// The adapter error stays in the chain, so both match with errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var mapped error
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		mapped = ErrImageGone
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		mapped = ErrRejectedAsTooLarge
	case errors.Is(err, adapter.ErrBadRequest):
		switch extractBody(err) {
		case app.MsgInvalidFilename:
			mapped = ErrRejectedFileName
		case app.MsgUploadTooLarge:
			mapped = ErrRejectedAsTooLarge
		default:
			mapped = ErrRejectedUpload
		}
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody returns the trimmed response body of a status error.
func extractBody(err error) string {
	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return ""
	}
	return strings.TrimSpace(statusErr.Body)
}
