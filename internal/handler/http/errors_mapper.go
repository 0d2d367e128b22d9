// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/internal/store"
)

type errorResponse struct {
	status int
	body   string
}

var errorResponseMap = map[error]errorResponse{
	store.ErrInvalidFileName: {http.StatusBadRequest, app.MsgInvalidFilename},
	store.ErrImageNotFound:   {http.StatusNotFound, app.MsgFileNotFound},
}

// responseFromError maps a repository error to a status and plain-text
// body. Unknown errors become 500 with fallback as the body.
func responseFromError(err error, fallback string) (int, string) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.body
		}
	}
	return http.StatusInternalServerError, fallback
}
