// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, withLogging)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.With(withGZip).Get("/imageData", h.listImages)

	router.Post("/image", h.uploadImage)
	router.Get("/image/{file}", h.getImage)
	router.Delete("/image/{file}", h.deleteImage)

	return router
}
