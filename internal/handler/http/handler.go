// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/MKhiriev/go-image-board/internal/utils"
	"github.com/MKhiriev/go-image-board/models"
)

type Handler struct {
	images         store.ImageRepository
	maxUploadBytes int64
	buildInfo      models.AppBuildInfo
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(images store.ImageRepository, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		images:         images,
		maxUploadBytes: cfg.MaxUploadBytes,
		buildInfo:      buildInfo,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
