// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/service"
)

type App struct {
	job service.SyncJob
	ui  UI

	logger *logger.Logger
}

func NewApp(session *Session, ui UI, log *logger.Logger) *App {
	return &App{
		job:    session.Services.SyncJob,
		ui:     ui,
		logger: log,
	}
}

// Run starts the sync job, runs the UI and stops the job when the UI
// returns, whatever the outcome.
func (a *App) Run(ctx context.Context) error {
	a.job.Start(ctx)
	defer a.job.Stop()

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("ui exited with error")
		return err
	}

	a.logger.Info().Msg("session finished")
	return nil
}
