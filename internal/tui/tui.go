// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the gallery UI.
type Options struct {
	BuildInfo models.AppBuildInfo
	// StoreURL is shown in the about window.
	StoreURL string
	// MaxTitleLength bounds the title input.
	MaxTitleLength int
}

type TUI struct {
	services *service.ClientServices
	images   adapter.ImageStoreAdapter
	toaster  *Toaster
	opts     Options

	logger *logger.Logger
}

func New(services *service.ClientServices, images adapter.ImageStoreAdapter, toaster *Toaster, opts Options, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		images:   images,
		toaster:  toaster,
		opts:     opts,
		logger:   log,
	}
}

func (t *TUI) newModel(ctx context.Context) galleryModel {
	m := galleryModel{
		ctx:       ctx,
		services:  t.services,
		images:    t.images,
		toaster:   t.toaster,
		buildInfo: t.opts.BuildInfo,
		storeURL:  t.opts.StoreURL,
		maxTitle:  t.opts.MaxTitleLength,
		copyText:  clipboard.WriteAll,
		now:       time.Now,
	}
	m.syncSnapshot()
	return m
}

// Run shows the gallery until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting gallery ui")

	_, err := tea.NewProgram(t.newModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
