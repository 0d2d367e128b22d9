// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/validators"
	"github.com/MKhiriev/go-image-board/models"
)

type mutationService struct {
	adapter   adapter.ImageStoreAdapter
	validator validators.Validator
	refresher Refresher
	notifier  Notifier

	logger *logger.Logger
}

// NewMutationService returns the upload and delete actions. Neither action
// writes records; both converge through refresher after a successful write.
func NewMutationService(
	imageStore adapter.ImageStoreAdapter,
	validator validators.Validator,
	refresher Refresher,
	notifier Notifier,
	log *logger.Logger,
) MutationService {
	return &mutationService{
		adapter:   imageStore,
		validator: validator,
		refresher: refresher,
		notifier:  notifier,
		logger:    log,
	}
}

// Upload implements [MutationService]. A failed upload is notified and
// returned without a retry or a refresh.
func (m *mutationService) Upload(ctx context.Context, payload models.UploadPayload) error {
	if err := m.validator.Validate(ctx, payload); err != nil {
		m.logger.Info().Err(err).Str("file", payload.File.Name).Msg("upload rejected locally")
		m.notifier.Error(err.Error())
		return err
	}

	if err := m.adapter.Upload(ctx, payload); err != nil {
		m.logger.Err(err).Str("file", payload.File.Name).Msg("upload failed")
		m.notifier.Error(app.MsgUploadFailed)
		return fmt.Errorf("upload %s: %w", payload.File.Name, mapAdapterError(err))
	}

	m.logger.Info().
		Str("file", payload.File.Name).
		Int64("size", payload.File.Size()).
		Msg("upload succeeded")
	m.notifier.Success(app.MsgUploaded)

	// a refresh failure is notified by the engine; the upload itself stands
	_ = m.refresher.Refresh(ctx)
	return nil
}

// RequestDelete implements [MutationService].
func (m *mutationService) RequestDelete(record models.ImageRecord) *DeleteConfirmation {
	return &DeleteConfirmation{record: record, mutations: m}
}

// DeleteConfirmation is the pending second phase of a delete. It can be
// settled once, by Confirm or Cancel; later calls do nothing.
type DeleteConfirmation struct {
	record    models.ImageRecord
	mutations *mutationService

	mu     sync.Mutex
	closed bool
}

// Record returns the record the confirmation was opened for.
func (c *DeleteConfirmation) Record() models.ImageRecord {
	return c.record
}

// Prompt returns the question together with the record's name.
func (c *DeleteConfirmation) Prompt() string {
	return fmt.Sprintf("%s\n%s", app.MsgConfirmDelete, c.record.Name())
}

// Closed reports whether the confirmation was already settled.
func (c *DeleteConfirmation) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

// Cancel closes the confirmation without contacting the store.
func (c *DeleteConfirmation) Cancel() {
	c.close()
}

// Confirm sends the delete and closes the confirmation whatever the
// outcome. On success the store's message is notified and returned and the
// view is refreshed once. On failure a generic message is notified and the
// records are left as they are until the next refresh. A closed
// confirmation returns [ErrConfirmationClosed] without a network call.
func (c *DeleteConfirmation) Confirm(ctx context.Context) (string, error) {
	if !c.close() {
		return "", ErrConfirmationClosed
	}

	m := c.mutations
	file := c.record.File

	msg, err := m.adapter.Delete(ctx, file)
	if err != nil {
		m.logger.Err(err).Str("file", file).Msg("delete failed")
		m.notifier.Error(app.MsgDeleteFailed)
		return "", fmt.Errorf("delete %s: %w", file, mapAdapterError(err))
	}

	m.logger.Info().Str("file", file).Str("reply", msg).Msg("delete succeeded")
	m.notifier.Success(msg)

	_ = m.refresher.Refresh(ctx)
	return msg, nil
}

// close marks the confirmation settled and reports whether this call did it.
func (c *DeleteConfirmation) close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	c.closed = true
	return true
}
