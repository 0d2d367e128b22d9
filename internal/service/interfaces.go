// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's synchronisation and availability
// model on top of the remote image store.
//
// The [SyncEngine] owns the single refresh entry point and is the only
// writer of records and reachability. The [Countdown] only moves the
// seconds-until-next-refresh counter. The [MutationService] performs one
// remote write per user action and converges the view through a refresh;
// it never edits records itself. A [SyncJob] schedules the poll timer and
// the countdown ticker and tears both down together.
package service

import (
	"context"

	"github.com/MKhiriev/go-image-board/models"
)

// SyncEngine owns the authoritative snapshot of the image set.
type SyncEngine interface {
	Refresher

	// Snapshot returns an independent copy of the current sync state.
	Snapshot() models.SyncState

	// DisplayRecords returns the current records ordered for display:
	// creation date descending, ties kept in stored order.
	DisplayRecords() []models.ImageRecord
}

// Countdown is the ticking seconds-until-next-refresh counter.
type Countdown interface {
	// Reset sets the counter to the full poll interval.
	Reset()

	// Tick decrements the counter by one, floored at zero, and returns the
	// new value.
	Tick() int

	// Seconds returns the current value.
	Seconds() int
}

// MutationService runs the user's upload and delete actions.
type MutationService interface {
	// Upload validates payload locally and, only if it passes, sends it to
	// the store. A validation failure is returned as a
	// [*validators.ValidationError] and nothing is sent. After a successful
	// upload the view is refreshed once.
	Upload(ctx context.Context, payload models.UploadPayload) error

	// RequestDelete opens the confirmation phase of a delete. No network
	// call is made until the returned confirmation is confirmed.
	RequestDelete(record models.ImageRecord) *DeleteConfirmation
}

// SyncJob schedules the periodic refresh and the countdown ticker for the
// lifetime of a session.
type SyncJob interface {
	// Start refreshes immediately, then keeps refreshing on the poll
	// interval while ticking the countdown. Any running job is stopped
	// first.
	Start(ctx context.Context)

	// Stop cancels both timers and blocks until every in-flight call
	// started by the job has returned.
	Stop()
}
