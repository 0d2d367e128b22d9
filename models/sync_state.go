// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the client's snapshot of the remote image set.
//
// Records is replaced wholesale on every successful refresh and kept as-is
// on failure. ServerReachable reflects only the most recently applied
// refresh. SecondsUntilNextRefresh counts down to the next scheduled refresh
// and is reset when any refresh attempt begins.
type SyncState struct {
	Records                 []ImageRecord
	ServerReachable         bool
	SecondsUntilNextRefresh int

	// LastRefreshAt is when the most recent result was applied.
	LastRefreshAt time.Time
	// LastError is the error of the last applied failure, nil after success.
	LastError error
	// ConsecutiveFailures counts applied failures since the last success.
	ConsecutiveFailures int
	// AppliedSequence is the sequence number of the last applied refresh.
	AppliedSequence uint64
}

// Clone returns a copy that shares no mutable memory with s.
func (s SyncState) Clone() SyncState {
	dup := s
	dup.Records = CloneRecords(s.Records)
	return dup
}
