// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-image-board/models"
)

// SyncStore holds the session's single [models.SyncState]. Writers are
// serialised and readers get deep copies, so a reader never observes a
// partially applied refresh.
type SyncStore struct {
	mu    sync.RWMutex
	state models.SyncState

	discardStale bool
	now          func() time.Time
}

// NewSyncStore returns an empty, unreachable store with the countdown at 0.
// When discardStale is set, results tagged with a sequence older than the
// last applied one are dropped.
func NewSyncStore(discardStale bool) *SyncStore {
	return &SyncStore{
		state:        models.SyncState{Records: []models.ImageRecord{}},
		discardStale: discardStale,
		now:          time.Now,
	}
}

// ResetCountdown sets the countdown to seconds.
func (s *SyncStore) ResetCountdown(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SecondsUntilNextRefresh = max(seconds, 0)
}

// TickCountdown decrements the countdown by one, never below zero, and
// returns the new value.
func (s *SyncStore) TickCountdown() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SecondsUntilNextRefresh > 0 {
		s.state.SecondsUntilNextRefresh--
	}
	return s.state.SecondsUntilNextRefresh
}

// Countdown returns the current countdown value.
func (s *SyncStore) Countdown() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.SecondsUntilNextRefresh
}

// ApplySuccess replaces the records wholesale and marks the store reachable.
// It reports whether the result was applied.
func (s *SyncStore) ApplySuccess(seq uint64, records []models.ImageRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStale(seq) {
		return false
	}

	replacement := models.CloneRecords(records)
	if replacement == nil {
		replacement = []models.ImageRecord{}
	}

	s.state.Records = replacement
	s.state.ServerReachable = true
	s.state.LastError = nil
	s.state.ConsecutiveFailures = 0
	s.state.LastRefreshAt = s.now()
	s.state.AppliedSequence = seq
	return true
}

// ApplyFailure marks the store unreachable and keeps the last known records.
// It reports whether the result was applied.
func (s *SyncStore) ApplyFailure(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStale(seq) {
		return false
	}

	s.state.ServerReachable = false
	s.state.LastError = err
	s.state.ConsecutiveFailures++
	s.state.LastRefreshAt = s.now()
	s.state.AppliedSequence = seq
	return true
}

// Snapshot returns a copy of the current state.
func (s *SyncStore) Snapshot() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

func (s *SyncStore) isStale(seq uint64) bool {
	return s.discardStale && seq < s.state.AppliedSequence
}
