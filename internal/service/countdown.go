// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-image-board/internal/store"

type countdown struct {
	store    *store.SyncStore
	interval int
}

// NewCountdown returns a countdown over syncStore's counter that resets to
// intervalSeconds.
func NewCountdown(syncStore *store.SyncStore, intervalSeconds int) Countdown {
	return &countdown{store: syncStore, interval: max(intervalSeconds, 0)}
}

func (c *countdown) Reset() {
	c.store.ResetCountdown(c.interval)
}

func (c *countdown) Tick() int {
	return c.store.TickCountdown()
}

func (c *countdown) Seconds() int {
	return c.store.Countdown()
}
