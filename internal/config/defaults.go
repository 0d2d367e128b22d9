// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Refresh ordering policies accepted by [Sync.RefreshOrdering].
const (
	// OrderingIssue applies only the result of the most recently issued
	// refresh; older results arriving later are discarded.
	OrderingIssue = "issue"
	// OrderingArrival applies every result in arrival order.
	OrderingArrival = "arrival"
)

// Built-in defaults, used for every field no other layer sets.
const (
	DefaultAddress         = "http://localhost:8090"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUserAgent       = "go-image-board"
	DefaultPollInterval    = 20 * time.Second
	DefaultCountdownTick   = time.Second
	DefaultRefreshOrdering = OrderingIssue
	DefaultMaxUploadBytes  = 10 << 20
	DefaultMinTitleLength  = 1
	DefaultMaxTitleLength  = 80
	DefaultLogLevel        = "info"

	DefaultHTTPAddress           = ":8090"
	DefaultContentDir            = "./content"
	DefaultServerMaxUploadBytes  = 10_000_000
	DefaultServerShutdownTimeout = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Address:        DefaultAddress,
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Sync: Sync{
			PollInterval:    DefaultPollInterval,
			CountdownTick:   DefaultCountdownTick,
			RefreshOrdering: DefaultRefreshOrdering,
		},
		Upload: Upload{
			MaxBytes:       DefaultMaxUploadBytes,
			MinTitleLength: DefaultMinTitleLength,
			MaxTitleLength: DefaultMaxTitleLength,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ContentDir:      DefaultContentDir,
			MaxUploadBytes:  DefaultServerMaxUploadBytes,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
	}
}
