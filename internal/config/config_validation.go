// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Validate checks that the client configuration satisfies all runtime
// invariants before a session is built from it.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.Address)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: address %q is not an http(s) URL", ErrInvalidAdapterConfigs, cfg.Adapter.Address)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Sync.PollInterval < time.Second || cfg.Sync.PollInterval%time.Second != 0 {
		return fmt.Errorf("%w: poll interval must be a whole number of seconds, at least 1s", ErrInvalidSyncConfigs)
	}
	// the countdown counts seconds, so it has to drop by one per second
	if cfg.Sync.CountdownTick != time.Second {
		return fmt.Errorf("%w: countdown tick must be 1s", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.RefreshOrdering != OrderingIssue && cfg.Sync.RefreshOrdering != OrderingArrival {
		return fmt.Errorf("%w: unknown refresh ordering %q", ErrInvalidSyncConfigs, cfg.Sync.RefreshOrdering)
	}

	if cfg.Upload.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: max upload bytes must be positive", ErrInvalidUploadConfigs)
	}
	if cfg.Upload.MinTitleLength < 1 || cfg.Upload.MaxTitleLength < cfg.Upload.MinTitleLength {
		return fmt.Errorf("%w: title length bounds [%d, %d]", ErrInvalidUploadConfigs,
			cfg.Upload.MinTitleLength, cfg.Upload.MaxTitleLength)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
