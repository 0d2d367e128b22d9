// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Address is the base URL of the image store.
	Address string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// ClientSync holds the refresh timing of a session.
type ClientSync struct {
	// PollInterval is the period of scheduled refreshes and the countdown
	// reset value.
	PollInterval time.Duration
	// CountdownTick is the period of the countdown decrement. Validation
	// fixes it at one second; shorter ticks only come from configs built
	// without validation, as in tests.
	CountdownTick time.Duration
	// RefreshOrdering is [OrderingIssue] or [OrderingArrival].
	RefreshOrdering string
}

// PollIntervalSeconds returns the poll interval as whole seconds, the unit
// of the countdown.
func (s ClientSync) PollIntervalSeconds() int {
	return int(s.PollInterval / time.Second)
}

// DiscardStale reports whether results of superseded refreshes are dropped.
func (s ClientSync) DiscardStale() bool {
	return s.RefreshOrdering != OrderingArrival
}

// UploadLimits enumerates the local upload constraints.
type UploadLimits struct {
	MaxUploadBytes int64
	MinTitleLength int
	MaxTitleLength int
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. It is built once per session and passed explicitly to
// every component that needs it.
type ClientConfig struct {
	Adapter ClientAdapter
	Sync    ClientSync
	Upload  UploadLimits
	Log     ClientLog
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps it onto the
// client runtime shape, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// NewClientConfig maps a structured config onto the client view without
// validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			Address:        cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Sync: ClientSync{
			PollInterval:    cfg.Sync.PollInterval,
			CountdownTick:   cfg.Sync.CountdownTick,
			RefreshOrdering: cfg.Sync.RefreshOrdering,
		},
		Upload: UploadLimits{
			MaxUploadBytes: cfg.Upload.MaxBytes,
			MinTitleLength: cfg.Upload.MinTitleLength,
			MaxTitleLength: cfg.Upload.MaxTitleLength,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}
}

// DefaultClientConfig returns the client view of the built-in defaults.
func DefaultClientConfig() *ClientConfig {
	return NewClientConfig(defaultConfig())
}
