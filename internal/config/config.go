// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-image-board client. It aggregates all sub-configurations and is
// populated by merging command-line flags, environment variables, an
// optional config file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with BOARD_.
type StructuredConfig struct {
	// Adapter holds the remote image store address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the polling and countdown timing.
	Sync Sync `envPrefix:"SYNC_"`

	// Upload holds the client-side upload limits.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds settings of the development image store.
	Server Server `envPrefix:"SERVER_"`

	// ConfigFilePath is the optional path to a .json, .toml or .yaml file.
	// Populated via the BOARD_CONFIG environment variable or the -c / --config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// Address is the base URL of the remote image store
	// (e.g. "http://localhost:8090").
	// Env: BOARD_ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single request to the store.
	// Env: BOARD_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: BOARD_ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Sync holds the refresh scheduling settings.
type Sync struct {
	// PollInterval is the period of the scheduled refresh and the value the
	// countdown is reset to.
	// Env: BOARD_SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// CountdownTick is the period of the countdown decrement.
	// Env: BOARD_SYNC_COUNTDOWN_TICK
	CountdownTick time.Duration `env:"COUNTDOWN_TICK"`

	// RefreshOrdering selects how overlapping refresh results are applied:
	// "issue" or "arrival".
	// Env: BOARD_SYNC_REFRESH_ORDERING
	RefreshOrdering string `env:"REFRESH_ORDERING"`
}

// Upload holds the local upload validation limits.
type Upload struct {
	// MaxBytes is the largest accepted file size.
	// Env: BOARD_UPLOAD_MAX_BYTES
	MaxBytes int64 `env:"MAX_BYTES"`

	// MinTitleLength is the minimum title length in characters.
	// Env: BOARD_UPLOAD_MIN_TITLE_LENGTH
	MinTitleLength int `env:"MIN_TITLE_LENGTH"`

	// MaxTitleLength is the maximum title length in characters.
	// Env: BOARD_UPLOAD_MAX_TITLE_LENGTH
	MaxTitleLength int `env:"MAX_TITLE_LENGTH"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: BOARD_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File redirects logs to a file. Empty means stderr.
	// Env: BOARD_LOG_FILE
	File string `env:"FILE"`
}

// Server holds settings of the development image store.
type Server struct {
	// HTTPAddress is the listen address (e.g. ":8090").
	// Env: BOARD_SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// ContentDir holds the stored images and the metadata file.
	// Env: BOARD_SERVER_CONTENT_DIR
	ContentDir string `env:"CONTENT_DIR"`

	// MaxUploadBytes caps the multipart body of an upload.
	// Env: BOARD_SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: BOARD_SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (first source wins per field):
//  1. Command-line flags registered on fs via [RegisterFlags]
//  2. Environment variables (after loading an optional .env file)
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil, in which case the flag layer is empty.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}
