// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.Validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-HTTP address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates invalid refresh timing or ordering.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidUploadConfigs indicates inconsistent upload limits.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidServerConfigs indicates an unusable development store setup.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// ErrUnsupportedConfigFormat is returned when the config file extension is
// not .json, .toml, .yaml or .yml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
