// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_AllFlags verifies every registered flag maps to its field.
func TestParseFlags_AllFlags(t *testing.T) {
	fs := newFlagSet(t,
		"-c", "board.json",
		"-a", "http://images:9000",
		"--request-timeout", "3s",
		"--user-agent", "cli",
		"--poll-interval", "10s",
		"--countdown-tick", "250ms",
		"--refresh-ordering", "arrival",
		"--max-upload-bytes", "1024",
		"--min-title-length", "3",
		"--max-title-length", "12",
		"--log-level", "warn",
		"--log-file", "board.log",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		Adapter: Adapter{Address: "http://images:9000", RequestTimeout: 3 * time.Second, UserAgent: "cli"},
		Sync:    Sync{PollInterval: 10 * time.Second, CountdownTick: 250 * time.Millisecond, RefreshOrdering: "arrival"},
		Upload:  Upload{MaxBytes: 1024, MinTitleLength: 3, MaxTitleLength: 12},
		Log:     Log{Level: "warn", File: "board.log"},

		ConfigFilePath: "board.json",
	}, cfg)
}

// TestParseFlags_OnlyChanged verifies that unset flags leave fields zero so
// lower layers can fill them.
func TestParseFlags_OnlyChanged(t *testing.T) {
	fs := newFlagSet(t, "--poll-interval", "5s")

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{Sync: Sync{PollInterval: 5 * time.Second}}, cfg)
}

func TestApplyFlag(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		value       string
		expectError bool
	}{
		{name: "valid duration", flag: FlagPollInterval, value: "1m"},
		{name: "invalid duration", flag: FlagRequestTimeout, value: "fast", expectError: true},
		{name: "valid int", flag: FlagMaxTitleLength, value: "80"},
		{name: "invalid int", flag: FlagMinTitleLength, value: "one", expectError: true},
		{name: "invalid int64", flag: FlagMaxUploadBytes, value: "10MiB", expectError: true},
		{name: "unknown flag ignored", flag: "verbose", value: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyFlag(&StructuredConfig{}, tt.flag, tt.value)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
