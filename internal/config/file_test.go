// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedFileConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{Address: "http://store:8090", RequestTimeout: 10 * time.Second, UserAgent: "file"},
		Sync:    Sync{PollInterval: 15 * time.Second, CountdownTick: time.Second, RefreshOrdering: "arrival"},
		Upload:  Upload{MaxBytes: 4096, MinTitleLength: 2, MaxTitleLength: 50},
		Log:     Log{Level: "debug", File: "board.log"},
	}
}

func TestParseFile_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "json",
			file: "board.json",
			body: `{
				"adapter": {"address": "http://store:8090", "request_timeout": "10s", "user_agent": "file"},
				"sync": {"poll_interval": "15s", "countdown_tick": "1s", "refresh_ordering": "arrival"},
				"upload": {"max_bytes": 4096, "min_title_length": 2, "max_title_length": 50},
				"log": {"level": "debug", "file": "board.log"}
			}`,
		},
		{
			name: "toml",
			file: "board.toml",
			body: `
[adapter]
address = "http://store:8090"
request_timeout = "10s"
user_agent = "file"

[sync]
poll_interval = "15s"
countdown_tick = "1s"
refresh_ordering = "arrival"

[upload]
max_bytes = 4096
min_title_length = 2
max_title_length = 50

[log]
level = "debug"
file = "board.log"
`,
		},
		{
			name: "yaml",
			file: "board.yml",
			body: `
adapter:
  address: http://store:8090
  request_timeout: 10s
  user_agent: file
sync:
  poll_interval: 15s
  countdown_tick: 1s
  refresh_ordering: arrival
upload:
  max_bytes: 4096
  min_title_length: 2
  max_title_length: 50
log:
  level: debug
  file: board.log
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeTempConfig(t, tt.file, tt.body)

			cfg, err := parseFile(p)

			require.NoError(t, err)
			assert.Equal(t, expectedFileConfig(), cfg)
		})
	}
}

func TestParseFile_EmptyYAML(t *testing.T) {
	p := writeTempConfig(t, "empty.yaml", "")

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	p := writeTempConfig(t, "board.ini", "address=x")

	cfg, err := parseFile(p)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}

func TestParseFile_FileNotFound(t *testing.T) {
	cfg, err := parseFile("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_InvalidJSON(t *testing.T) {
	p := writeTempConfig(t, "bad.json", `{ this is not json }`)

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding config file")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{name: "string", input: `"1m30s"`, expected: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "bad string", input: `"forever"`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(b))
}
