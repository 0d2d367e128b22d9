// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape shared by the JSON, TOML and YAML formats.
type fileConfig struct {
	Adapter struct {
		Address        string   `json:"address" toml:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
		UserAgent      string   `json:"user_agent" toml:"user_agent" yaml:"user_agent"`
	} `json:"adapter" toml:"adapter" yaml:"adapter"`

	Sync struct {
		PollInterval    Duration `json:"poll_interval" toml:"poll_interval" yaml:"poll_interval"`
		CountdownTick   Duration `json:"countdown_tick" toml:"countdown_tick" yaml:"countdown_tick"`
		RefreshOrdering string   `json:"refresh_ordering" toml:"refresh_ordering" yaml:"refresh_ordering"`
	} `json:"sync" toml:"sync" yaml:"sync"`

	Upload struct {
		MaxBytes       int64 `json:"max_bytes" toml:"max_bytes" yaml:"max_bytes"`
		MinTitleLength int   `json:"min_title_length" toml:"min_title_length" yaml:"min_title_length"`
		MaxTitleLength int   `json:"max_title_length" toml:"max_title_length" yaml:"max_title_length"`
	} `json:"upload" toml:"upload" yaml:"upload"`

	Log struct {
		Level string `json:"level" toml:"level" yaml:"level"`
		File  string `json:"file" toml:"file" yaml:"file"`
	} `json:"log" toml:"log" yaml:"log"`

	Server struct {
		HTTPAddress     string   `json:"http_address" toml:"http_address" yaml:"http_address"`
		ContentDir      string   `json:"content_dir" toml:"content_dir" yaml:"content_dir"`
		MaxUploadBytes  int64    `json:"max_upload_bytes" toml:"max_upload_bytes" yaml:"max_upload_bytes"`
		ShutdownTimeout Duration `json:"shutdown_timeout" toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" toml:"server" yaml:"server"`
}

// parseFile reads a config file, picking the decoder from its extension.
func parseFile(path string) (*StructuredConfig, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg fileConfig
	if err := decode(file, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fileCfg.toStructured(), nil
}

func decoderFor(path string) (func(io.Reader, *fileConfig) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return func(r io.Reader, cfg *fileConfig) error {
			return json.NewDecoder(r).Decode(cfg)
		}, nil
	case ".toml":
		return func(r io.Reader, cfg *fileConfig) error {
			return toml.NewDecoder(r).Decode(cfg)
		}, nil
	case ".yaml", ".yml":
		return func(r io.Reader, cfg *fileConfig) error {
			err := yaml.NewDecoder(r).Decode(cfg)
			if err == io.EOF {
				return nil
			}
			return err
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}
}

func (f *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Address:        f.Adapter.Address,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			UserAgent:      f.Adapter.UserAgent,
		},
		Sync: Sync{
			PollInterval:    time.Duration(f.Sync.PollInterval),
			CountdownTick:   time.Duration(f.Sync.CountdownTick),
			RefreshOrdering: f.Sync.RefreshOrdering,
		},
		Upload: Upload{
			MaxBytes:       f.Upload.MaxBytes,
			MinTitleLength: f.Upload.MinTitleLength,
			MaxTitleLength: f.Upload.MaxTitleLength,
		},
		Log: Log{
			Level: f.Log.Level,
			File:  f.Log.File,
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			ContentDir:      f.Server.ContentDir,
			MaxUploadBytes:  f.Server.MaxUploadBytes,
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON, TOML and YAML files. JSON numbers are taken as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
