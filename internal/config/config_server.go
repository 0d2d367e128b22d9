// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// ServerConfig is the configuration of the development image store.
type ServerConfig struct {
	Server Server
	Log    ClientLog
}

// GetServerConfig builds and validates the development store view from the
// merged structured configuration. fs should carry [RegisterServerFlags].
func GetServerConfig(fs *pflag.FlagSet) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: cfg.Server,
		Log:    ClientLog{Level: cfg.Log.Level, File: cfg.Log.File},
	}
	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ContentDir == "" {
		return fmt.Errorf("%w: empty content dir", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: max upload bytes must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
