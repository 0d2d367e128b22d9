// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig          = "config"
	FlagAddress         = "address"
	FlagRequestTimeout  = "request-timeout"
	FlagUserAgent       = "user-agent"
	FlagPollInterval    = "poll-interval"
	FlagCountdownTick   = "countdown-tick"
	FlagRefreshOrdering = "refresh-ordering"
	FlagMaxUploadBytes  = "max-upload-bytes"
	FlagMinTitleLength  = "min-title-length"
	FlagMaxTitleLength  = "max-title-length"
	FlagLogLevel        = "log-level"
	FlagLogFile         = "log-file"

	FlagHTTPAddress     = "http-address"
	FlagContentDir      = "content-dir"
	FlagServerMaxUpload = "server-max-upload-bytes"
	FlagShutdownTimeout = "shutdown-timeout"
)

// RegisterFlags adds every configuration flag to fs. Flags default to their
// zero value so that only flags set explicitly take part in merging.
//
// Flags:
//
//	-c/--config            config file path (.json, .toml, .yaml)
//	-a/--address           image store base URL
//	--request-timeout      per-request timeout (e.g. "30s")
//	--user-agent           User-Agent header value
//	--poll-interval        refresh period in whole seconds (e.g. "20s")
//	--countdown-tick       countdown decrement period; must be "1s" in a validated config
//	--refresh-ordering     "issue" or "arrival"
//	--max-upload-bytes     largest accepted upload
//	--min-title-length     minimum title length
//	--max-title-length     maximum title length
//	--log-level            debug, info, warn or error
//	--log-file             write logs to this file instead of stderr
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (.json, .toml, .yaml)")
	fs.StringP(FlagAddress, "a", "", "image store base URL (default "+DefaultAddress+")")
	fs.Duration(FlagRequestTimeout, 0, "per-request timeout (default 30s)")
	fs.String(FlagUserAgent, "", "User-Agent header value")
	fs.Duration(FlagPollInterval, 0, "refresh period (default 20s)")
	fs.Duration(FlagCountdownTick, 0, "countdown decrement period; validated configs require 1s")
	fs.String(FlagRefreshOrdering, "", `overlapping refresh policy: "issue" or "arrival" (default "issue")`)
	fs.Int64(FlagMaxUploadBytes, 0, "largest accepted upload in bytes (default 10 MiB)")
	fs.Int(FlagMinTitleLength, 0, "minimum title length (default 1)")
	fs.Int(FlagMaxTitleLength, 0, "maximum title length (default 80)")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error (default info)")
	fs.String(FlagLogFile, "", "write logs to this file instead of stderr")
}

// RegisterServerFlags adds the development store flags to fs together with
// the shared config, log-level and log-file flags.
//
// Flags:
//
//	-c/--config                 config file path (.json, .toml, .yaml)
//	-l/--http-address           listen address
//	--content-dir               directory holding images and metadata
//	--server-max-upload-bytes   largest accepted multipart body
//	--shutdown-timeout          graceful shutdown bound
//	--log-level                 debug, info, warn or error
//	--log-file                  write logs to this file instead of stderr
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (.json, .toml, .yaml)")
	fs.StringP(FlagHTTPAddress, "l", "", "listen address (default "+DefaultHTTPAddress+")")
	fs.String(FlagContentDir, "", "directory holding images and metadata (default "+DefaultContentDir+")")
	fs.Int64(FlagServerMaxUpload, 0, "largest accepted upload body in bytes (default 10000000)")
	fs.Duration(FlagShutdownTimeout, 0, "graceful shutdown bound (default 5s)")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error (default info)")
	fs.String(FlagLogFile, "", "write logs to this file instead of stderr")
}

// parseFlags builds a config layer from the flags explicitly set on fs.
// A nil fs yields an empty layer.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg, nil
	}

	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		if err := applyFlag(cfg, f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})

	return cfg, errors.Join(errs...)
}

func applyFlag(cfg *StructuredConfig, name, value string) error {
	var err error
	switch name {
	case FlagConfig:
		cfg.ConfigFilePath = value
	case FlagAddress:
		cfg.Adapter.Address = value
	case FlagRequestTimeout:
		cfg.Adapter.RequestTimeout, err = time.ParseDuration(value)
	case FlagUserAgent:
		cfg.Adapter.UserAgent = value
	case FlagPollInterval:
		cfg.Sync.PollInterval, err = time.ParseDuration(value)
	case FlagCountdownTick:
		cfg.Sync.CountdownTick, err = time.ParseDuration(value)
	case FlagRefreshOrdering:
		cfg.Sync.RefreshOrdering = value
	case FlagMaxUploadBytes:
		cfg.Upload.MaxBytes, err = strconv.ParseInt(value, 10, 64)
	case FlagMinTitleLength:
		cfg.Upload.MinTitleLength, err = strconv.Atoi(value)
	case FlagMaxTitleLength:
		cfg.Upload.MaxTitleLength, err = strconv.Atoi(value)
	case FlagLogLevel:
		cfg.Log.Level = value
	case FlagLogFile:
		cfg.Log.File = value
	case FlagHTTPAddress:
		cfg.Server.HTTPAddress = value
	case FlagContentDir:
		cfg.Server.ContentDir = value
	case FlagServerMaxUpload:
		cfg.Server.MaxUploadBytes, err = strconv.ParseInt(value, 10, 64)
	case FlagShutdownTimeout:
		cfg.Server.ShutdownTimeout, err = time.ParseDuration(value)
	}
	return err
}
