// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the image board client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (BOARD_ prefix, optional .env file)
//  3. Config file in JSON, TOML or YAML
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which returns the validated
// [ClientConfig] a session is built from.
package config
