// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli builds the command tree of the image board client.
//
// The root command runs the interactive gallery. The subcommands list,
// upload, delete, fetch and status run a single action against the store
// through the same session services and exit. Every command shares the
// persistent configuration flags registered by [config.RegisterFlags].
package cli
