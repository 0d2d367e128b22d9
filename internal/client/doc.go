// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the gallery session runtime.
//
// A [Session] is built once from configuration and owns the gateway, the
// sync store and the services. An [App] runs a UI on top of a session and
// keeps the background sync job alive exactly as long as the UI runs.
package client
