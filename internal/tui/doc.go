// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation of a gallery session.
//
// The gallery model reads sync snapshots on its own frame tick and never
// writes state: refreshes, uploads and deletes go through the client
// services, whose outcomes reach the user through the [Toaster].
package tui
