// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-image-board client and its development store.
//
// All Msg* constants are human-readable strings shown to the user as
// notifications or written into store response bodies. Keeping them in one
// place keeps the wording consistent between the terminal UI, the CLI and
// the store.
package app

// Notification texts.
const (
	// MsgFetchFailed is shown whenever a refresh fails and the gallery is
	// marked unavailable.
	MsgFetchFailed = "Error fetching image metadata"

	// MsgUploaded is shown after the store accepted an upload.
	MsgUploaded = "Uploaded!"

	// MsgUploadFailed is shown when the store rejected an upload or could
	// not be reached.
	MsgUploadFailed = "Failed"

	// MsgDeleteFailed is shown when a confirmed delete did not succeed.
	MsgDeleteFailed = "deletion failed!"

	// MsgRefreshing is shown when the user forces a refresh.
	MsgRefreshing = "Refreshing..."

	// MsgCopied is shown after an image URL was copied to the clipboard.
	MsgCopied = "Image URL copied"
)

// Presentation texts.
const (
	// MsgEmptyGallery replaces the list when the store is reachable but
	// holds no images.
	MsgEmptyGallery = "Go on, draw something and upload it"

	// MsgServerUnavailable heads the indicator shown instead of the list
	// while the store is unreachable.
	MsgServerUnavailable = "Server unavailable"

	// MsgRetryCountdown is formatted with the seconds left until the next
	// scheduled refresh.
	MsgRetryCountdown = "Trying again in %d seconds... (ctrl+r for instant refresh)"

	// MsgConfirmDelete asks the user to confirm phase two of a delete.
	MsgConfirmDelete = "Do you really want to delete the following content?"
)

// Store response bodies.
const (
	MsgHealthy         = "OK"
	MsgUploadAccepted  = "Uploaded"
	MsgNoFile          = "No file"
	MsgInvalidFilename = "Invalid filename"
	MsgFileNotFound    = "File not found"
	MsgFileDeleted     = "File deleted"
	MsgUploadTooLarge  = "File too large"
	MsgUploadError     = "Upload error"
	MsgFileWriteError  = "File write error"
	MsgDeleteError     = "Error deleting file on the server"
	MsgListFailed      = "Error reading image metadata"

	MsgInternalServerError = "internal server error"
)
