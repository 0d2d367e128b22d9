// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrConfirmationClosed = errors.New("delete confirmation is closed")
	ErrNotAFile           = errors.New("not a regular file")
)

// Store rejections, matched on top of the adapter error they wrap.
var (
	ErrImageGone          = errors.New("image no longer exists on the store")
	ErrRejectedAsTooLarge = errors.New("store rejected the upload as too large")
	ErrRejectedFileName   = errors.New("store rejected the file name")
	ErrRejectedUpload     = errors.New("store rejected the upload")
)
