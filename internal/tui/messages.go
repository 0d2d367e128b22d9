// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-image-board/internal/service"
)

// frameMsg drives snapshot reads and toast expiry.
type frameMsg time.Time

type refreshDoneMsg struct {
	err error
}

type uploadDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	message string
	err     error
}

type fileLoadedMsg struct {
	path string
	file service.UploadFile
	err  error
}

type previewLoadedMsg struct {
	file string
	view string
	err  error
}
