// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Blob is an in-memory file selected for upload.
type Blob struct {
	// Name is the file name sent in the multipart part; the store uses it
	// as the record's File.
	Name string

	// Data holds the raw bytes.
	Data []byte
}

// Size returns the length of the blob in bytes.
func (b Blob) Size() int64 {
	return int64(len(b.Data))
}

// UploadPayload is a validated-or-not request to store a new image.
type UploadPayload struct {
	File         Blob
	Title        string
	CreationDate time.Time
}
