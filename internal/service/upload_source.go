// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-image-board/models"
	"github.com/rwcarlsen/goexif/exif"
)

// UploadFile is a local file read for upload together with a suggested
// creation date.
type UploadFile struct {
	Blob          models.Blob
	SuggestedDate time.Time
	// DateFromExif is set when SuggestedDate came from the image's EXIF
	// capture time rather than the file's modification time.
	DateFromExif bool
}

// LoadUploadFile reads the file at path. The suggested creation date is the
// EXIF DateTimeOriginal when the image carries one, otherwise the file's
// modification time. Size limits are not checked here.
func LoadUploadFile(path string) (UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return UploadFile{}, fmt.Errorf("stat upload file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return UploadFile{}, fmt.Errorf("%s: %w", path, ErrNotAFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return UploadFile{}, fmt.Errorf("read upload file: %w", err)
	}

	file := UploadFile{
		Blob:          models.Blob{Name: filepath.Base(path), Data: data},
		SuggestedDate: info.ModTime(),
	}
	if taken, ok := exifCaptureTime(data); ok {
		file.SuggestedDate = taken
		file.DateFromExif = true
	}

	return file, nil
}

// exifCaptureTime returns the capture time recorded in data, if any.
func exifCaptureTime(data []byte) (time.Time, bool) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return time.Time{}, false
	}

	taken, err := x.DateTime()
	if err != nil || taken.IsZero() {
		return time.Time{}, false
	}
	return taken, true
}

// CreationDateLayout is the date format users type for a creation date.
const CreationDateLayout = "2006-01-02"

// ParseCreationDate reads a user-typed creation date: [CreationDateLayout]
// in local time, or any layout accepted for record dates.
func ParseCreationDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(CreationDateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	t, err := models.ParseRecordDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("creation date: %w", err)
	}
	return t, nil
}
