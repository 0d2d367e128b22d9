// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data contracts shared by the gallery client
// layers: image metadata as served by the remote store, upload payloads,
// and the client's synchronisation snapshot.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"
)

// Decoding errors reported by [ImageRecord.UnmarshalJSON].
var (
	ErrEmptyFile         = errors.New("image record has empty file")
	ErrNegativeSize      = errors.New("image record has negative size")
	ErrInvalidRecordDate = errors.New("image record has invalid date")
)

// recordDateLayouts lists the ISO-8601 shapes accepted for record dates, most
// specific first. The store writes RFC3339; older entries may be date-only.
var recordDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ImageRecord is the metadata of one stored image as known to the client.
// File is the only stable identity; Title is neither unique nor required.
type ImageRecord struct {
	// Title is the optional display name. Nil means "unnamed".
	Title *string

	// File is the server-assigned identifier, also used as the key in
	// /image/{file} URLs.
	File string

	// SizeBytes is the size of the stored binary.
	SizeBytes int64

	// CreationDate is the user-supplied creation timestamp.
	CreationDate time.Time

	// LastModified is the server-side write timestamp. It is expected, but
	// not enforced, to be no earlier than CreationDate.
	LastModified time.Time
}

type imageRecordWire struct {
	Title        *string `json:"title,omitempty"`
	File         string  `json:"file"`
	SizeBytes    int64   `json:"size_bytes"`
	CreationDate string  `json:"creation_date"`
	LastModified string  `json:"last_modified"`
}

// UnmarshalJSON decodes the store's wire shape and rejects records that
// cannot be displayed or addressed.
func (r *ImageRecord) UnmarshalJSON(b []byte) error {
	var w imageRecordWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	if strings.TrimSpace(w.File) == "" {
		return ErrEmptyFile
	}
	if w.SizeBytes < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeSize, w.File)
	}

	created, err := ParseRecordDate(w.CreationDate)
	if err != nil {
		return fmt.Errorf("creation_date of %s: %w", w.File, err)
	}
	modified, err := ParseRecordDate(w.LastModified)
	if err != nil {
		return fmt.Errorf("last_modified of %s: %w", w.File, err)
	}

	*r = ImageRecord{
		Title:        w.Title,
		File:         w.File,
		SizeBytes:    w.SizeBytes,
		CreationDate: created,
		LastModified: modified,
	}
	return nil
}

// MarshalJSON encodes the record in the store's wire shape.
func (r ImageRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(imageRecordWire{
		Title:        r.Title,
		File:         r.File,
		SizeBytes:    r.SizeBytes,
		CreationDate: r.CreationDate.Format(time.RFC3339),
		LastModified: r.LastModified.Format(time.RFC3339),
	})
}

// ParseRecordDate parses an ISO-8601 timestamp in any of the layouts the
// store is known to emit.
func ParseRecordDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidRecordDate
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRecordDate, value)
}

// HasTitle reports whether the record carries a non-empty title.
func (r ImageRecord) HasTitle() bool {
	return r.Title != nil && *r.Title != ""
}

// Name returns the title, falling back to the file identifier.
func (r ImageRecord) Name() string {
	if r.HasTitle() {
		return *r.Title
	}
	return r.File
}

// DisplayTitle returns the title, falling back to the file's base name
// without its extension.
func (r ImageRecord) DisplayTitle() string {
	if r.HasTitle() {
		return *r.Title
	}
	return BaseName(r.File)
}

// ModifiedOnDifferentDay reports whether LastModified falls on another
// calendar day than CreationDate.
func (r ImageRecord) ModifiedOnDifferentDay() bool {
	cy, cm, cd := r.CreationDate.Local().Date()
	my, mm, md := r.LastModified.Local().Date()
	return cy != my || cm != mm || cd != md
}

// BaseName strips any directory prefix and the last extension from file.
func BaseName(file string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	if base == "." || base == "/" {
		return file
	}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}

// SortForDisplay returns a copy of records ordered by creation date, most
// recent first. Records with equal dates keep their relative order.
func SortForDisplay(records []ImageRecord) []ImageRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b ImageRecord) int {
		return b.CreationDate.Compare(a.CreationDate)
	})
	return sorted
}

// CloneRecords returns an independent copy of records, including titles.
func CloneRecords(records []ImageRecord) []ImageRecord {
	if records == nil {
		return nil
	}
	dup := make([]ImageRecord, len(records))
	for i, r := range records {
		if r.Title != nil {
			t := *r.Title
			r.Title = &t
		}
		dup[i] = r
	}
	return dup
}
