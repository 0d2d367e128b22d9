// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/models"
)

// Field name constants used to restrict [UploadValidator.Validate] to a
// subset of an upload payload.
const (
	// FieldFile targets the file blob: present, non-empty, within the size limit.
	FieldFile = "file"

	// FieldTitle targets the title length in characters.
	FieldTitle = "title"

	// FieldCreationDate targets the creation date: set, not in the future,
	// not before 1900-01-01.
	FieldCreationDate = "creation_date"
)

// earliestCreationDate is the lower bound offered by the date picker.
var earliestCreationDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// UploadValidator checks upload payloads against the configured limits
// before any network call is made.
type UploadValidator struct {
	limits config.UploadLimits
	now    func() time.Time
}

// NewUploadValidator returns a validator enforcing limits.
func NewUploadValidator(limits config.UploadLimits) *UploadValidator {
	return &UploadValidator{limits: limits, now: time.Now}
}

// Limits returns the limits the validator enforces.
func (v *UploadValidator) Limits() config.UploadLimits {
	return v.limits
}

// Validate implements [Validator]. obj must be a [models.UploadPayload] or a
// pointer to one. With no fields, every field is checked in the order file,
// title, creation date. Failures are returned as [*ValidationError].
func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadPayload:
		return v.validateUploadPayload(ctx, value, fields...)
	case *models.UploadPayload:
		if value == nil {
			return fieldError(FieldFile, ErrFileRequired)
		}
		return v.validateUploadPayload(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateUploadPayload(_ context.Context, payload models.UploadPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldTitle, FieldCreationDate}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if payload.File.Name == "" || payload.File.Size() == 0 {
				return fieldError(FieldFile, ErrFileRequired)
			}
			if payload.File.Size() > v.limits.MaxUploadBytes {
				return fieldError(FieldFile, fmt.Errorf("%w: %d bytes, limit %d",
					ErrFileTooLarge, payload.File.Size(), v.limits.MaxUploadBytes))
			}
		case FieldTitle:
			n := utf8.RuneCountInString(payload.Title)
			if n < v.limits.MinTitleLength {
				return fieldError(FieldTitle, ErrTitleTooShort)
			}
			if n > v.limits.MaxTitleLength {
				return fieldError(FieldTitle, fmt.Errorf("%w: %d characters, limit %d",
					ErrTitleTooLong, n, v.limits.MaxTitleLength))
			}
		case FieldCreationDate:
			if payload.CreationDate.IsZero() {
				return fieldError(FieldCreationDate, ErrCreationDateRequired)
			}
			if payload.CreationDate.Before(earliestCreationDate) || payload.CreationDate.After(v.now()) {
				return fieldError(FieldCreationDate, ErrCreationDateOutOfRange)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
