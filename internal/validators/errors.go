// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFileRequired           = errors.New("file is required")
	ErrFileTooLarge           = errors.New("file is too large")
	ErrTitleTooShort          = errors.New("title is too short")
	ErrTitleTooLong           = errors.New("title is too long")
	ErrCreationDateRequired   = errors.New("creation date is required")
	ErrCreationDateOutOfRange = errors.New("creation date is out of range")
)

// ValidationError reports the first field of a payload that broke a rule.
// It unwraps to the field sentinel, e.g. [ErrFileTooLarge].
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
