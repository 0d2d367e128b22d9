// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Error classes. Every adapter error matches exactly one of them.
var (
	// ErrTransport covers network failures, timeouts and non-2xx statuses.
	ErrTransport = errors.New("transport error")
	// ErrMalformedResponse means the body could not be decoded into the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// Status sentinels matched by [*StatusError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// StatusError is returned for non-2xx responses. It unwraps to
// [ErrTransport] and to the sentinel for its status code.
type StatusError struct {
	StatusCode int
	Body       string

	status error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.status)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes both the error class and the status sentinel.
func (e *StatusError) Unwrap() []error {
	return []error{ErrTransport, e.status}
}
