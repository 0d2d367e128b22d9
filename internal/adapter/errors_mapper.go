// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a [*StatusError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewStatusError(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

// NewStatusError classifies a non-2xx response by its status code.
func NewStatusError(code int, body string) *StatusError {
	var status error
	switch code {
	case http.StatusBadRequest:
		status = ErrBadRequest
	case http.StatusNotFound:
		status = ErrNotFound
	case http.StatusRequestEntityTooLarge:
		status = ErrPayloadTooLarge
	case http.StatusInternalServerError:
		status = ErrInternalServerError
	case http.StatusBadGateway:
		status = ErrBadGateway
	case http.StatusServiceUnavailable:
		status = ErrServiceUnavailable
	default:
		text := http.StatusText(code)
		if text == "" {
			text = "unknown"
		}
		status = fmt.Errorf("%w: %s", ErrUnexpectedStatus, strings.ToLower(text))
	}

	return &StatusError{StatusCode: code, Body: body, status: status}
}

// transportError classifies a request that never produced a response.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

// malformedError classifies a response whose body failed to decode.
func malformedError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, op, err)
}
