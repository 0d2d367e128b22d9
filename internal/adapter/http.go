// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/utils"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/go-resty/resty/v2"
)

// HeaderRequestID carries a per-request identifier for log correlation.
const HeaderRequestID = "X-Request-ID"

// Store routes.
const (
	pathList   = "/imageData"
	pathImage  = "/image"
	pathByFile = "/image/{file}"
	pathHealth = "/health"
)

type httpImageStoreAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPImageStoreAdapter constructs an HTTP/REST implementation of
// [ImageStoreAdapter]. It normalises and validates the base URL from
// adapterCfg.Address and configures the underlying HTTP client with the
// resolved base URL, request timeout and User-Agent.
//
// Returns an error if adapterCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPImageStoreAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ImageStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: adapterCfg.UserAgent,
	})

	a := &httpImageStoreAdapter{
		client:  client,
		baseURL: baseURL,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}

	client.OnBeforeRequest(a.tagRequest)
	client.OnAfterResponse(a.logResponse)
	client.OnError(a.logError)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [ImageStoreAdapter]. It GETs /imageData and decodes the
// body into records. A body that is not a JSON array, or that contains a
// record without a file or with an unparsable date, is reported as
// [ErrMalformedResponse].
func (h *httpImageStoreAdapter) List(ctx context.Context) ([]models.ImageRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(pathList)
	if err != nil {
		return nil, transportError("list request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.ImageRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, malformedError("decode list response", err)
	}
	if records == nil {
		return nil, malformedError("decode list response", errors.New("expected a JSON array"))
	}

	return records, nil
}

// FetchImage implements [ImageStoreAdapter]. It GETs /image/{file} and
// returns the raw body.
func (h *httpImageStoreAdapter) FetchImage(ctx context.Context, file string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("file", file).
		Get(pathByFile)
	if err != nil {
		return nil, transportError("fetch image request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Upload implements [ImageStoreAdapter]. It POSTs a multipart form to /image
// with the parts file, title and creationDate (RFC 3339, UTC).
func (h *httpImageStoreAdapter) Upload(ctx context.Context, payload models.UploadPayload) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartField("file", payload.File.Name, http.DetectContentType(payload.File.Data), bytes.NewReader(payload.File.Data)).
		SetFormData(map[string]string{
			"title":        payload.Title,
			"creationDate": payload.CreationDate.UTC().Format(time.RFC3339),
		}).
		Post(pathImage)
	if err != nil {
		return transportError("upload request", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [ImageStoreAdapter]. It sends DELETE /image/{file} and
// returns the trimmed plain-text body.
func (h *httpImageStoreAdapter) Delete(ctx context.Context, file string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("file", file).
		Delete(pathByFile)
	if err != nil {
		return "", transportError("delete request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Health implements [ImageStoreAdapter]. It GETs /health.
func (h *httpImageStoreAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(pathHealth)
	if err != nil {
		return transportError("health request", err)
	}

	return mapHTTPError(resp)
}

// ImageURL implements [ImageStoreAdapter].
func (h *httpImageStoreAdapter) ImageURL(file string) string {
	return h.baseURL + pathImage + "/" + url.PathEscape(file)
}

// tagRequest attaches the request ID, reusing one carried by the context.
func (h *httpImageStoreAdapter) tagRequest(_ *resty.Client, r *resty.Request) error {
	id, ok := utils.GetRequestIDFromContext(r.Context())
	if !ok {
		id = h.ids.Generate()
	}
	r.SetHeader(HeaderRequestID, id)
	return nil
}

func (h *httpImageStoreAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("image store response")
	return nil
}

func (h *httpImageStoreAdapter) logError(r *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("method", r.Method).
		Str("url", r.URL).
		Str("request_id", r.Header.Get(HeaderRequestID)).
		Msg("image store request failed")
}
