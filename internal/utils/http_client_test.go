// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{})

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_AppliesOptions(t *testing.T) {
	var gotAgent, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		UserAgent: "board-test/1",
	})

	resp, err := client.R().Get("/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "board-test/1", gotAgent)
	assert.Equal(t, "/health", gotPath)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout)
}
