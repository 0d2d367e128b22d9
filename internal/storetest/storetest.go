// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storetest runs the development image store in-process for tests.
//
// A [Store] serves the real store routes from a temporary content directory
// and adds fault knobs for the list endpoint: forced failures, a malformed
// body and an artificial delay. Request counters let tests assert how often
// the client reached the store.
package storetest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-image-board/internal/config"
	handler "github.com/MKhiriev/go-image-board/internal/handler/http"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// MaxUploadBytes is the store-side upload limit of a test store.
const MaxUploadBytes = 10_000_000

// Store is a running test store.
type Store struct {
	// URL is the base URL clients should use.
	URL string
	// Dir is the content directory.
	Dir string

	images store.ImageRepository
	srv    *httptest.Server

	failLists atomic.Int32
	malformed atomic.Bool
	listDelay atomic.Int64

	lists   atomic.Int32
	uploads atomic.Int32
	deletes atomic.Int32
}

// New starts a store that is closed when t finishes.
func New(t testing.TB) *Store {
	t.Helper()

	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		ContentDir:     t.TempDir(),
		MaxUploadBytes: MaxUploadBytes,
	}

	images, err := store.NewFileImageRepository(cfg.ContentDir)
	require.NoError(t, err)

	s := &Store{Dir: cfg.ContentDir, images: images}

	h := handler.NewHandler(images, cfg, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	router := chi.NewRouter()
	router.Use(s.faults)
	router.Mount("/", h.Init())

	s.srv = httptest.NewServer(router)
	s.URL = s.srv.URL
	t.Cleanup(s.Close)

	return s
}

// Close stops the store. Further requests fail at the transport level.
func (s *Store) Close() {
	s.srv.CloseClientConnections()
	s.srv.Close()
}

// Seed stores images directly, bypassing HTTP and the counters.
func (s *Store) Seed(t testing.TB, payloads ...models.UploadPayload) {
	t.Helper()
	for _, p := range payloads {
		_, err := s.images.Save(context.Background(), p)
		require.NoError(t, err)
	}
}

// Records returns the stored metadata.
func (s *Store) Records(t testing.TB) []models.ImageRecord {
	t.Helper()
	records, err := s.images.List(context.Background())
	require.NoError(t, err)
	return records
}

// FailNextLists makes the next n list requests answer 500.
func (s *Store) FailNextLists(n int) { s.failLists.Store(int32(n)) }

// ServeMalformedList switches the list body to invalid JSON.
func (s *Store) ServeMalformedList(on bool) { s.malformed.Store(on) }

// SetListDelay holds every list response for d.
func (s *Store) SetListDelay(d time.Duration) { s.listDelay.Store(int64(d)) }

// Lists returns how many list requests arrived.
func (s *Store) Lists() int { return int(s.lists.Load()) }

// Uploads returns how many upload requests arrived.
func (s *Store) Uploads() int { return int(s.uploads.Load()) }

// Deletes returns how many delete requests arrived.
func (s *Store) Deletes() int { return int(s.deletes.Load()) }

func (s *Store) faults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/image":
			s.uploads.Add(1)
		case r.Method == http.MethodDelete:
			s.deletes.Add(1)
		case r.Method == http.MethodGet && r.URL.Path == "/imageData":
			s.lists.Add(1)
			if !s.listFault(w, r) {
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// listFault applies the list knobs and reports whether the real handler
// should still run.
func (s *Store) listFault(w http.ResponseWriter, r *http.Request) bool {
	if d := time.Duration(s.listDelay.Load()); d > 0 {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
			return false
		}
	}

	for {
		n := s.failLists.Load()
		if n <= 0 {
			break
		}
		if s.failLists.CompareAndSwap(n, n-1) {
			http.Error(w, "Error reading image metadata", http.StatusInternalServerError)
			return false
		}
	}

	if s.malformed.Load() {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"an array"`))
		return false
	}
	return true
}
