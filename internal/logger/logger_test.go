// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNew_Fields verifies that every entry carries role, time and func fields.
func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_Fields")
}

// TestNew_LevelFilters verifies that entries below the level are dropped.
func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", &buf, zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

// TestNewClientLogger_File verifies that a configured file receives entries.
func TestNewClientLogger_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "board.log")

	l, closer, err := NewClientLogger("client", "warn", p)
	require.NoError(t, err)

	l.Info().Msg("below level")
	l.Error().Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), `"written"`)
}

// TestNewClientLogger_DefaultsToInfo verifies the empty level fallback.
func TestNewClientLogger_DefaultsToInfo(t *testing.T) {
	l, closer, err := NewClientLogger("client", "", "")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

// TestNewClientLogger_BadLevel verifies that an unknown level is rejected.
func TestNewClientLogger_BadLevel(t *testing.T) {
	l, closer, err := NewClientLogger("client", "shout", "")
	assert.Error(t, err)
	assert.Nil(t, l)
	assert.Nil(t, closer)
}

// TestNewClientLogger_BadFile verifies that an unopenable file is an error.
func TestNewClientLogger_BadFile(t *testing.T) {
	_, _, err := NewClientLogger("client", "info", filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent and is a distinct instance.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role", &buf, zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestWithContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext.
func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", &buf, zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestFromRequest_ReturnsAttachedLogger verifies that FromRequest returns the
// logger attached to the request's context.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(context.Background()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-value", entry["req-key"])
}
