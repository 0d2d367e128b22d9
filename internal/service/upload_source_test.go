// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiffWithCaptureTime builds a minimal little-endian TIFF stream whose Exif
// sub-IFD holds a single DateTimeOriginal entry.
func tiffWithCaptureTime(t *testing.T, stamp string) []byte {
	t.Helper()
	require.Len(t, stamp, 19)

	const (
		ifd0Offset   = 8
		exifOffset   = ifd0Offset + 2 + 12 + 4
		stringOffset = exifOffset + 2 + 12 + 4
	)

	le := binary.LittleEndian
	buf := make([]byte, stringOffset+20)

	copy(buf, "II")
	le.PutUint16(buf[2:], 42)
	le.PutUint32(buf[4:], ifd0Offset)

	// IFD0: ExifIFDPointer
	le.PutUint16(buf[ifd0Offset:], 1)
	entry := buf[ifd0Offset+2:]
	le.PutUint16(entry[0:], 0x8769)
	le.PutUint16(entry[2:], 4)
	le.PutUint32(entry[4:], 1)
	le.PutUint32(entry[8:], exifOffset)

	// Exif IFD: DateTimeOriginal
	le.PutUint16(buf[exifOffset:], 1)
	entry = buf[exifOffset+2:]
	le.PutUint16(entry[0:], 0x9003)
	le.PutUint16(entry[2:], 2)
	le.PutUint32(entry[4:], 20)
	le.PutUint32(entry[8:], stringOffset)

	copy(buf[stringOffset:], stamp)
	return buf
}

func TestLoadUploadFile_UsesModTimeWithoutExif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nnot really"), 0o600))

	modTime := time.Date(2022, 7, 3, 12, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, modTime, modTime))

	file, err := LoadUploadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "drawing.png", file.Blob.Name)
	assert.Equal(t, int64(18), file.Blob.Size())
	assert.False(t, file.DateFromExif)
	assert.True(t, file.SuggestedDate.Equal(modTime))
}

func TestLoadUploadFile_UsesExifCaptureTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.tif")
	require.NoError(t, os.WriteFile(path, tiffWithCaptureTime(t, "2021:03:04 05:06:07"), 0o600))

	file, err := LoadUploadFile(path)
	require.NoError(t, err)

	require.True(t, file.DateFromExif)
	y, m, d := file.SuggestedDate.Date()
	assert.Equal(t, 2021, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 4, d)
	assert.Equal(t, 5, file.SuggestedDate.Hour())
}

func TestLoadUploadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadUploadFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadUploadFile(dir)
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestParseCreationDate(t *testing.T) {
	got, err := ParseCreationDate(" 2024-05-01 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)))

	got, err = ParseCreationDate("2024-05-01T10:20:30Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC)))

	for _, raw := range []string{"", "yesterday", "2024-13-01"} {
		_, err = ParseCreationDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}
