// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-image-board/models"
)

// MetadataFileName is the flat JSON file, inside the content directory,
// that lists every stored image.
const MetadataFileName = "image-metadata.json"

// metadataTempPrefix names the temporary files a metadata write goes
// through. Image names may not start with it.
const metadataTempPrefix = ".image-metadata-"

// fileImageRepository stores every image as a file in dir and keeps their
// metadata as a JSON array in dir/[MetadataFileName]. All operations are
// serialised; the metadata file is rewritten whole on every change.
type fileImageRepository struct {
	dir          string
	metadataPath string

	mu  sync.Mutex
	now func() time.Time
}

// NewFileImageRepository opens, creating when needed, a content directory
// at dir with an empty metadata file.
func NewFileImageRepository(dir string) (ImageRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}

	r := &fileImageRepository{
		dir:          dir,
		metadataPath: filepath.Join(dir, MetadataFileName),
		now:          time.Now,
	}

	if _, err := os.Stat(r.metadataPath); errors.Is(err, fs.ErrNotExist) {
		if err = os.WriteFile(r.metadataPath, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWritingMetadata, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingMetadata, err)
	}

	return r, nil
}

func (r *fileImageRepository) List(_ context.Context) ([]models.ImageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.readMetadata()
}

func (r *fileImageRepository) Open(_ context.Context, file string) ([]byte, error) {
	if err := checkFileName(file); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(r.dir, file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", file, err)
	}
	return data, nil
}

func (r *fileImageRepository) Save(_ context.Context, image models.UploadPayload) (models.ImageRecord, error) {
	name := image.File.Name
	if err := checkFileName(name); err != nil {
		return models.ImageRecord{}, err
	}

	now := r.now().UTC()
	rec := models.ImageRecord{
		File:         name,
		SizeBytes:    image.File.Size(),
		CreationDate: image.CreationDate,
		LastModified: now,
	}
	if image.Title != "" {
		title := image.Title
		rec.Title = &title
	}
	if rec.CreationDate.IsZero() {
		rec.CreationDate = now
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.readMetadata()
	if err != nil {
		return models.ImageRecord{}, err
	}

	if err = os.WriteFile(filepath.Join(r.dir, name), image.File.Data, 0o644); err != nil {
		return models.ImageRecord{}, fmt.Errorf("%w: %w", ErrWritingImage, err)
	}

	records = slices.DeleteFunc(records, func(existing models.ImageRecord) bool {
		return existing.File == name
	})
	records = append(records, rec)

	if err = r.writeMetadata(records); err != nil {
		return models.ImageRecord{}, err
	}
	return rec, nil
}

func (r *fileImageRepository) Delete(_ context.Context, file string) error {
	if err := checkFileName(file); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(filepath.Join(r.dir, file))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrImageNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingImage, err)
	}

	records, err := r.readMetadata()
	if err != nil {
		return err
	}
	records = slices.DeleteFunc(records, func(existing models.ImageRecord) bool {
		return existing.File == file
	})
	return r.writeMetadata(records)
}

func (r *fileImageRepository) readMetadata() ([]models.ImageRecord, error) {
	raw, err := os.ReadFile(r.metadataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingMetadata, err)
	}

	records := []models.ImageRecord{}
	if err = json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingMetadata, err)
	}
	return records, nil
}

// writeMetadata replaces the metadata file through a temporary file so a
// reader never sees a half-written array.
func (r *fileImageRepository) writeMetadata(records []models.ImageRecord) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingMetadata, err)
	}

	tmp, err := os.CreateTemp(r.dir, metadataTempPrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingMetadata, err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(raw)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), r.metadataPath)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingMetadata, err)
	}
	return nil
}

// checkFileName rejects names that are empty, contain a path separator, or
// refer to the directory itself, the metadata file or its temporary files.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || name == MetadataFileName ||
		strings.HasPrefix(name, metadataTempPrefix) ||
		strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return nil
}
