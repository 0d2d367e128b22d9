// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is how much of an upload is kept in memory before the
// rest spills to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, app.MsgHealthy)
}

func (h *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.images.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listImages").Msg("error listing images")
		writeText(w, http.StatusInternalServerError, app.MsgListFailed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(records); err != nil {
		log.Err(err).Str("func", "*Handler.listImages").Msg("error encoding images")
	}
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	file := fileParam(r)

	data, err := h.images.Open(r.Context(), file)
	if err != nil {
		status, body := responseFromError(err, app.MsgInternalServerError)
		log.Err(err).Str("func", "*Handler.getImage").Str("file", file).Msg("error opening image")
		writeText(w, status, body)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Info().Int64("limit", tooLarge.Limit).Msg("upload too large")
			writeText(w, http.StatusRequestEntityTooLarge, app.MsgUploadTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.uploadImage").Msg("invalid multipart form")
		writeText(w, http.StatusBadRequest, app.MsgUploadError)
		return
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile("file")
	if err != nil {
		writeText(w, http.StatusBadRequest, app.MsgNoFile)
		return
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadImage").Msg("error reading file part")
		writeText(w, http.StatusBadRequest, app.MsgUploadError)
		return
	}

	// an unparsable date is dropped and the store falls back to now
	created, _ := time.Parse(time.RFC3339, r.FormValue("creationDate"))

	rec, err := h.images.Save(r.Context(), models.UploadPayload{
		File:         models.Blob{Name: header.Filename, Data: data},
		Title:        r.FormValue("title"),
		CreationDate: created,
	})
	if err != nil {
		status, body := responseFromError(err, app.MsgFileWriteError)
		log.Err(err).Str("func", "*Handler.uploadImage").Str("file", header.Filename).Msg("error saving image")
		writeText(w, status, body)
		return
	}

	log.Info().Str("file", rec.File).Int64("size", rec.SizeBytes).Msg("image stored")
	writeText(w, http.StatusCreated, app.MsgUploadAccepted)
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	file := fileParam(r)

	if err := h.images.Delete(r.Context(), file); err != nil {
		status, body := responseFromError(err, app.MsgDeleteError)
		log.Err(err).Str("func", "*Handler.deleteImage").Str("file", file).Msg("error deleting image")
		writeText(w, status, body)
		return
	}

	writeText(w, http.StatusOK, app.MsgFileDeleted)
}

// fileParam returns the decoded {file} path segment. chi matches on the raw
// path when the request carries escaped separators, so those are decoded
// here and rejected by the repository.
func fileParam(r *http.Request) string {
	file := chi.URLParam(r, "file")
	if r.URL.RawPath == "" {
		return file
	}
	if decoded, err := url.PathUnescape(file); err == nil {
		return decoded
	}
	return file
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
