// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/goshawklogistics/goshawk-go/internal/model"
	"github.com/goshawklogistics/goshawk-go/internal/storage"
)

// UploadImage handles POST /api/admin/upload. The image arrives as the
// multipart field "file"; the response carries the public URL to reference
// it by.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// Leave headroom above the limit so oversized uploads are rejected with
	// a clear message instead of a truncated read.
	r.Body = http.MaxBytesReader(w, r.Body, 2*model.MaxImageSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	result, err := h.images.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	switch {
	case errors.Is(err, storage.ErrInvalidFileType):
		writeError(w, http.StatusBadRequest, "File must be an image")
		return
	case errors.Is(err, storage.ErrFileTooLarge):
		writeError(w, http.StatusBadRequest, "File size must be less than 5MB")
		return
	case errors.Is(err, storage.ErrEmptyData):
		writeError(w, http.StatusBadRequest, "File is empty")
		return
	case err != nil:
		h.log.Error("image upload failed", "filename", header.Filename, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	h.log.Info("image uploaded", "filename", result.Filename, "size", len(data))
	writeJSON(w, http.StatusOK, result)
}

// ListImages handles GET /api/admin/images/list.
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	urls, err := h.images.List(r.Context())
	if err != nil {
		h.log.Error("listing images failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to list images",
			"details": err.Error(),
			"images":  []string{},
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": urls})
}

// DeleteImage handles DELETE /api/admin/images/delete?url=. Deleting an
// image that is already gone is a 404, not a silent success.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "URL required")
		return
	}

	err := h.images.Delete(r.Context(), url)
	if errors.Is(err, storage.ErrNotFound) {
		writeErrorDetails(w, http.StatusNotFound, "File not found or already deleted", err)
		return
	}
	if err != nil {
		h.log.Error("deleting image failed", "url", url, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to delete image", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ServeImage handles GET /api/images/{filename}, streaming database-stored
// image bytes. Stored images never change, so responses are cacheable
// forever. Errors are plain text: the consumer is an <img> tag, not the
// admin panel.
func (h *Handler) ServeImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" {
		http.Error(w, "Filename required", http.StatusBadRequest)
		return
	}

	img, err := h.images.Serve(r.Context(), filename)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, storage.ErrEmptyData) {
		http.Error(w, "Image data is empty", http.StatusInternalServerError)
		return
	}
	if err != nil {
		h.log.Error("serving image failed", "filename", filename, "error", err)
		http.Error(w, "Error serving image", http.StatusInternalServerError)
		return
	}

	mimeType := img.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(img.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(img.Data)
}
