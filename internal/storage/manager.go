// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// Manager routes image operations to the right backend. db and blob may be
// nil; local always exists as the terminal fallback.
type Manager struct {
	db    *DatabaseStore
	blob  *BlobStore
	local *LocalStore
	log   *slog.Logger
	now   func() time.Time
}

// NewManager wires the configured backends together.
func NewManager(db *DatabaseStore, blob *BlobStore, local *LocalStore, log *slog.Logger) *Manager {
	return &Manager{db: db, blob: blob, local: local, log: log, now: time.Now}
}

// ActiveBackend names the backend new uploads currently go to.
func (m *Manager) ActiveBackend() string {
	switch {
	case m.db != nil:
		return "database"
	case m.blob != nil:
		return "blob"
	default:
		return "local"
	}
}

// UploadResult is what an upload hands back to the admin panel: the public
// URL to reference the image by, and the stored filename.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload validates and stores an image. Validation happens before any
// backend is touched: nothing is stored for a rejected upload. With a
// database the record lands there and is served from /api/images/; with
// blob storage the object URL is canonical; otherwise the file lands in the
// local uploads directory.
func (m *Manager) Upload(ctx context.Context, originalName, mimeType string, data []byte) (UploadResult, error) {
	if !model.IsImageMimeType(mimeType) {
		return UploadResult{}, ErrInvalidFileType
	}
	if int64(len(data)) > model.MaxImageSize {
		return UploadResult{}, ErrFileTooLarge
	}
	if len(data) == 0 {
		return UploadResult{}, ErrEmptyData
	}

	filename := MakeFilename(originalName, m.now())

	if m.db != nil {
		img := model.Image{
			Filename:     filename,
			OriginalName: originalName,
			MimeType:     mimeType,
			Data:         data,
			Size:         int64(len(data)),
			URL:          "/api/images/" + filename,
		}
		if err := m.db.Save(ctx, &img); err != nil {
			return UploadResult{}, err
		}
		return UploadResult{URL: img.URL, Filename: filename}, nil
	}

	if m.blob != nil {
		url, err := m.blob.Put(ctx, filename, mimeType, data)
		if err == nil {
			return UploadResult{URL: url, Filename: filename}, nil
		}
		m.log.Warn("blob upload failed, using local storage", "error", err)
	}

	url, err := m.local.Put(filename, data)
	if err != nil {
		return UploadResult{}, err
	}
	return UploadResult{URL: url, Filename: filename}, nil
}

// Serve resolves a database-stored image by filename or full URL. Only the
// database backend serves through this path; blob and local images are
// fetched directly from their public URLs.
func (m *Manager) Serve(ctx context.Context, filename string) (model.Image, error) {
	if m.db == nil {
		return model.Image{}, fmt.Errorf("%w: database", ErrNotConfigured)
	}
	img, err := m.db.Get(ctx, filename)
	if errors.Is(err, ErrNotFound) && !strings.HasPrefix(filename, "/api/images/") {
		return m.db.Get(ctx, "/api/images/"+filename)
	}
	return img, err
}

// List returns the public URLs of all stored images from the active backend.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	if m.db != nil {
		records, err := m.db.List(ctx)
		if err != nil {
			return nil, err
		}
		urls := make([]string, 0, len(records))
		for _, img := range records {
			urls = append(urls, img.URL)
		}
		return urls, nil
	}

	if m.blob != nil {
		urls, err := m.blob.List(ctx)
		if err == nil {
			return urls, nil
		}
		m.log.Warn("blob list failed, using local storage", "error", err)
	}

	return m.local.List()
}

// Delete removes the image behind a public URL. The URL shape picks the
// backend: absolute URLs go to the blob store (with a database match as
// backup), /api/images/ paths and bare filenames go to the database, and
// /uploads/ paths go to local disk. Deleting an image that does not exist
// returns ErrNotFound.
func (m *Manager) Delete(ctx context.Context, url string) error {
	switch {
	case strings.HasPrefix(url, "http"):
		if m.blob != nil && m.blob.Owns(url) {
			err := m.blob.Delete(ctx, url)
			if err == nil {
				return nil
			}
			if !errors.Is(err, ErrNotFound) {
				m.log.Warn("blob delete failed, trying other backends", "error", err)
			}
		}
		if m.db != nil {
			return m.db.Delete(ctx, url)
		}
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	case strings.HasPrefix(url, "/uploads/"):
		return m.local.Delete(url)
	default:
		// /api/images/ paths and bare filenames.
		if m.db != nil {
			return m.db.Delete(ctx, url)
		}
		return m.local.Delete(url)
	}
}
