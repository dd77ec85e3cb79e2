// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// Package storage implements the hybrid image store. Three backends exist:
// the database (images as BYTEA rows), an S3-compatible blob bucket, and the
// local uploads directory. The backend is chosen per call, never pinned at
// startup: database when configured, otherwise blob, otherwise local disk.
// A blob failure degrades to local disk with a warning instead of failing
// the request.
package storage

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	// ErrNotFound is returned when no stored image matches the given
	// filename or URL.
	ErrNotFound = errors.New("image not found")

	// ErrEmptyData is returned when a stored record carries no bytes.
	ErrEmptyData = errors.New("image data is empty")

	// ErrInvalidFileType rejects uploads whose MIME type is not image/*.
	ErrInvalidFileType = errors.New("file must be an image")

	// ErrFileTooLarge rejects uploads over the size limit.
	ErrFileTooLarge = errors.New("file size must be less than 5MB")

	// ErrNotConfigured is returned when an operation needs a backend that
	// is not configured (e.g. serving database images without a database).
	ErrNotConfigured = errors.New("storage backend not configured")
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// MakeFilename derives the stored filename from the uploaded name: the
// upload instant in unix milliseconds, a dash, then the original name with
// every character outside [a-zA-Z0-9.-] replaced by an underscore. The
// timestamp prefix keeps names unique; the name is never reused, so stored
// images can be cached forever.
func MakeFilename(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), unsafeFilenameChars.ReplaceAllString(originalName, "_"))
}
