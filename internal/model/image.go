// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package model

import (
	"strings"
	"time"
)

// Image is an uploaded image stored by one of the storage backends. URL is
// derived from Filename at creation and never changes; Size always equals
// len(Data). Records are immutable once written, apart from hard deletion.
type Image struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Data         []byte    `json:"-"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MaxImageSize is the upload size limit (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

// imageExtensions are the file extensions treated as images when listing
// backends that carry no MIME metadata (local disk, blob store).
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif"}

// IsImageMimeType reports whether the MIME type belongs to an image.
func IsImageMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// HasImageExtension reports whether name ends in a known image extension.
func HasImageExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
