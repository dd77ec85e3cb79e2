// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// DatabaseStore keeps image bytes in the images table as BYTEA. Rows are
// written and read through hex encoding so the payload travels the wire as
// plain text.
type DatabaseStore struct {
	db *sql.DB
}

// NewDatabaseStore creates a database-backed image store.
func NewDatabaseStore(db *sql.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Save inserts the image record and returns its assigned id. The caller sets
// Filename, OriginalName, MimeType, Data, Size and URL.
func (s *DatabaseStore) Save(ctx context.Context, img *model.Image) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO images (filename, original_name, mime_type, data, size, url)
		VALUES ($1, $2, $3, decode($4, 'hex'), $5, $6)
		RETURNING id`,
		img.Filename, img.OriginalName, img.MimeType,
		hex.EncodeToString(img.Data), img.Size, img.URL).
		Scan(&img.ID)
	if err != nil {
		return fmt.Errorf("inserting image: %w", err)
	}
	return nil
}

// Get loads a full image record, bytes included, by filename or URL.
func (s *DatabaseStore) Get(ctx context.Context, urlOrFilename string) (model.Image, error) {
	var (
		img     model.Image
		dataHex string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, original_name, mime_type, encode(data, 'hex'), size, url, created_at, updated_at
		FROM images
		WHERE url = $1 OR filename = $1
		LIMIT 1`, urlOrFilename).
		Scan(&img.ID, &img.Filename, &img.OriginalName, &img.MimeType,
			&dataHex, &img.Size, &img.URL, &img.CreatedAt, &img.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Image{}, fmt.Errorf("%w: %s", ErrNotFound, urlOrFilename)
	}
	if err != nil {
		return model.Image{}, fmt.Errorf("querying image: %w", err)
	}
	img.Data, err = hex.DecodeString(dataHex)
	if err != nil {
		return model.Image{}, fmt.Errorf("decoding image data: %w", err)
	}
	if len(img.Data) == 0 {
		return model.Image{}, fmt.Errorf("%w: %s", ErrEmptyData, urlOrFilename)
	}
	return img, nil
}

// List returns all image records newest first, without their bytes.
func (s *DatabaseStore) List(ctx context.Context) ([]model.Image, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, original_name, mime_type, size, url, created_at, updated_at
		FROM images
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	defer rows.Close()

	list := []model.Image{}
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.Filename, &img.OriginalName, &img.MimeType,
			&img.Size, &img.URL, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		list = append(list, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating images: %w", err)
	}
	return list, nil
}

// Delete removes an image by filename or URL. Returns ErrNotFound when
// nothing matched.
func (s *DatabaseStore) Delete(ctx context.Context, urlOrFilename string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM images WHERE url = $1 OR filename = $1`, urlOrFilename)
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, urlOrFilename)
	}
	return nil
}
