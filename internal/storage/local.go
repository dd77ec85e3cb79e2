// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// LocalStore keeps images as files in the uploads directory, served
// statically under /uploads/.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a local disk image store rooted at dir. The
// directory is created lazily on first write.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Put writes image bytes to the uploads directory and returns the public
// path.
func (s *LocalStore) Put(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}
	return "/uploads/" + filename, nil
}

// List returns the public paths of every image file in the uploads
// directory. A missing directory yields an empty list.
func (s *LocalStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading uploads dir: %w", err)
	}
	urls := []string{}
	for _, e := range entries {
		if !e.IsDir() && model.HasImageExtension(e.Name()) {
			urls = append(urls, "/uploads/"+e.Name())
		}
	}
	return urls, nil
}

// Delete removes the file behind a /uploads/ path or bare filename. Returns
// ErrNotFound when the file does not exist.
func (s *LocalStore) Delete(url string) error {
	filename := path.Base(strings.TrimPrefix(url, "/uploads/"))
	if filename == "." || filename == "/" || filename == "" {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if err != nil {
		return fmt.Errorf("removing upload: %w", err)
	}
	return nil
}
