// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// readDocument loads the JSON document at path into v. A missing file and a
// file that fails to parse are reported the same way, as ErrNotFound: either
// way the document holds no usable data and the caller moves down the chain.
func readDocument(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return nil
}

// writeDocument serializes v to the JSON document at path, creating the
// parent directory on demand. The whole document is rewritten on every call.
func writeDocument(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
