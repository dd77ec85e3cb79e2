// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// Package repo implements the content and collection repositories. Every read
// walks the same chain: database (when configured), then the JSON document
// under the data directory, then the hard-coded defaults. Writes go to the
// database when one is configured and fall back to the JSON document
// otherwise, so a deployment without Postgres stays fully editable.
package repo

import "errors"

// ErrNotFound is returned by keyed lookups and updates when no record with
// the given key exists in the active backend.
var ErrNotFound = errors.New("record not found")

// JSON document names under the data directory.
const (
	homeFile         = "home-content.json"
	aboutFile        = "about-content.json"
	contactFile      = "contact-content.json"
	servicesFile     = "services.json"
	testimonialsFile = "testimonials.json"
	faqsFile         = "faqs.json"
)
