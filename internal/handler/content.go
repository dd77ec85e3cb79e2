// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// GetHomeContent handles GET /api/admin/content/home. Content reads never
// fail; the repository chain always produces a document.
func (h *Handler) GetHomeContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Home(r.Context()))
}

// UpdateHomeContent handles PUT /api/admin/content/home.
func (h *Handler) UpdateHomeContent(w http.ResponseWriter, r *http.Request) {
	var content model.HomeContent
	if !h.readContentBody(w, r, &content) {
		return
	}
	if err := h.content.SaveHome(r.Context(), content); err != nil {
		h.saveContentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "content": content})
}

// GetAboutContent handles GET /api/admin/content/about.
func (h *Handler) GetAboutContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.About(r.Context()))
}

// UpdateAboutContent handles PUT /api/admin/content/about.
func (h *Handler) UpdateAboutContent(w http.ResponseWriter, r *http.Request) {
	var content model.AboutContent
	if !h.readContentBody(w, r, &content) {
		return
	}
	if err := h.content.SaveAbout(r.Context(), content); err != nil {
		h.saveContentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "content": content})
}

// GetContactContent handles GET /api/admin/content/contact.
func (h *Handler) GetContactContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Contact(r.Context()))
}

// UpdateContactContent handles PUT /api/admin/content/contact.
func (h *Handler) UpdateContactContent(w http.ResponseWriter, r *http.Request) {
	var content model.ContactContent
	if !h.readContentBody(w, r, &content) {
		return
	}
	if err := h.content.SaveContact(r.Context(), content); err != nil {
		h.saveContentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "content": content})
}

// readContentBody decodes a content PUT body into v. An empty body and
// malformed JSON get distinct 400 responses so the admin panel can tell them
// apart.
func (h *Handler) readContentBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid JSON in request body", err)
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, "Request body is empty")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid JSON in request body", err)
		return false
	}
	return true
}

func (h *Handler) saveContentError(w http.ResponseWriter, err error) {
	h.log.Error("saving content failed", "error", err)
	body := errorBody{Error: "Failed to save content", Details: err.Error()}
	if h.cfg.IsDevelopment() {
		body.Stack = string(debug.Stack())
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
