// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/goshawklogistics/goshawk-go/internal/model"
	"github.com/goshawklogistics/goshawk-go/internal/repo"
)

// ListServices handles GET /api/admin/services. The read is public and
// always succeeds via the fallback chain.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.All(r.Context()))
}

// CreateService handles POST /api/admin/services. Creating an existing slug
// replaces the record.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid JSON in request body", err)
		return
	}
	if svc.Slug == "" {
		writeError(w, http.StatusBadRequest, "Slug required")
		return
	}
	if err := h.services.Create(r.Context(), svc); err != nil {
		h.log.Error("creating service failed", "slug", svc.Slug, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to create service", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": svc})
}

// UpdateService handles PUT /api/admin/services. Unknown slugs yield 404.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid JSON in request body", err)
		return
	}
	err := h.services.Update(r.Context(), svc)
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		h.log.Error("updating service failed", "slug", svc.Slug, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to update service", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": svc})
}

// DeleteService handles DELETE /api/admin/services?slug=. Deleting a slug
// that does not exist still succeeds.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Slug required")
		return
	}
	if err := h.services.Delete(r.Context(), slug); err != nil {
		h.log.Error("deleting service failed", "slug", slug, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to delete service", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListTestimonials handles GET /api/admin/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.testimonials.All(r.Context()))
}

// CreateTestimonial handles POST /api/admin/testimonials. When the client
// omits an id the server assigns one; the response body carries it back.
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t model.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid JSON in request body", err)
		return
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if !model.ValidRating(t.Rating) {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	if err := h.testimonials.Create(r.Context(), t); err != nil {
		h.log.Error("creating testimonial failed", "id", t.ID, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to create testimonial", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "testimonial": t})
}

// UpdateTestimonial handles PUT /api/admin/testimonials. Unknown ids yield 404.
func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t model.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid JSON in request body", err)
		return
	}
	if !model.ValidRating(t.Rating) {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	err := h.testimonials.Update(r.Context(), t)
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Testimonial not found")
		return
	}
	if err != nil {
		h.log.Error("updating testimonial failed", "id", t.ID, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to update testimonial", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "testimonial": t})
}

// DeleteTestimonial handles DELETE /api/admin/testimonials?id=.
func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID required")
		return
	}
	if err := h.testimonials.Delete(r.Context(), id); err != nil {
		h.log.Error("deleting testimonial failed", "id", id, "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to delete testimonial", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
