// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"net/http"

	"github.com/goshawklogistics/goshawk-go/internal/repo"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Storage  string `json:"storage"`
}

// Health handles GET /health. Reports liveness plus the state of the
// persistence backends; a down database degrades the status but does not
// fail the check, since every read path has a fallback.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Database: "not configured",
		Storage:  h.images.ActiveBackend(),
	}
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "unavailable"
		} else {
			resp.Database = "ok"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListFAQs handles GET /api/faqs.
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, repo.FAQs(h.cfg.DataDir))
}
