// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// Package handler provides the REST API handlers for the site and its admin
// panel.
package handler

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/goshawklogistics/goshawk-go/internal/auth"
	"github.com/goshawklogistics/goshawk-go/internal/config"
	"github.com/goshawklogistics/goshawk-go/internal/repo"
	"github.com/goshawklogistics/goshawk-go/internal/storage"
)

// Handler holds shared dependencies for all API handlers. db is nil when no
// database is configured; only the health check looks at it directly.
type Handler struct {
	cfg          *config.Config
	db           *sql.DB
	content      *repo.Content
	services     *repo.Services
	testimonials *repo.Testimonials
	images       *storage.Manager
	log          *slog.Logger
}

// New creates the API handler.
func New(cfg *config.Config, db *sql.DB, content *repo.Content, services *repo.Services,
	testimonials *repo.Testimonials, images *storage.Manager, log *slog.Logger) *Handler {
	return &Handler{
		cfg:          cfg,
		db:           db,
		content:      content,
		services:     services,
		testimonials: testimonials,
		images:       images,
		log:          log,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// errorBody is the JSON error envelope shared by every API error response.
// Details carries the underlying error text when there is one; Stack is only
// populated in development.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// writeError writes a bare {error} response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorBody{Error: message})
}

// writeErrorDetails writes an {error, details} response.
func writeErrorDetails(w http.ResponseWriter, statusCode int, message string, err error) {
	body := errorBody{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	writeJSON(w, statusCode, body)
}

// RequireSession guards privileged routes. A missing, unparseable, or
// expired session cookie yields 401 without touching the wrapped handler.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := auth.SessionFromRequest(r)
		if !ok || !session.Valid(time.Now()) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
