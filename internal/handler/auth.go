// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/goshawklogistics/goshawk-go/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. A successful login sets the session
// cookie and echoes the session back to the admin panel.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !auth.VerifyCredentials(h.cfg, req.Username, req.Password) {
		h.log.Info("failed login attempt", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session := auth.NewSession(req.Username)
	auth.SetCookie(w, session)
	h.log.Info("admin login", "username", req.Username)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"session": session,
	})
}

// CheckAuth handles GET /api/admin/check-auth. It never errors: an invalid
// or expired session clears the cookie and reports unauthenticated with 200.
func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	if !session.Valid(time.Now()) {
		auth.ClearCookie(w)
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"session":       session,
	})
}

// Logout handles POST /api/admin/logout by clearing the session cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
