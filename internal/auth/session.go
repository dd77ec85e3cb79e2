// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// Package auth implements the admin credential check and the cookie-carried
// session token consulted by every privileged route.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/goshawklogistics/goshawk-go/internal/config"
)

// SessionCookieName is the cookie carrying the serialized AdminSession.
const SessionCookieName = "admin_session"

// SessionLifetime is the fixed session TTL. Sessions are not refreshed on
// activity; they expire by time only.
const SessionLifetime = 24 * time.Hour

// AdminSession is the capability token embedded in the admin cookie. The JSON
// field names and the millisecond expiry are a wire contract shared with the
// admin frontend; do not rename them.
type AdminSession struct {
	Username  string `json:"username"`
	LoggedIn  bool   `json:"loggedIn"`
	ExpiresAt int64  `json:"expiresAt"` // unix milliseconds
}

// NewSession creates a session for username expiring SessionLifetime from now.
func NewSession(username string) AdminSession {
	return AdminSession{
		Username:  username,
		LoggedIn:  true,
		ExpiresAt: time.Now().Add(SessionLifetime).UnixMilli(),
	}
}

// Valid reports whether the session is usable at the given instant. It fails
// closed: a zero session, a logged-out session, and an expired session are
// all invalid.
func (s AdminSession) Valid(now time.Time) bool {
	if !s.LoggedIn {
		return false
	}
	return now.UnixMilli() < s.ExpiresAt
}

// VerifyCredentials compares a username/password pair against the configured
// admin credentials. When an argon2id hash is configured it is checked
// instead of the plain password. Comparison is constant-time either way.
func VerifyCredentials(cfg *config.Config, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1

	var passOK bool
	if cfg.AdminPasswordHash != "" {
		ok, err := VerifyArgon2(password, cfg.AdminPasswordHash)
		passOK = err == nil && ok
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	}

	return userOK && passOK
}

// SetCookie writes the session cookie. The value is the JSON session,
// URL-escaped so the braces and quotes survive cookie encoding. The cookie is
// deliberately not HttpOnly/Secure: the admin frontend reads it directly.
func SetCookie(w http.ResponseWriter, session AdminSession) {
	payload, _ := json.Marshal(session)
	http.SetCookie(w, &http.Cookie{
		Name:   SessionCookieName,
		Value:  url.QueryEscape(string(payload)),
		MaxAge: int(SessionLifetime / time.Second),
		Path:   "/",
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   SessionCookieName,
		Value:  "",
		MaxAge: -1,
		Path:   "/",
	})
}

// SessionFromRequest extracts and decodes the session cookie. The boolean is
// false when the cookie is absent or its payload does not parse; callers
// treat both the same as an unauthenticated request.
func SessionFromRequest(r *http.Request) (AdminSession, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return AdminSession{}, false
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return AdminSession{}, false
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return AdminSession{}, false
	}
	return session, true
}
