// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goshawklogistics/goshawk-go/internal/config"
)

func TestVerifyCredentials(t *testing.T) {
	cfg := &config.Config{AdminUsername: "admin", AdminPassword: "admin123"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "admin", "admin123", true},
		{"wrong password", "admin", "nope", false},
		{"wrong username", "root", "admin123", false},
		{"both wrong", "root", "nope", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyCredentials(cfg, tt.username, tt.password); got != tt.want {
				t.Fatalf("VerifyCredentials(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestVerifyCredentials_HashTakesPrecedence(t *testing.T) {
	hash, err := HashArgon2("s3cret")
	if err != nil {
		t.Fatalf("HashArgon2 error: %v", err)
	}
	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPassword:     "admin123",
		AdminPasswordHash: hash,
	}

	if !VerifyCredentials(cfg, "admin", "s3cret") {
		t.Fatal("hashed password was rejected")
	}
	// The plain password is ignored once a hash is configured.
	if VerifyCredentials(cfg, "admin", "admin123") {
		t.Fatal("plain password accepted despite configured hash")
	}
}

func TestSessionValid(t *testing.T) {
	now := time.Now()

	session := NewSession("admin")
	if !session.Valid(now) {
		t.Fatal("fresh session should be valid")
	}
	if session.Valid(now.Add(SessionLifetime + time.Minute)) {
		t.Fatal("session should expire after its lifetime")
	}

	// Validity is monotonic: once expired, always expired.
	expired := AdminSession{Username: "admin", LoggedIn: true, ExpiresAt: now.Add(-time.Second).UnixMilli()}
	for _, offset := range []time.Duration{0, time.Hour, 24 * time.Hour} {
		if expired.Valid(now.Add(offset)) {
			t.Fatalf("expired session valid at +%v", offset)
		}
	}

	var zero AdminSession
	if zero.Valid(now) {
		t.Fatal("zero session should be invalid")
	}
	loggedOut := AdminSession{Username: "admin", ExpiresAt: now.Add(time.Hour).UnixMilli()}
	if loggedOut.Valid(now) {
		t.Fatal("logged-out session should be invalid")
	}
}

func TestCookieRoundtrip(t *testing.T) {
	session := NewSession("admin")

	w := httptest.NewRecorder()
	SetCookie(w, session)

	res := w.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName {
		t.Fatalf("cookie name = %q", cookie.Name)
	}
	if cookie.HttpOnly {
		t.Fatal("session cookie must stay readable by the admin frontend")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	got, ok := SessionFromRequest(req)
	if !ok {
		t.Fatal("SessionFromRequest failed on a cookie we just set")
	}
	if got != session {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", got, session)
	}
}

func TestSessionFromRequest_Garbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := SessionFromRequest(req); ok {
		t.Fatal("expected no session without a cookie")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-json"})
	if _, ok := SessionFromRequest(req); ok {
		t.Fatal("expected no session for a non-JSON cookie")
	}
}

func TestClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearCookie(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got MaxAge=%d", cookies[0].MaxAge)
	}
}
