// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goshawklogistics/goshawk-go/internal/auth"
	"github.com/goshawklogistics/goshawk-go/internal/config"
	"github.com/goshawklogistics/goshawk-go/internal/model"
	"github.com/goshawklogistics/goshawk-go/internal/repo"
	"github.com/goshawklogistics/goshawk-go/internal/storage"
)

// newTestRouter builds the full route tree backed by temp directories and no
// database, the same shape a file-only deployment runs with.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Env:           "test",
		AdminUsername: "admin",
		AdminPassword: "admin123",
		DataDir:       t.TempDir(),
		UploadsDir:    t.TempDir(),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	content := repo.NewContent(nil, cfg.DataDir, log)
	services := repo.NewServices(nil, cfg.DataDir, log)
	testimonials := repo.NewTestimonials(nil, cfg.DataDir, log)
	images := storage.NewManager(nil, nil, storage.NewLocalStore(cfg.UploadsDir), log)

	h := New(cfg, nil, content, services, testimonials, images, log)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func sessionCookie(t *testing.T, session auth.AdminSession) *http.Cookie {
	t.Helper()
	payload, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("marshaling session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: url.QueryEscape(string(payload))}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestGetHomeContent_Default(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/content/home", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["headline"] != "Logistics that moves your business forward" {
		t.Fatalf("headline = %v", body["headline"])
	}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	// Missing fields.
	w := doJSON(t, router, http.MethodPost, "/api/admin/login", `{"username":"admin"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: status = %d", w.Code)
	}

	// Wrong password: 401 and no session cookie.
	w = doJSON(t, router, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			t.Fatal("failed login must not set a session cookie")
		}
	}

	// Correct credentials.
	w = doJSON(t, router, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("body = %v", body)
	}
	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("login did not set the session cookie")
	}
}

func TestCheckAuth(t *testing.T) {
	router := newTestRouter(t)

	// No cookie.
	w := doJSON(t, router, http.MethodGet, "/api/admin/check-auth", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["authenticated"] != false {
		t.Fatalf("body = %v", body)
	}

	// Valid session.
	w = doJSON(t, router, http.MethodGet, "/api/admin/check-auth", "",
		sessionCookie(t, auth.NewSession("admin")))
	if body := decodeBody(t, w); body["authenticated"] != true {
		t.Fatalf("body = %v", body)
	}

	// Expired session: 200, unauthenticated, cookie cleared.
	expired := auth.AdminSession{Username: "admin", LoggedIn: true, ExpiresAt: time.Now().Add(-time.Hour).UnixMilli()}
	w = doJSON(t, router, http.MethodGet, "/api/admin/check-auth", "", sessionCookie(t, expired))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["authenticated"] != false {
		t.Fatalf("body = %v", body)
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expired session must clear the cookie")
	}
}

func TestUpdateHomeContent(t *testing.T) {
	router := newTestRouter(t)
	cookie := sessionCookie(t, auth.NewSession("admin"))

	// Session required.
	w := doJSON(t, router, http.MethodPut, "/api/admin/content/home", `{"headline":"x"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no session: status = %d", w.Code)
	}

	// Empty body.
	w = doJSON(t, router, http.MethodPut, "/api/admin/content/home", "", cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty body: status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Request body is empty" {
		t.Fatalf("body = %v", body)
	}

	// Malformed JSON gets details.
	w = doJSON(t, router, http.MethodPut, "/api/admin/content/home", "{broken", cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Invalid JSON in request body" || body["details"] == nil {
		t.Fatalf("body = %v", body)
	}

	// Valid update is visible on the next read.
	w = doJSON(t, router, http.MethodPut, "/api/admin/content/home",
		`{"headline":"Fresh copy","subtext":"s","heroImage":"","ctaPrimary":"a","ctaSecondary":"b"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/admin/content/home", "")
	if body := decodeBody(t, w); body["headline"] != "Fresh copy" {
		t.Fatalf("headline after update = %v", body["headline"])
	}
}

func TestServiceHandlers(t *testing.T) {
	router := newTestRouter(t)
	cookie := sessionCookie(t, auth.NewSession("admin"))

	w := doJSON(t, router, http.MethodPost, "/api/admin/services",
		`{"slug":"hotshot","title":"Hotshot","shortDescription":"d","description":"d","icon":"x","features":[],"benefits":[]}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/admin/services", "")
	var list []model.Service
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	var seen bool
	for _, s := range list {
		if s.Slug == "hotshot" {
			seen = true
		}
	}
	if !seen {
		t.Fatal("created service missing from list")
	}

	// Updating an unknown slug is a 404.
	w = doJSON(t, router, http.MethodPut, "/api/admin/services", `{"slug":"no-such"}`, cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update unknown: status = %d", w.Code)
	}

	// Delete requires the slug parameter.
	w = doJSON(t, router, http.MethodDelete, "/api/admin/services", "", cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete without slug: status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/admin/services?slug=hotshot", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
}

func TestTestimonialRatingValidation(t *testing.T) {
	router := newTestRouter(t)
	cookie := sessionCookie(t, auth.NewSession("admin"))

	for _, rating := range []int{0, 6, -1} {
		body := fmt.Sprintf(`{"id":"t1","name":"n","role":"r","company":"c","content":"x","rating":%d}`, rating)
		w := doJSON(t, router, http.MethodPost, "/api/admin/testimonials", body, cookie)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("rating %d: status = %d", rating, w.Code)
		}
	}

	for _, rating := range []int{1, 5} {
		body := fmt.Sprintf(`{"id":"t%d","name":"n","role":"r","company":"c","content":"x","rating":%d}`, rating, rating)
		w := doJSON(t, router, http.MethodPost, "/api/admin/testimonials", body, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("rating %d: status = %d, body = %s", rating, w.Code, w.Body.String())
		}
	}
}

func TestCreateTestimonialGeneratesID(t *testing.T) {
	router := newTestRouter(t)
	cookie := sessionCookie(t, auth.NewSession("admin"))

	body := `{"name":"Jane Shipper","role":"Logistics Manager","company":"Acme Foods","content":"On time.","rating":5}`
	w := doJSON(t, router, http.MethodPost, "/api/admin/testimonials", body, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	tm, ok := resp["testimonial"].(map[string]any)
	if !ok {
		t.Fatalf("response missing testimonial: %v", resp)
	}
	id, _ := tm["id"].(string)
	if id == "" {
		t.Fatal("omitted id not assigned by the server")
	}

	// The assigned id resolves the record for subsequent updates.
	update := fmt.Sprintf(`{"id":%q,"name":"Jane Shipper","role":"Logistics Manager","company":"Acme Foods","content":"Still on time.","rating":4}`, id)
	w = doJSON(t, router, http.MethodPut, "/api/admin/testimonials", update, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update with assigned id: status = %d, body = %s", w.Code, w.Body.String())
	}
}

func multipartUpload(t *testing.T, filename, mimeType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("creating multipart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing multipart: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func uploadRequest(t *testing.T, router http.Handler, filename, mimeType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartUpload(t, filename, mimeType, data)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(sessionCookie(t, auth.NewSession("admin")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	router := newTestRouter(t)

	// No file field at all.
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.AddCookie(sessionCookie(t, auth.NewSession("admin")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("no file: status = %d", w.Code)
	}

	// Wrong MIME type.
	w = uploadRequest(t, router, "report.pdf", "application/pdf", []byte("%PDF"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-image: status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "File must be an image" {
		t.Fatalf("body = %v", body)
	}

	// Over the size limit: rejected with a size message, nothing stored.
	w = uploadRequest(t, router, "huge.jpg", "image/jpeg", make([]byte, model.MaxImageSize+1))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("oversize: status = %d", w.Code)
	}
	if body := decodeBody(t, w); !strings.Contains(body["error"].(string), "size") {
		t.Fatalf("body = %v", body)
	}

	// Happy path.
	w = uploadRequest(t, router, "hero image.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	if w.Code != http.StatusOK {
		t.Fatalf("upload: status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	urlStr, _ := body["url"].(string)
	if !strings.HasPrefix(urlStr, "/uploads/") || !strings.HasSuffix(urlStr, "-hero_image.png") {
		t.Fatalf("url = %q", urlStr)
	}
}

func TestDeleteImage(t *testing.T) {
	router := newTestRouter(t)
	cookie := sessionCookie(t, auth.NewSession("admin"))

	w := doJSON(t, router, http.MethodDelete, "/api/admin/images/delete", "", cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing url: status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/admin/images/delete?url="+url.QueryEscape("/uploads/123-gone.png"), "", cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing image: status = %d", w.Code)
	}

	up := uploadRequest(t, router, "del.png", "image/png", []byte{1, 2, 3})
	if up.Code != http.StatusOK {
		t.Fatalf("upload: status = %d", up.Code)
	}
	imgURL := decodeBody(t, up)["url"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/admin/images/delete?url="+url.QueryEscape(imgURL), "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, body = %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodDelete, "/api/admin/images/delete?url="+url.QueryEscape(imgURL), "", cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete twice: status = %d", w.Code)
	}
}

func TestForms(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/quote",
		`{"name":"Jo","company":"Acme","email":"jo@acme.test","phone":"8005551234","pickupLocation":"Chicago, IL","deliveryLocation":"Dallas, TX","equipmentType":"van","commodity":"parts"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("quote: status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "Quote request submitted successfully" {
		t.Fatalf("body = %v", body)
	}

	// A submission missing required fields is a fault, still JSON.
	w = doJSON(t, router, http.MethodPost, "/api/contact", `{"name":"Jo"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("invalid contact: status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["message"] == nil {
		t.Fatalf("body = %v", body)
	}
}

func TestFAQsAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/faqs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("faqs: status = %d", w.Code)
	}
	var faqs []model.FAQ
	if err := json.Unmarshal(w.Body.Bytes(), &faqs); err != nil {
		t.Fatalf("decoding faqs: %v", err)
	}
	if len(faqs) != 10 {
		t.Fatalf("faqs = %d entries", len(faqs))
	}

	w = doJSON(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health: status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" || body["database"] != "not configured" || body["storage"] != "local" {
		t.Fatalf("body = %v", body)
	}
}
