// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/cliparse"
	"github.com/polaris-parent/sitegate/db"
)

// TestToken is the CMS token used by GetTestConfig
const TestToken = "test-cms-token"

// Call is one request received by a FakeUpstream
type Call struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	CSRFToken     string
	Cookie        string
	Body          []byte
}

// FakeUpstream is a recording stand-in for the CMS or the site API
type FakeUpstream struct {
	*httptest.Server

	mu    sync.Mutex
	calls []Call
}

// NewFakeUpstream starts a server that records every request before
// passing it to handler. The server is closed when the test ends.
func NewFakeUpstream(t *testing.T, handler http.HandlerFunc) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		f.mu.Lock()
		f.calls = append(f.calls, Call{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			CSRFToken:     r.Header.Get("X-CSRF-TOKEN"),
			Cookie:        r.Header.Get("Cookie"),
			Body:          body,
		})
		f.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

// Calls returns a copy of the recorded requests
func (f *FakeUpstream) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many requests were received
func (f *FakeUpstream) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// LastCall returns the most recent request. It fails the test when
// nothing was received.
func (f *FakeUpstream) LastCall(t *testing.T) Call {
	t.Helper()
	calls := f.Calls()
	if len(calls) == 0 {
		t.Fatal("expected at least one upstream call")
	}
	return calls[len(calls)-1]
}

// WriteJSON writes v as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StrapiError writes the CMS error envelope
func StrapiError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]interface{}{
		"data": nil,
		"error": map[string]interface{}{
			"status":  status,
			"name":    http.StatusText(status),
			"message": message,
		},
	})
}

// SetupTestDB opens an in-memory sqlite database
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.Config{Client: db.ClientSQLite, Filename: ":memory:", PoolMin: 1, PoolMax: 1})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration pointing at the
// given CMS and site API base URLs
func GetTestConfig(cmsURL, apiURL string) cliparse.Config {
	return cliparse.Config{
		Port:            3000,
		CMSURL:          cmsURL,
		CMSToken:        TestToken,
		APIURL:          apiURL,
		UpstreamTimeout: 5 * time.Second,
		UploadLimit:     "1MB",
		MaxUploadBytes:  1_000_000,
		Database: db.Config{
			Client:   db.ClientSQLite,
			Filename: ":memory:",
			PoolMin:  1,
			PoolMax:  1,
		},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertNoCalls fails the test when the upstream received any request
func AssertNoCalls(t *testing.T, f *FakeUpstream) {
	t.Helper()
	if n := f.CallCount(); n != 0 {
		t.Errorf("Expected no upstream calls, got %d: %+v", n, f.Calls())
	}
}
