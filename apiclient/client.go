// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/singleflight"
)

const (
	accessCookie      = "access_token_cookie"
	csrfAccessCookie  = "csrf_access_token"
	csrfRefreshCookie = "csrf_refresh_token"
	csrfHeader        = "X-CSRF-TOKEN"
	refreshEndpoint   = "/auth/refresh"
)

// RequestError is returned for every failed call. Status is zero when the
// request never got an answer.
type RequestError struct {
	Status  int
	Message string
	Errors  map[string]any
	Err     error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return "apiclient: " + e.Message
	}
	return fmt.Sprintf("apiclient: %d %s", e.Status, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}

// Multipart is a pre-encoded multipart/form-data body. Pass a *Multipart
// to Do to send it instead of JSON.
type Multipart struct {
	ContentType string
	Data        []byte
}

// NewMultipart encodes a single file field.
func NewMultipart(field, filename string, r io.Reader) (*Multipart, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Multipart{ContentType: w.FormDataContentType(), Data: buf.Bytes()}, nil
}

// Client calls the site API. The cookie jar carries the visitor's session
// cookies; use ForRequest to get a client scoped to one incoming request.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	refresh *singleflight.Group
}

func newJar() http.CookieJar {
	// cookiejar.New never returns an error
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

// New returns a client for the API rooted at baseURL, for example
// "http://127.0.0.1:5000/api/v1".
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("apiclient: base URL %q must be absolute", baseURL)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout, Jar: newJar()},
		refresh: &singleflight.Group{},
	}, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ForRequest returns a client sharing c's transport whose jar holds the
// cookies of r. Refreshes that overlap in time are merged into one, and a
// call whose access cookie was replaced while it was in flight retries
// without refreshing again.
func (c *Client) ForRequest(r *http.Request) *Client {
	jar := newJar()
	var seeded []*http.Cookie
	for _, ck := range r.Cookies() {
		seeded = append(seeded, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: "/"})
	}
	if len(seeded) > 0 {
		jar.SetCookies(c.baseURL, seeded)
	}
	hc := *c.http
	hc.Jar = jar
	return &Client{baseURL: c.baseURL, http: &hc, refresh: &singleflight.Group{}}
}

func (c *Client) cookie(name string) string {
	if c.http.Jar == nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(c.baseURL) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func (c *Client) endpointURL(endpoint string, params url.Values) string {
	u := c.baseURL.String() + endpoint
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				q.Add(k, v)
			}
		}
	}
	if enc := q.Encode(); enc != "" {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + enc
	}
	return u
}

// Do performs one API call and decodes a successful answer into out, which
// may be nil. A 401 triggers one token refresh and a single retry, except
// for the refresh endpoint itself. When another call already replaced the
// access cookie the retry goes out without a refresh.
func (c *Client) Do(ctx context.Context, method, endpoint string, params url.Values, body, out any) error {
	var payload []byte
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
	case *Multipart:
		payload, contentType = b.Data, b.ContentType
	default:
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return &RequestError{Message: "encode request body", Err: err}
		}
	}

	target := c.endpointURL(endpoint, params)
	sentAccess := c.cookie(accessCookie)
	status, data, err := c.roundTrip(ctx, method, target, contentType, payload, csrfAccessCookie)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !strings.Contains(endpoint, refreshEndpoint) {
		if c.cookie(accessCookie) != sentAccess || c.refreshToken(ctx) {
			slog.Debug("retrying after token refresh", "method", method, "endpoint", endpoint)
			status, data, err = c.roundTrip(ctx, method, target, contentType, payload, csrfAccessCookie)
			if err != nil {
				return err
			}
		}
	}

	if status < 200 || status > 299 {
		return errorFromBody(status, data)
	}
	if status == http.StatusNoContent || out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{Status: status, Message: "invalid response body", Err: err}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, target, contentType string, payload []byte, csrfCookie string) (int, []byte, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return 0, nil, &RequestError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		if tok := c.cookie(csrfCookie); tok != "" {
			req.Header.Set(csrfHeader, tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &RequestError{Status: resp.StatusCode, Message: err.Error(), Err: err}
	}
	return resp.StatusCode, data, nil
}

// refreshToken exchanges the refresh cookie for a new access cookie.
func (c *Client) refreshToken(ctx context.Context) bool {
	v, _, _ := c.refresh.Do("refresh", func() (any, error) {
		status, _, err := c.roundTrip(ctx, http.MethodPost, c.baseURL.String()+refreshEndpoint,
			"application/json", nil, csrfRefreshCookie)
		if err != nil {
			slog.Warn("token refresh failed", "error", err)
			return false, nil
		}
		return status >= 200 && status <= 299, nil
	})
	ok, _ := v.(bool)
	return ok
}

func errorFromBody(status int, data []byte) *RequestError {
	var body struct {
		Message string         `json:"message"`
		Error   string         `json:"error"`
		Errors  map[string]any `json:"errors"`
	}
	re := &RequestError{Status: status}
	if err := json.Unmarshal(data, &body); err == nil {
		re.Message = body.Message
		if re.Message == "" {
			re.Message = body.Error
		}
		re.Errors = body.Errors
	}
	if re.Message == "" {
		re.Message = http.StatusText(status)
	}
	if re.Message == "" {
		re.Message = "An error occurred"
	}
	return re
}
