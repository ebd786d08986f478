// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/auth"
	"github.com/polaris-parent/sitegate/models"
)

// DefaultTimeout bounds a single upstream call when the caller does not
// supply its own http.Client.
const DefaultTimeout = 30 * time.Second

var (
	ErrNoCredential      = errors.New("cms: API token not configured")
	ErrMalformedEnvelope = errors.New("cms: malformed response envelope")
	ErrUnavailable       = errors.New("cms: upstream unavailable")
)

// APIError is a non-2xx answer from the CMS. Message is the upstream
// error.message when the body carries one, otherwise the operation's
// generic message. Details holds the raw body.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cms: upstream status %d: %s", e.Status, e.Message)
}

// StatusOf returns the upstream status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the CMS REST API on behalf of the proxy routes.
type Client struct {
	baseURL string
	cred    auth.Credential
	http    *http.Client
}

// NewClient creates a client for the CMS at baseURL. A nil hc gets a
// client with DefaultTimeout.
func NewClient(baseURL string, cred auth.Credential, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cred:    cred,
		http:    hc,
	}
}

// BaseURL returns the configured CMS origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasCredential reports whether a bearer token is configured.
func (c *Client) HasCredential() bool {
	return !c.cred.IsZero()
}

// Fingerprint identifies the configured token without revealing it.
func (c *Client) Fingerprint() string {
	return c.cred.Fingerprint()
}

func (c *Client) requireCredential() error {
	if c.cred.IsZero() {
		return ErrNoCredential
	}
	return nil
}

type outbound struct {
	method      string
	path        string
	rawQuery    string
	body        io.Reader
	length      int64
	contentType string
	authorize   bool
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// apiError builds the error for a rejected call, preferring the
// upstream's own message over fallback.
func (r response) apiError(fallback string) *APIError {
	msg := fallback
	var ue models.UpstreamError
	if err := json.Unmarshal(r.body, &ue); err == nil && ue.Error.Message != "" {
		msg = ue.Error.Message
	}
	return &APIError{Status: r.status, Message: msg, Details: string(r.body)}
}

// send performs one upstream call and reads the whole body.
// Transport failures are wrapped in ErrUnavailable.
func (c *Client) send(ctx context.Context, o outbound) (response, error) {
	u := c.baseURL + o.path
	if o.rawQuery != "" {
		u += "?" + o.rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, o.method, u, o.body)
	if err != nil {
		return response{}, fmt.Errorf("cms: build request: %w", err)
	}
	if o.length > 0 {
		req.ContentLength = o.length
	}
	if o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if o.authorize {
		c.cred.Apply(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	return response{status: resp.StatusCode, body: body}, nil
}

// sendJSON marshals payload and sends it with the credential attached.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) (response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return response{}, fmt.Errorf("cms: encode payload: %w", err)
	}
	return c.send(ctx, outbound{
		method:      method,
		path:        path,
		body:        bytes.NewReader(b),
		contentType: "application/json",
		authorize:   true,
	})
}

// Ping checks that the CMS answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, outbound{method: http.MethodGet, path: "/_health"})
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.apiError("CMS health check failed")
	}
	return nil
}
