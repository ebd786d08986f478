// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// fingerprintKey is mixed into Fingerprint so the digest cannot be
// compared against unkeyed hashes of leaked tokens.
const fingerprintKey = "sitegate-credential"

// Credential is the server-held bearer token for the upstream CMS.
// The zero value means no token is configured.
type Credential struct {
	token string
}

// NewCredential wraps token. Surrounding whitespace is dropped; a blank
// token yields the zero Credential.
func NewCredential(token string) Credential {
	return Credential{token: strings.TrimSpace(token)}
}

// IsZero reports whether no token is configured
func (c Credential) IsZero() bool {
	return c.token == ""
}

// Apply sets the Authorization header on req. It does nothing for the
// zero Credential.
func (c Credential) Apply(req *http.Request) {
	if c.IsZero() {
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// String never reveals the token.
func (c Credential) String() string {
	if c.IsZero() {
		return "<none>"
	}
	return "<redacted>"
}

// GoString keeps %#v from printing the token.
func (c Credential) GoString() string {
	return "auth.Credential{" + c.String() + "}"
}

// Fingerprint returns a short HMAC-SHA256 digest of the token, safe for
// logs. Operators can tell two deployments apart without seeing the token.
func (c Credential) Fingerprint() string {
	if c.IsZero() {
		return ""
	}
	h := hmac.New(sha256.New, []byte(fingerprintKey))
	h.Write([]byte(c.token))
	sum := h.Sum(nil)
	// First 8 bytes (16 hex chars) is enough to compare deployments
	return hex.EncodeToString(sum[:8])
}

// Equal reports whether c and other hold the same token, in constant time.
func (c Credential) Equal(other Credential) bool {
	return hmac.Equal([]byte(c.token), []byte(other.token))
}
