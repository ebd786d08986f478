// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Response envelopes

// DataResponse is the success envelope shared by every proxy route.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ProxyErrorResponse is the failure body returned by the proxy routes.
// Data is only set by routes whose callers expect an empty collection
// next to the error.
type ProxyErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UpstreamError is the error body the CMS sends on rejection:
// {"error": {"status": 400, "name": "...", "message": "..."}}
type UpstreamError struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// FlexibleID accepts either a JSON number or a JSON string. The CMS and the
// admin forms are not consistent about which one they send for record ids.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	*id = FlexibleID(b)
	return nil
}

// MarshalJSON emits numeric ids as numbers so the CMS treats them as
// relation ids rather than document ids.
func (id FlexibleID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id FlexibleID) String() string {
	return string(id)
}

// Int returns the numeric value of the id, or false when it is not numeric.
func (id FlexibleID) Int() (int, bool) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, false
	}
	return n, true
}
