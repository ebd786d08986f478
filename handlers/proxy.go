// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/middleware"
)

// Client-facing messages of the proxy routes
const (
	msgNoToken      = "API token not configured"
	msgServerConfig = "Server configuration error"
	msgInternal     = "Internal server error"
	msgInvalidJSON  = "Invalid JSON"
	msgNameRequired = "name is required"
)

// writeCMSError maps a cms client error to the proxy error body. Upstream
// rejections keep their status and message; anything else is a generic
// 500 so transport details never reach the browser.
func writeCMSError(w http.ResponseWriter, err error, op string) {
	var apiErr *cms.APIError
	switch {
	case errors.As(err, &apiErr):
		slog.Warn("CMS rejected request", "op", op, "status", apiErr.Status, "message", apiErr.Message)
		middleware.ProxyError(w, apiErr.Status, apiErr.Message)
	case errors.Is(err, cms.ErrNoCredential):
		middleware.ProxyError(w, http.StatusInternalServerError, msgNoToken)
	default:
		slog.Error("CMS request failed", "op", op, "error", err)
		middleware.ProxyError(w, http.StatusInternalServerError, msgInternal)
	}
}

// isQuietMiss reports whether a read failure should be served as an empty
// collection: the CMS is down, answered garbage, or the token lacks find
// permission.
func isQuietMiss(err error) bool {
	if errors.Is(err, cms.ErrUnavailable) || errors.Is(err, cms.ErrMalformedEnvelope) {
		return true
	}
	switch cms.StatusOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}
