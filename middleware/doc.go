// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client IP, request id) and completion
(status, human-readable response size, duration_ms).

# Request IDs, Recovery, Compression

	handler := middleware.Recover(middleware.RequestID(mux))
	pages := middleware.Compress(locale.Middleware(pageMux))

RequestID keeps an incoming X-Request-ID or assigns a UUID. Recover turns
panics into {"error": "Internal server error"} with status 500 and logs the
stack. Compress gzips responses for clients that accept it.

# CORS Middleware

Enable cross-origin requests for the admin frontend:

	server := http.Server{
		Handler: middleware.CORS(mux, cfg.CORSOrigins...),
	}

With no origins the request origin is echoed. Allows methods GET, POST,
PUT, DELETE, OPTIONS with headers Content-Type, Authorization, X-CSRF-TOKEN,
X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.RawJSON(w, http.StatusOK, upstreamBody)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ProxyError(w, http.StatusBadRequest, "name is required")

Parse JSON request bodies:

	var req models.CategoryInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
