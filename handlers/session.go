// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/session"
)

type SessionHandler struct {
	api *apiclient.Client
}

func NewSessionHandler(api *apiclient.Client) *SessionHandler {
	return &SessionHandler{api: api}
}

// Get handles GET /api/session. The visitor's cookies are forwarded to the
// site API and the resolved application context is returned.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	app := session.New(h.api.ForRequest(r).Auth())
	if err := app.LoadProfile(r.Context()); err != nil {
		app.Err = "Session service unavailable"
	}
	middleware.JSONResponse(w, http.StatusOK, app)
}
