// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/polaris-parent/sitegate/cliparse"
	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/db"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/storage"
)

const readyTimeout = 5 * time.Second

type HealthHandler struct {
	cfg  cliparse.Config
	cms  *cms.Client
	conn *sql.DB
}

// NewHealthHandler builds the health routes. conn may be nil, in which
// case readiness only checks the CMS.
func NewHealthHandler(cfg cliparse.Config, client *cms.Client, conn *sql.DB) *HealthHandler {
	return &HealthHandler{cfg: cfg, cms: client, conn: conn}
}

// Live handles GET /health
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type CheckResult struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Version string `json:"version,omitempty"`
}

type ReadyResponse struct {
	Ready    bool                   `json:"ready"`
	Checks   map[string]CheckResult `json:"checks"`
	Duration string                 `json:"duration"`
}

// Ready handles GET /health/ready. It answers 503 when any dependency is
// unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	resp := ReadyResponse{Ready: true, Checks: map[string]CheckResult{}}

	if err := h.cms.Ping(ctx); err != nil {
		slog.Warn("CMS not ready", "url", h.cms.BaseURL(), "error", err)
		resp.Ready = false
		resp.Checks["cms"] = CheckResult{Error: err.Error()}
	} else {
		resp.Checks["cms"] = CheckResult{OK: true}
	}

	if h.conn != nil {
		check := CheckResult{OK: true}
		if err := db.Ping(ctx, h.conn, h.cfg.Database.ConnectionTimeout()); err != nil {
			slog.Warn("database not ready", "error", err)
			resp.Ready = false
			check = CheckResult{Error: err.Error()}
		} else if v, err := db.Version(ctx, h.conn, h.cfg.Database.Client); err == nil {
			check.Version = v
		}
		resp.Checks["database"] = check
	}

	resp.Duration = time.Since(start).Round(time.Millisecond).String()
	status := http.StatusOK
	if !resp.Ready {
		status = http.StatusServiceUnavailable
	}
	middleware.JSONResponse(w, status, resp)
}

type ConfigResponse struct {
	CMSURL           string             `json:"cms_url"`
	APIURL           string             `json:"api_url"`
	TokenFingerprint string             `json:"token_fingerprint,omitempty"`
	UploadLimit      string             `json:"upload_limit"`
	Database         string             `json:"database"`
	Storage          storage.Resolution `json:"storage"`
}

// Config handles GET /health/config. No secret is ever included: the
// token is reported by fingerprint and the database by its redacted DSN.
func (h *HealthHandler) Config(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, ConfigResponse{
		CMSURL:           h.cms.BaseURL(),
		APIURL:           h.cfg.APIURL,
		TokenFingerprint: h.cms.Fingerprint(),
		UploadLimit:      h.cfg.UploadLimit,
		Database:         h.cfg.Database.Redacted(),
		Storage:          storage.Resolve(h.cfg.Storage),
	})
}
