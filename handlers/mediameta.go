// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/models"
)

type MediaMetaHandler struct {
	cms *cms.Client
}

func NewMediaMetaHandler(client *cms.Client) *MediaMetaHandler {
	return &MediaMetaHandler{cms: client}
}

// Get handles GET /api/strapi-media-meta?fileId={id}. A file without
// metadata, or a CMS that refuses the lookup, yields {"data": null}.
func (h *MediaMetaHandler) Get(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSpace(r.URL.Query().Get("fileId"))
	if fileID == "" {
		middleware.ProxyError(w, http.StatusBadRequest, "fileId is required")
		return
	}

	meta, err := h.cms.FindMediaMeta(r.Context(), models.FlexibleID(fileID))
	if err != nil {
		var apiErr *cms.APIError
		if errors.As(err, &apiErr) {
			slog.Warn("media meta lookup rejected", "file_id", fileID, "status", apiErr.Status)
			middleware.JSONResponse(w, http.StatusOK, models.DataResponse[*models.MediaMeta]{})
			return
		}
		writeCMSError(w, err, "find media meta")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[*models.MediaMeta]{Data: meta})
}

// Save handles POST /api/strapi-media-meta. A documentId updates the
// existing entry; otherwise a new entry is linked to fileId.
func (h *MediaMetaHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgNoToken)
		return
	}

	var req models.MediaMetaInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	saved, err := h.cms.SaveMediaMeta(r.Context(), req)
	if err != nil {
		var apiErr *cms.APIError
		if errors.As(err, &apiErr) && apiErr.Details != "" {
			middleware.JSONResponse(w, apiErr.Status, models.ProxyErrorResponse{
				Error:   apiErr.Message,
				Details: apiErr.Details,
			})
			return
		}
		writeCMSError(w, err, "save media meta")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[json.RawMessage]{Data: saved})
}

// All handles GET /api/strapi-media-meta/all. It always answers 200 so the
// media library can render without category mapping.
func (h *MediaMetaHandler) All(w http.ResponseWriter, r *http.Request) {
	metas, err := h.cms.ListAllMediaMeta(r.Context())
	if err != nil {
		slog.Warn("media meta listing failed, serving empty list", "error", err)
		metas = []models.MediaMetaSummary{}
	}
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]models.MediaMetaSummary]{Data: metas})
}
