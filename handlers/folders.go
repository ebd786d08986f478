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

type FolderHandler struct {
	cms *cms.Client
}

func NewFolderHandler(client *cms.Client) *FolderHandler {
	return &FolderHandler{cms: client}
}

var emptyFolders = models.ProxyErrorResponse{Data: []any{}}

// List handles GET /api/strapi-folders. A missing token or a CMS without
// folder support yields an empty list.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		slog.Warn("STRAPI_UPLOAD_TOKEN is not set, serving no folders")
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]any]{Data: []any{}})
		return
	}

	body, err := h.cms.ListFolders(r.Context())
	if err == nil {
		middleware.RawJSON(w, http.StatusOK, body)
		return
	}

	var apiErr *cms.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]any]{Data: []any{}})
	case errors.As(err, &apiErr):
		slog.Warn("folder listing rejected", "status", apiErr.Status, "message", apiErr.Message)
		resp := emptyFolders
		resp.Error = apiErr.Message
		middleware.JSONResponse(w, apiErr.Status, resp)
	case errors.Is(err, cms.ErrUnavailable):
		slog.Error("CMS unreachable", "url", h.cms.BaseURL(), "error", err)
		resp := emptyFolders
		resp.Error = "Strapi Media Hub is not available. Please ensure Strapi is running on " + h.cms.BaseURL()
		middleware.JSONResponse(w, http.StatusServiceUnavailable, resp)
	default:
		writeCMSError(w, err, "list folders")
	}
}

// Create handles POST /api/strapi-folders
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgServerConfig)
		return
	}
	var body json.RawMessage
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	result, err := h.cms.CreateFolder(r.Context(), body)
	if err != nil {
		writeCMSError(w, err, "create folder")
		return
	}
	middleware.RawJSON(w, http.StatusOK, result)
}

// Update handles PUT /api/strapi-folders?folderId={id}
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	folderID := strings.TrimSpace(r.URL.Query().Get("folderId"))
	if folderID == "" {
		middleware.ProxyError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgServerConfig)
		return
	}
	var body json.RawMessage
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	result, err := h.cms.UpdateFolder(r.Context(), folderID, body)
	if err != nil {
		writeCMSError(w, err, "update folder")
		return
	}
	middleware.RawJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/strapi-folders?folderId={id}
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID := strings.TrimSpace(r.URL.Query().Get("folderId"))
	if folderID == "" {
		middleware.ProxyError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgServerConfig)
		return
	}

	if err := h.cms.DeleteFolder(r.Context(), folderID); err != nil {
		writeCMSError(w, err, "delete folder")
		return
	}
	slog.Info("folder deleted", "folder_id", folderID)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
