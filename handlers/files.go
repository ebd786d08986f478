// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/cliparse"
	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/models"
)

type FileHandler struct {
	cms      *cms.Client
	maxBytes int64
}

func NewFileHandler(client *cms.Client, cfg cliparse.Config) *FileHandler {
	return &FileHandler{cms: client, maxBytes: cfg.MaxUploadBytes}
}

// List handles GET /api/strapi-files. The query string is forwarded as is
// and the CMS body is returned untouched.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	body, err := h.cms.ListFiles(r.Context(), r.URL.RawQuery)
	if err != nil {
		writeCMSError(w, err, "list files")
		return
	}
	middleware.RawJSON(w, http.StatusOK, body)
}

// Upload handles POST /api/strapi-upload
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		slog.Error("STRAPI_UPLOAD_TOKEN is not set")
		middleware.ProxyError(w, http.StatusInternalServerError, msgServerConfig)
		return
	}

	contentType := r.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" || params["boundary"] == "" {
		middleware.ProxyError(w, http.StatusBadRequest, "Expected multipart/form-data body")
		return
	}

	if h.maxBytes > 0 && r.ContentLength > h.maxBytes {
		slog.Warn("upload rejected", "size", humanize.Bytes(uint64(r.ContentLength)), "limit", humanize.Bytes(uint64(h.maxBytes)))
		middleware.ProxyError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	body := io.Reader(r.Body)
	if h.maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	slog.Info("forwarding upload", "size", uploadSize(r.ContentLength), "client_ip", middleware.GetClientIP(r))
	result, err := h.cms.Upload(r.Context(), contentType, body, r.ContentLength)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ProxyError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeCMSError(w, err, "upload")
		return
	}
	middleware.RawJSON(w, http.StatusOK, result)
}

func uploadSize(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(n))
}

// UpdateInfo handles PUT /api/strapi-upload?fileId={id}. The JSON body is
// the file info (name, alternativeText, caption, folder).
func (h *FileHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSpace(r.URL.Query().Get("fileId"))
	if fileID == "" {
		middleware.ProxyError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgServerConfig)
		return
	}

	var info json.RawMessage
	if err := middleware.ParseJSONBody(r, &info); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	result, err := h.cms.UpdateFileInfo(r.Context(), fileID, info)
	if err != nil {
		writeCMSError(w, err, "update file info")
		return
	}
	middleware.RawJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/strapi-upload?fileId={id}
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSpace(r.URL.Query().Get("fileId"))
	if fileID == "" {
		middleware.ProxyError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgServerConfig)
		return
	}

	if err := h.cms.DeleteFile(r.Context(), fileID); err != nil {
		writeCMSError(w, err, "delete file")
		return
	}

	slog.Info("file deleted", "file_id", fileID)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
