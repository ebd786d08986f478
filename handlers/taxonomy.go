// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/models"
)

type CategoryHandler struct {
	cms *cms.Client
}

func NewCategoryHandler(client *cms.Client) *CategoryHandler {
	return &CategoryHandler{cms: client}
}

// List handles GET /api/strapi-categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.cms.ListCategories(r.Context(), r.URL.RawQuery)
	if err != nil {
		writeCMSError(w, err, "list categories")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]models.Category]{Data: categories})
}

// Create handles POST /api/strapi-categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgNoToken)
		return
	}

	var req models.CategoryInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ProxyError(w, http.StatusBadRequest, msgNameRequired)
		return
	}

	category, err := h.cms.CreateCategory(r.Context(), req)
	if err != nil {
		writeCMSError(w, err, "create category")
		return
	}

	slog.Info("category created", "id", category.ID, "name", category.Name)
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[*models.Category]{Data: category})
}

type TagHandler struct {
	cms *cms.Client
}

func NewTagHandler(client *cms.Client) *TagHandler {
	return &TagHandler{cms: client}
}

// List handles GET /api/strapi-tags. When the CMS is down or the token may
// not read tags, the list is empty rather than an error so tag pickers
// still render.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.cms.ListTags(r.Context(), r.URL.RawQuery)
	if err != nil {
		if isQuietMiss(err) {
			slog.Warn("tags unavailable, serving empty list; grant find on Tag to the API token", "status", cms.StatusOf(err))
			middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]models.Tag]{Data: []models.Tag{}})
			return
		}
		writeCMSError(w, err, "list tags")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]models.Tag]{Data: tags})
}

// Create handles POST /api/strapi-tags
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		middleware.ProxyError(w, http.StatusInternalServerError, msgNoToken)
		return
	}

	var req models.TagInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ProxyError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ProxyError(w, http.StatusBadRequest, msgNameRequired)
		return
	}

	tag, err := h.cms.CreateTag(r.Context(), req)
	if err != nil {
		writeCMSError(w, err, "create tag")
		return
	}

	slog.Info("tag created", "id", tag.ID, "name", tag.Name)
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[*models.Tag]{Data: tag})
}
