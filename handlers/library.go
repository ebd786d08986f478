// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/media"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/models"
)

const (
	defaultLibraryPerPage = 24
	maxLibraryPerPage     = 100
)

// LibraryHandler serves the media library in the admin UI's shape,
// built on the same CMS calls as the raw proxy routes.
type LibraryHandler struct {
	cms *cms.Client
}

func NewLibraryHandler(client *cms.Client) *LibraryHandler {
	return &LibraryHandler{cms: client}
}

func queryInt(q url.Values, key string, def int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Files handles GET /api/media/library?page=&perPage=&folder=&search=
func (h *LibraryHandler) Files(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt(q, "page", 1)
	perPage := min(queryInt(q, "perPage", defaultLibraryPerPage), maxLibraryPerPage)

	upstream := url.Values{}
	upstream.Set("sort", "createdAt:desc")
	upstream.Set("pagination[page]", strconv.Itoa(page))
	upstream.Set("pagination[pageSize]", strconv.Itoa(perPage))
	if folder := q.Get("folder"); folder != "" {
		upstream.Set("filters[folder][id][$eq]", folder)
	}
	if search := q.Get("search"); search != "" {
		upstream.Set("filters[name][$containsi]", search)
	}

	body, err := h.cms.ListFiles(r.Context(), upstream.Encode())
	if err != nil {
		slog.Error("Failed to fetch media library", "error", err)
		middleware.JSONResponse(w, http.StatusOK, media.EmptyPage(perPage))
		return
	}

	result, err := media.ParseFileList(body)
	if err != nil {
		slog.Error("Failed to parse media library", "error", err)
		middleware.JSONResponse(w, http.StatusOK, media.EmptyPage(perPage))
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}

// Folders handles GET /api/media/folders. ?flat=true returns the tree
// flattened depth-first with a depth per folder, for select inputs.
func (h *LibraryHandler) Folders(w http.ResponseWriter, r *http.Request) {
	if !h.cms.HasCredential() {
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]*media.Folder]{Data: []*media.Folder{}})
		return
	}

	body, err := h.cms.ListFolders(r.Context())
	if err != nil {
		slog.Warn("Failed to fetch folders", "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]*media.Folder]{Data: []*media.Folder{}})
		return
	}
	folders, err := media.ParseFolders(body)
	if err != nil {
		slog.Warn("Failed to parse folders", "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]*media.Folder]{Data: []*media.Folder{}})
		return
	}

	tree := media.BuildFolderTree(folders)
	if r.URL.Query().Get("flat") == "true" {
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]media.FlatFolder]{Data: media.FlattenFolderTree(tree)})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse[[]*media.Folder]{Data: tree})
}
