// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/locale"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/site"
)

var postNotFound = map[locale.Locale]string{
	locale.ZhTW: "文章不存在",
	locale.ZhCN: "文章不存在",
	locale.EN:   "Article not found",
	locale.JA:   "記事が見つかりません",
}

var productNotFound = map[locale.Locale]string{
	locale.ZhTW: "產品不存在",
	locale.ZhCN: "产品不存在",
	locale.EN:   "Product Not Found",
	locale.JA:   "製品が見つかりません",
}

// PageHandler serves the page models of the public site. Pages are
// mounted behind locale.Middleware, so the locale always comes from the
// request context.
type PageHandler struct {
	api *apiclient.Client
}

func NewPageHandler(api *apiclient.Client) *PageHandler {
	return &PageHandler{api: api}
}

func (h *PageHandler) loader(r *http.Request) *site.Loader {
	return site.FromClient(h.api.ForRequest(r))
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	l := locale.FromContext(r.Context())
	middleware.JSONResponse(w, http.StatusOK, h.loader(r).Home(r.Context(), l))
}

// Posts handles GET /posts?page=&tag=&category=&search=
func (h *PageHandler) Posts(w http.ResponseWriter, r *http.Request) {
	l := locale.FromContext(r.Context())
	q := r.URL.Query()
	categoryID, _ := strconv.Atoi(q.Get("category"))

	page := h.loader(r).Posts(r.Context(), l, site.PostsQuery{
		Page:       queryInt(q, "page", 1),
		Tag:        q.Get("tag"),
		CategoryID: categoryID,
		Search:     strings.TrimSpace(q.Get("search")),
	})
	middleware.JSONResponse(w, http.StatusOK, page)
}

// Post handles GET /posts/{slug}. ?preview=true shows unpublished posts.
func (h *PageHandler) Post(w http.ResponseWriter, r *http.Request) {
	l := locale.FromContext(r.Context())
	slug := r.PathValue("slug")
	preview := r.URL.Query().Get("preview") == "true"

	page, err := h.loader(r).Post(r.Context(), l, slug, preview)
	if errors.Is(err, site.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, postNotFound[l])
		return
	}
	middleware.JSONResponse(w, http.StatusOK, page)
}

// Products handles GET /products
func (h *PageHandler) Products(w http.ResponseWriter, r *http.Request) {
	l := locale.FromContext(r.Context())
	middleware.JSONResponse(w, http.StatusOK, h.loader(r).Products(r.Context(), l))
}

// Product handles GET /products/{id}?currency=
func (h *PageHandler) Product(w http.ResponseWriter, r *http.Request) {
	l := locale.FromContext(r.Context())
	id := r.PathValue("id")

	page, err := h.loader(r).Product(r.Context(), l, id, strings.ToUpper(r.URL.Query().Get("currency")))
	if errors.Is(err, site.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, productNotFound[l])
		return
	}
	middleware.JSONResponse(w, http.StatusOK, page)
}
