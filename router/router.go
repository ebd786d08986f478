// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/cliparse"
	"github.com/polaris-parent/sitegate/cms"
	"github.com/polaris-parent/sitegate/handlers"
	"github.com/polaris-parent/sitegate/locale"
	"github.com/polaris-parent/sitegate/middleware"
)

// NewRouter wires every route. db may be nil when the readiness probe
// should not check the database.
func NewRouter(cfg cliparse.Config, cmsClient *cms.Client, api *apiclient.Client, db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, cmsClient, db)
	categoryHandler := handlers.NewCategoryHandler(cmsClient)
	tagHandler := handlers.NewTagHandler(cmsClient)
	fileHandler := handlers.NewFileHandler(cmsClient, cfg)
	folderHandler := handlers.NewFolderHandler(cmsClient)
	mediaMetaHandler := handlers.NewMediaMetaHandler(cmsClient)
	libraryHandler := handlers.NewLibraryHandler(cmsClient)
	checkoutHandler := handlers.NewCheckoutHandler(api)
	sessionHandler := handlers.NewSessionHandler(api)
	pageHandler := handlers.NewPageHandler(api)

	// Health checks
	mux.HandleFunc("GET /health", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", middleware.WithLogging(healthHandler.Ready))
	mux.HandleFunc("GET /health/config", middleware.WithLogging(healthHandler.Config))

	// CMS proxy (credential stays server side)
	mux.HandleFunc("GET /api/strapi-categories", middleware.WithLogging(categoryHandler.List))
	mux.HandleFunc("POST /api/strapi-categories", middleware.WithLogging(categoryHandler.Create))
	mux.HandleFunc("GET /api/strapi-tags", middleware.WithLogging(tagHandler.List))
	mux.HandleFunc("POST /api/strapi-tags", middleware.WithLogging(tagHandler.Create))
	mux.HandleFunc("GET /api/strapi-media-meta", middleware.WithLogging(mediaMetaHandler.Get))
	mux.HandleFunc("POST /api/strapi-media-meta", middleware.WithLogging(mediaMetaHandler.Save))
	mux.HandleFunc("GET /api/strapi-media-meta/all", middleware.WithLogging(mediaMetaHandler.All))
	mux.HandleFunc("GET /api/strapi-files", middleware.WithLogging(fileHandler.List))
	mux.HandleFunc("POST /api/strapi-upload", middleware.WithLogging(fileHandler.Upload))
	mux.HandleFunc("PUT /api/strapi-upload", middleware.WithLogging(fileHandler.UpdateInfo))
	mux.HandleFunc("DELETE /api/strapi-upload", middleware.WithLogging(fileHandler.Delete))
	mux.HandleFunc("GET /api/strapi-folders", middleware.WithLogging(folderHandler.List))
	mux.HandleFunc("POST /api/strapi-folders", middleware.WithLogging(folderHandler.Create))
	mux.HandleFunc("PUT /api/strapi-folders", middleware.WithLogging(folderHandler.Update))
	mux.HandleFunc("DELETE /api/strapi-folders", middleware.WithLogging(folderHandler.Delete))

	// Media library views
	mux.HandleFunc("GET /api/media/library", middleware.WithLogging(libraryHandler.Files))
	mux.HandleFunc("GET /api/media/folders", middleware.WithLogging(libraryHandler.Folders))

	// Site API backed routes
	mux.HandleFunc("POST /api/checkout", middleware.WithLogging(checkoutHandler.Create))
	mux.HandleFunc("GET /api/session", middleware.WithLogging(sessionHandler.Get))

	// Locale-routed pages. The locale middleware strips the locale prefix,
	// so these patterns never include it.
	pages := http.NewServeMux()
	pages.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))
	pages.HandleFunc("GET /posts", middleware.WithLogging(pageHandler.Posts))
	pages.HandleFunc("GET /posts/{slug}", middleware.WithLogging(pageHandler.Post))
	pages.HandleFunc("GET /products", middleware.WithLogging(pageHandler.Products))
	pages.HandleFunc("GET /products/{id}", middleware.WithLogging(pageHandler.Product))
	mux.Handle("GET /", middleware.Compress(locale.Middleware(pages)))

	return middleware.Recover(middleware.RequestID(middleware.CORS(mux, cfg.CORSOrigins...)))
}
