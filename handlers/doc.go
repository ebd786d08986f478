// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the site gateway.

# Handler Types

Each handler is a struct holding its upstream client:

  - CategoryHandler, TagHandler: CMS taxonomy proxy
  - FileHandler: file listing and uploads
  - FolderHandler: media folders
  - MediaMetaHandler: per-file metadata
  - LibraryHandler: media library in the admin UI shape
  - PageHandler: locale-aware page models
  - CheckoutHandler, SessionHandler: site API actions
  - HealthHandler: liveness, readiness and configuration report

Handlers are created via constructor functions:

	categoryHandler := handlers.NewCategoryHandler(cmsClient)
	fileHandler := handlers.NewFileHandler(cmsClient, cfg)

# Proxy Errors

Proxy routes answer {"error": "<message>"} on failure:

	500 API token not configured   write without STRAPI_UPLOAD_TOKEN
	400 name is required           empty category or tag name
	400 File ID is required        PUT/DELETE upload without ?fileId
	4xx <upstream message>         CMS rejection, status forwarded
	500 Internal server error      transport or parse failure

Write routes check their inputs and the token before any upstream call.

# Degraded Reads

Some reads answer 200 with empty data instead of failing, so the admin
UI keeps rendering:

	GET /api/strapi-tags            401/403/404 or CMS down -> {"data": []}
	GET /api/strapi-media-meta      CMS rejection          -> {"data": null}
	GET /api/strapi-media-meta/all  any failure            -> {"data": []}
	GET /api/strapi-folders         no token or 404        -> {"data": []}

# Pages

Page handlers read the locale from the request context and load data
with the visitor's cookies. A failed data source degrades the page; only
a missing post or product answers 404, with a localized message.
*/
package handlers
