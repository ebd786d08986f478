// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the site gateway.

# Route Registration

NewRouter returns the complete handler, wrapped in Recover, RequestID and
CORS:

	handler := router.NewRouter(cfg, cmsClient, api, db)

# Endpoints

Health:

	GET /health        - Liveness
	GET /health/ready  - CMS and database reachability (503 when down)
	GET /health/config - Resolved configuration, secrets redacted

CMS proxy (the token never leaves the server):

	GET|POST               /api/strapi-categories
	GET|POST               /api/strapi-tags
	GET|POST               /api/strapi-media-meta
	GET                    /api/strapi-media-meta/all
	GET                    /api/strapi-files
	POST|PUT|DELETE        /api/strapi-upload
	GET|POST|PUT|DELETE    /api/strapi-folders

Media library:

	GET /api/media/library - Paged files in the admin shape
	GET /api/media/folders - Folder tree (?flat=true for a depth list)

Site API:

	POST /api/checkout - Create an order, return the payment URL
	GET  /api/session  - Signed-in user for the visitor's cookies

Pages (locale routed, gzip compressed):

	GET /               GET /posts          GET /posts/{slug}
	GET /products       GET /products/{id}

Each page is also reachable under a locale prefix (/en/posts). A visitor
whose NEXT_LOCALE cookie names a non-default locale is redirected to the
prefixed path.
*/
package router
