// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Polaris site gateway.

The gateway sits in front of the headless CMS and the site API. It
resolves the visitor's locale, serves page data for the public site, and
proxies media library calls to the CMS with a server-held token.

# Starting the Server

Configuration comes from the environment (and .env.local / .env when
present), with CLI flags on top:

	STRAPI_UPLOAD_TOKEN=... go run .

Or with flags:

	go run . -p 3000 -cms-url http://localhost:1337 -api-url http://127.0.0.1:5000/api/v1

# Configuration

  - PORT (-p): Server port (default: 3000)
  - STRAPI_INTERNAL_URL, NEXT_PUBLIC_STRAPI_URL (-cms-url): CMS origin
  - STRAPI_UPLOAD_TOKEN (-cms-token): CMS bearer token; writes are refused without it
  - NEXT_SERVER_API_URL, NEXT_PUBLIC_API_URL (-api-url): site API root
  - UPSTREAM_TIMEOUT (-timeout): per-call upstream timeout (default: 30s)
  - MAX_UPLOAD_SIZE (-upload-limit): upload body limit (default: 50MB)
  - CORS_ORIGINS: comma separated allow list; empty echoes the request origin
  - DATABASE_*: CMS database, checked by /health/ready when DATABASE_READINESS=true
  - GCS_BUCKET_NAME, GCS_SERVICE_ACCOUNT_JSON, GCS_BASE_PATH: media storage report

# Architecture

  - locale: locale resolution middleware
  - cms: CMS REST client
  - apiclient: site API client with token refresh
  - site: page loaders and checkout
  - session: per-request signed-in state
  - media, currency: display helpers
  - handlers: HTTP handlers (proxy, pages, health)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, recovery, request ids, CORS, gzip, JSON helpers
  - models: wire types
  - auth: upstream credential
  - db, storage: CMS infrastructure configuration
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
