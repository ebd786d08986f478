// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

.env.local and then .env are loaded first when they exist. Variables
already present in the process environment are never overridden.

# Config Fields

  - Port: Server listen port (default: 3000)
  - CMSURL: CMS base URL (default: http://localhost:1337)
  - CMSToken: CMS bearer token, optional; write routes answer 500 without it
  - APIURL: Site API base URL (default: http://127.0.0.1:5000/api/v1)
  - UpstreamTimeout: Per-call upstream timeout (default: 30s)
  - MaxUploadBytes: Upload size cap parsed from UploadLimit (default: 50MB)
  - CORSOrigins: Allowed origins; empty echoes the request origin
  - Database: CMS database settings, see package db
  - Storage: media storage settings, see package storage

# CLI Flags

	-p             Server port
	-cms-url       CMS base URL
	-api-url       Site API base URL
	-cms-token     CMS API token
	-timeout       Upstream timeout
	-upload-limit  Maximum upload size

# Environment Variables

	PORT                   → -p
	STRAPI_INTERNAL_URL    → -cms-url
	NEXT_PUBLIC_STRAPI_URL → -cms-url (when STRAPI_INTERNAL_URL is unset)
	NEXT_SERVER_API_URL    → -api-url
	NEXT_PUBLIC_API_URL    → -api-url (when NEXT_SERVER_API_URL is unset)
	STRAPI_UPLOAD_TOKEN    → -cms-token
	UPSTREAM_TIMEOUT       → -timeout
	MAX_UPLOAD_SIZE        → -upload-limit
	CORS_ORIGINS           comma separated

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - the port is outside 1-65535
  - an upstream URL is not absolute http(s)
  - the upload limit does not parse (humanize format: 50MB, 1GiB)
  - DATABASE_READINESS is set and the database settings are invalid
*/
package cliparse
