// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage reports which media storage provider the CMS will use.

Uploads are stored by the CMS, not the gateway. The gateway reads the same
variables to surface misconfiguration early through /health/config:

	GCS_BUCKET_NAME           bucket; empty means local storage
	GCS_SERVICE_ACCOUNT_JSON  service account key JSON
	GCS_BASE_PATH             object prefix (default: media)

Resolve returns a Resolution without the private key, so it is safe to log
and to serve.
*/
package storage
