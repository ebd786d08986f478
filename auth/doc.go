// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the upstream CMS credential.

# Credential

The gateway owns a single bearer token (STRAPI_UPLOAD_TOKEN) and attaches it
to outbound CMS requests. Browsers never see it.

	cred := auth.NewCredential(os.Getenv("STRAPI_UPLOAD_TOKEN"))
	if cred.IsZero() {
		// write routes answer 500
	}
	cred.Apply(req) // Authorization: Bearer <token>

The token is loaded once at startup and never changes.

# Logging

String and GoString are redacted, so a Credential can be passed to slog
or fmt without leaking the token. Fingerprint returns the first 8 bytes
(16 hex chars) of an HMAC-SHA256 digest for startup logs:

	slog.Info("cms credential", "fingerprint", cred.Fingerprint())
*/
package auth
