// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the typed client for the site API (content, catalog,
orders, settings, users).

	api, err := apiclient.New(cfg.APIURL, cfg.UpstreamTimeout)
	posts, err := api.Contents().List(ctx, apiclient.ContentListParams{Language: "ja"})

# Sessions

The site API authenticates with cookies. A handler acting for a visitor
scopes the client to the incoming request so the visitor's cookies are sent
and nothing is shared between requests:

	scoped := api.ForRequest(r)
	user, err := scoped.Auth().Profile(ctx)

Non-GET calls carry the csrf_access_token cookie value in X-CSRF-TOKEN.
A 401 triggers one POST /auth/refresh (deduplicated across concurrent calls
on the same scoped client) and a single retry.

# Errors

Every failure is a *RequestError. Status is 0 for transport failures;
otherwise Message comes from the body's "message" field or the status text.

	if apiclient.StatusOf(err) == http.StatusUnauthorized {
		...
	}
*/
package apiclient
