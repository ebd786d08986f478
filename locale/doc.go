// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package locale resolves the request locale for the public site.

# Supported Locales

	zh-TW (default), zh-CN, en, ja

The default locale is served at unprefixed paths. Every other locale lives
under its own path segment (/ja/posts, /en/products/42).

# Resolution Order

Resolve takes the request path and the NEXT_LOCALE cookie value and checks,
in order:

 1. Excluded paths (/admin, /api, /_next, anything containing a dot): pass
 2. Locale-prefixed paths (/ja or /ja/...): tag, refresh the cookie
 3. Cookie naming a supported non-default locale: 307 to /<cookie><path>
 4. Otherwise: default locale, no redirect, cookie left alone

A cookie value outside the supported set is ignored.

# Middleware

	pages := http.NewServeMux()
	pages.HandleFunc("GET /posts", h.Posts)
	mux.Handle("GET /", locale.Middleware(pages))

Handlers read the locale with FromContext:

	lang := locale.FromContext(r.Context())

# Labels

Label returns the BCP 47 tag for HTML lang attributes (zh-Hant-TW,
zh-Hans-CN, en, ja). Name returns the locale's own display name.
*/
package locale
