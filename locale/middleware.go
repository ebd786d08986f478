// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"log/slog"
	"net/http"
)

// Middleware applies Resolve to every request before it reaches next.
// Locale-prefixed requests are routed with the prefix removed, so
// /ja/posts is served by the handler for /posts.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cookie string
		if c, err := r.Cookie(CookieName); err == nil {
			cookie = c.Value
		}

		d := Resolve(r.URL.Path, cookie)
		switch d.Action {
		case ActionPass:
			next.ServeHTTP(w, r)

		case ActionTag:
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    string(d.Locale),
				Path:     "/",
				SameSite: http.SameSiteLaxMode,
			})
			r2 := r.WithContext(WithLocale(r.Context(), d.Locale))
			u := *r.URL
			u.Path = d.Path
			u.RawPath = ""
			r2.URL = &u
			next.ServeHTTP(w, r2)

		case ActionRedirect:
			target := d.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			slog.Debug("locale redirect", "from", r.URL.Path, "to", target)
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)

		default:
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), d.Locale)))
		}
	})
}
