// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import "strings"

// Action is what the middleware does with a request.
type Action int

const (
	// ActionPass forwards the request untouched.
	ActionPass Action = iota
	// ActionTag serves a locale-prefixed path and refreshes the cookie.
	ActionTag
	// ActionRedirect sends the visitor to their stored locale.
	ActionRedirect
	// ActionDefault serves the default locale at the unprefixed path.
	ActionDefault
)

func (a Action) String() string {
	switch a {
	case ActionPass:
		return "pass"
	case ActionTag:
		return "tag"
	case ActionRedirect:
		return "redirect"
	case ActionDefault:
		return "default"
	}
	return "unknown"
}

// Decision is the outcome of Resolve. Path is the path to route for ActionTag
// (locale segment removed) and the redirect target for ActionRedirect.
type Decision struct {
	Action Action
	Locale Locale
	Path   string
}

var excludedPrefixes = []string{"/admin", "/api", "/_next"}

// Resolve decides how to serve path given the locale cookie value.
// The checks run in a fixed order: exclusions, locale prefix, cookie.
func Resolve(path, cookie string) Decision {
	if excluded(path) {
		return Decision{Action: ActionPass, Path: path}
	}

	for _, l := range supported {
		prefix := "/" + string(l)
		if path == prefix {
			return Decision{Action: ActionTag, Locale: l, Path: "/"}
		}
		if strings.HasPrefix(path, prefix+"/") {
			return Decision{Action: ActionTag, Locale: l, Path: path[len(prefix):]}
		}
	}

	if l, ok := Parse(cookie); ok && l != Default {
		return Decision{Action: ActionRedirect, Locale: l, Path: "/" + string(l) + path}
	}

	return Decision{Action: ActionDefault, Locale: Default, Path: path}
}

// excluded reports whether path bypasses locale handling. Anything with a
// dot is treated as a static file.
func excluded(path string) bool {
	for _, p := range excludedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return strings.Contains(path, ".")
}
