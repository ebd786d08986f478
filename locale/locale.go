// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"context"

	"golang.org/x/text/language"
)

// Locale is a supported site language.
type Locale string

const (
	ZhTW Locale = "zh-TW"
	ZhCN Locale = "zh-CN"
	EN   Locale = "en"
	JA   Locale = "ja"
)

// Default is served at unprefixed paths.
const Default = ZhTW

// CookieName holds the visitor's last explicit locale choice.
const CookieName = "NEXT_LOCALE"

var supported = []Locale{ZhTW, ZhCN, EN, JA}

var tags = map[Locale]language.Tag{
	ZhTW: language.MustParse("zh-Hant-TW"),
	ZhCN: language.MustParse("zh-Hans-CN"),
	EN:   language.English,
	JA:   language.Japanese,
}

var names = map[Locale]string{
	ZhTW: "繁體中文",
	ZhCN: "简体中文",
	EN:   "English",
	JA:   "日本語",
}

// Supported returns the supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse reports whether s is exactly one of the supported locales.
func Parse(s string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l Locale) String() string {
	return string(l)
}

// Tag returns the language tag for l. Unsupported values map to the
// default locale's tag.
func (l Locale) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return tags[Default]
}

// Label returns the BCP 47 value for an HTML lang attribute.
func Label(l Locale) string {
	return l.Tag().String()
}

// Name returns the locale's name in its own language.
func Name(l Locale) string {
	if n, ok := names[l]; ok {
		return n
	}
	return names[Default]
}

type contextKey struct{}

// WithLocale returns a copy of ctx carrying l.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request locale, or Default when none was stored.
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(contextKey{}).(Locale); ok {
		return l
	}
	return Default
}
