// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package currency formats product prices for display.
package currency

import (
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/polaris-parent/sitegate/locale"
)

// Default is used when a product or order names no currency.
const Default = "TWD"

var symbols = map[string]string{
	"TWD": "NT$",
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"GBP": "£",
	"CNY": "¥",
	"HKD": "HK$",
	"SGD": "S$",
}

// Display order for currency selectors.
var codes = []string{"TWD", "USD", "EUR", "JPY", "GBP", "CNY", "HKD", "SGD"}

var names = map[string]map[locale.Locale]string{
	"TWD": {locale.ZhTW: "新台幣", locale.EN: "TWD", locale.JA: "台湾ドル"},
	"USD": {locale.ZhTW: "美元", locale.EN: "USD", locale.JA: "米ドル"},
	"EUR": {locale.ZhTW: "歐元", locale.EN: "EUR", locale.JA: "ユーロ"},
	"JPY": {locale.ZhTW: "日圓", locale.EN: "JPY", locale.JA: "日本円"},
	"GBP": {locale.ZhTW: "英鎊", locale.EN: "GBP", locale.JA: "ポンド"},
	"CNY": {locale.ZhTW: "人民幣", locale.EN: "CNY", locale.JA: "人民元"},
	"HKD": {locale.ZhTW: "港幣", locale.EN: "HKD", locale.JA: "香港ドル"},
	"SGD": {locale.ZhTW: "新加坡幣", locale.EN: "SGD", locale.JA: "シンガポールドル"},
}

// Currencies without minor units in everyday pricing.
var wholeUnits = map[string]bool{"JPY": true, "TWD": true, "KRW": true}

// Supported returns the selectable currency codes.
func Supported() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// Valid reports whether code is a supported currency.
func Valid(code string) bool {
	_, ok := symbols[code]
	return ok
}

// Symbol returns the display symbol for code, or code itself when unknown.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// Name returns the localized currency name, or code when no translation
// exists for l.
func Name(code string, l locale.Locale) string {
	if n, ok := names[code][l]; ok {
		return n
	}
	return code
}

// Decimals returns the number of fraction digits shown for code.
func Decimals(code string) int {
	if wholeUnits[code] {
		return 0
	}
	return 2
}

// FormatPrice renders amount as "<symbol> <number>" with grouping for l,
// for example "NT$ 1,200" or "$ 19.90". An empty code means Default.
func FormatPrice(amount float64, code string, l locale.Locale) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = Default
	}
	d := Decimals(code)
	p := message.NewPrinter(l.Tag())
	formatted := p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(d),
		number.MaxFractionDigits(d),
	))
	return Symbol(code) + " " + formatted
}
