// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package site builds the JSON page models served at the locale-routed
public paths, and places orders for checkout.

	loader := site.FromClient(api.ForRequest(r))
	page := loader.Home(ctx, locale.FromContext(ctx))

Pages degrade instead of failing: a site API error is logged and the page
is returned with empty collections and Degraded set. Only a missing post
or product is an error (ErrNotFound).

Prices are rendered with the currency package for the page's locale.
*/
package site
