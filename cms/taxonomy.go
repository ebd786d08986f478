// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"context"
	"net/http"

	"github.com/polaris-parent/sitegate/models"
)

// ListCategories handles GET /api/categories. rawQuery is forwarded as is.
func (c *Client) ListCategories(ctx context.Context, rawQuery string) ([]models.Category, error) {
	resp, err := c.send(ctx, outbound{
		method:    http.MethodGet,
		path:      "/api/categories",
		rawQuery:  rawQuery,
		authorize: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to fetch categories")
	}
	return decodeList[models.Category](resp.body)
}

// CreateCategory handles POST /api/categories
func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}
	resp, err := c.sendJSON(ctx, http.MethodPost, "/api/categories", models.DataResponse[models.CategoryInput]{Data: in})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to create category")
	}
	return decodeOne[models.Category](resp.body)
}

// ListTags handles GET /api/tags
func (c *Client) ListTags(ctx context.Context, rawQuery string) ([]models.Tag, error) {
	resp, err := c.send(ctx, outbound{
		method:    http.MethodGet,
		path:      "/api/tags",
		rawQuery:  rawQuery,
		authorize: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to fetch tags")
	}
	return decodeList[models.Tag](resp.body)
}

// CreateTag handles POST /api/tags
func (c *Client) CreateTag(ctx context.Context, in models.TagInput) (*models.Tag, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}
	resp, err := c.sendJSON(ctx, http.MethodPost, "/api/tags", models.DataResponse[models.TagInput]{Data: in})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to create tag")
	}
	return decodeOne[models.Tag](resp.body)
}
