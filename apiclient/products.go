// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/polaris-parent/sitegate/models"
)

type ProductListParams struct {
	Page       int
	PerPage    int
	CategoryID int
	Featured   *bool
	Search     string
	Language   string
	Currency   string
}

func (p ProductListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "per_page", p.PerPage)
	setInt(q, "category_id", p.CategoryID)
	setBool(q, "is_featured", p.Featured)
	q.Set("search", p.Search)
	q.Set("language", p.Language)
	q.Set("currency", p.Currency)
	return q
}

type AdminProductParams struct {
	Page     int
	PerPage  int
	IsActive string
	Search   string
}

// ProductsAPI covers the public catalog and its admin endpoints.
type ProductsAPI struct{ c *Client }

func (c *Client) Products() ProductsAPI { return ProductsAPI{c} }

func (a ProductsAPI) List(ctx context.Context, p ProductListParams) (*models.ProductListResponse, error) {
	var out models.ProductListResponse
	if err := a.c.Do(ctx, http.MethodGet, "/products", p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one product by its catalog id, priced in currency.
func (a ProductsAPI) Get(ctx context.Context, productID, language, currency string) (*models.Product, error) {
	q := url.Values{}
	q.Set("language", language)
	q.Set("currency", currency)
	var out models.Product
	if err := a.c.Do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ProductsAPI) AdminList(ctx context.Context, p AdminProductParams) (*models.ProductAdminListResponse, error) {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "per_page", p.PerPage)
	q.Set("is_active", p.IsActive)
	q.Set("search", p.Search)
	var out models.ProductAdminListResponse
	if err := a.c.Do(ctx, http.MethodGet, "/admin/products", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ProductsAPI) AdminGet(ctx context.Context, id int) (*models.ProductAdmin, error) {
	var out models.ProductAdmin
	if err := a.c.Do(ctx, http.MethodGet, idPath("/admin/products", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ProductsAPI) AdminCreate(ctx context.Context, data models.CreateProductData) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := a.c.Do(ctx, http.MethodPost, "/admin/products", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ProductsAPI) AdminUpdate(ctx context.Context, id int, data map[string]any) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := a.c.Do(ctx, http.MethodPut, idPath("/admin/products", id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ProductsAPI) AdminDelete(ctx context.Context, id int) error {
	return a.c.Do(ctx, http.MethodDelete, idPath("/admin/products", id), nil, nil, nil)
}

// ToggleStatus flips is_active and returns the new value.
func (a ProductsAPI) ToggleStatus(ctx context.Context, id int) (bool, error) {
	var out struct {
		IsActive bool `json:"is_active"`
	}
	if err := a.c.Do(ctx, http.MethodPost, idPath("/admin/products", id)+"/toggle-status", nil, nil, &out); err != nil {
		return false, err
	}
	return out.IsActive, nil
}

func (a ProductsAPI) Prices(ctx context.Context, id int) ([]models.ProductPrice, error) {
	var out struct {
		Prices []models.ProductPrice `json:"prices"`
	}
	if err := a.c.Do(ctx, http.MethodGet, idPath("/admin/products", id)+"/prices", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Prices, nil
}

type priceResponse struct {
	Price models.ProductPrice `json:"price"`
}

func (a ProductsAPI) CreatePrice(ctx context.Context, id int, data models.CreateProductPriceData) (*models.ProductPrice, error) {
	var out priceResponse
	if err := a.c.Do(ctx, http.MethodPost, idPath("/admin/products", id)+"/prices", nil, data, &out); err != nil {
		return nil, err
	}
	return &out.Price, nil
}

func (a ProductsAPI) UpdatePrice(ctx context.Context, id, priceID int, data map[string]any) (*models.ProductPrice, error) {
	var out priceResponse
	if err := a.c.Do(ctx, http.MethodPut, idPath(idPath("/admin/products", id)+"/prices", priceID), nil, data, &out); err != nil {
		return nil, err
	}
	return &out.Price, nil
}

func (a ProductsAPI) DeletePrice(ctx context.Context, id, priceID int) error {
	return a.c.Do(ctx, http.MethodDelete, idPath(idPath("/admin/products", id)+"/prices", priceID), nil, nil, nil)
}

func (a ProductsAPI) Translations(ctx context.Context, id int) ([]models.ProductTranslation, error) {
	var out struct {
		Translations []models.ProductTranslation `json:"translations"`
	}
	if err := a.c.Do(ctx, http.MethodGet, idPath("/admin/products", id)+"/translations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Translations, nil
}

// CreateTranslation copies product id into language.
func (a ProductsAPI) CreateTranslation(ctx context.Context, id int, language string) (*models.Product, error) {
	var out struct {
		Product models.Product `json:"product"`
	}
	body := map[string]string{"language": language}
	if err := a.c.Do(ctx, http.MethodPost, idPath("/admin/products", id)+"/translations", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (a ProductsAPI) UpdateSortOrder(ctx context.Context, orders []models.SortOrder) error {
	body := map[string][]models.SortOrder{"sort_orders": orders}
	return a.c.Do(ctx, http.MethodPut, "/admin/products/sort-order", nil, body, nil)
}
