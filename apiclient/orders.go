// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/polaris-parent/sitegate/models"
)

type OrdersAPI struct{ c *Client }

func (c *Client) Orders() OrdersAPI { return OrdersAPI{c} }

// Create places an order for the signed-in user. The response carries the
// payment page URL when the payment provider issued one.
func (a OrdersAPI) Create(ctx context.Context, data models.OrderCreateData) (*models.OrderCreateResponse, error) {
	var out models.OrderCreateResponse
	if err := a.c.Do(ctx, http.MethodPost, "/orders", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a OrdersAPI) List(ctx context.Context, page, perPage int) (*models.OrderListResponse, error) {
	q := url.Values{}
	setInt(q, "page", page)
	setInt(q, "per_page", perPage)
	var out models.OrderListResponse
	if err := a.c.Do(ctx, http.MethodGet, "/orders", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MockPaymentWebhook settles an order against the development payment
// provider. status is "success" or "failed".
func (a OrdersAPI) MockPaymentWebhook(ctx context.Context, orderNo, status string) error {
	body := map[string]string{"order_no": orderNo, "status": status}
	return a.c.Do(ctx, http.MethodPost, "/webhooks/mock-payment", nil, body, nil)
}

type PaymentMethodsAPI struct{ c *Client }

func (c *Client) PaymentMethods() PaymentMethodsAPI { return PaymentMethodsAPI{c} }

// List returns active methods, narrowed to those accepting currency when
// it is set.
func (a PaymentMethodsAPI) List(ctx context.Context, currency, language string) ([]models.PaymentMethod, error) {
	q := languageParam(language)
	q.Set("currency", currency)
	var out struct {
		PaymentMethods []models.PaymentMethod `json:"payment_methods"`
	}
	if err := a.c.Do(ctx, http.MethodGet, "/payment-methods", q, nil, &out); err != nil {
		return nil, err
	}
	return out.PaymentMethods, nil
}

func (a PaymentMethodsAPI) Get(ctx context.Context, id int, language string) (*models.PaymentMethod, error) {
	var out models.PaymentMethod
	if err := a.c.Do(ctx, http.MethodGet, idPath("/payment-methods", id), languageParam(language), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type paymentMethodResponse struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

func (a PaymentMethodsAPI) AdminCreate(ctx context.Context, data models.PaymentMethodData) (*models.PaymentMethod, error) {
	var out paymentMethodResponse
	if err := a.c.Do(ctx, http.MethodPost, "/admin/payment-methods", nil, data, &out); err != nil {
		return nil, err
	}
	return &out.PaymentMethod, nil
}

func (a PaymentMethodsAPI) AdminUpdate(ctx context.Context, id int, data models.PaymentMethodData) (*models.PaymentMethod, error) {
	var out paymentMethodResponse
	if err := a.c.Do(ctx, http.MethodPut, idPath("/admin/payment-methods", id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out.PaymentMethod, nil
}

func (a PaymentMethodsAPI) AdminDelete(ctx context.Context, id int) error {
	return a.c.Do(ctx, http.MethodDelete, idPath("/admin/payment-methods", id), nil, nil, nil)
}
