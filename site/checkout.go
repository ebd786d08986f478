// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/currency"
	"github.com/polaris-parent/sitegate/locale"
	"github.com/polaris-parent/sitegate/models"
)

var (
	ErrLoginRequired = errors.New("site: login required")
	ErrNoPaymentURL  = errors.New("site: no payment URL received")
	ErrEmptyOrder    = errors.New("site: order has no items")
)

type OrderSource interface {
	Create(ctx context.Context, data models.OrderCreateData) (*models.OrderCreateResponse, error)
}

type CheckoutOptions struct {
	Currency      string `json:"currency,omitempty"`
	Language      string `json:"language,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// CheckoutResult tells the caller where to send the buyer.
type CheckoutResult struct {
	OrderNo    string `json:"order_no"`
	PaymentURL string `json:"payment_url"`
}

// Checkout places an order and returns the payment page URL. Currency
// defaults to TWD and language to the default locale.
func Checkout(ctx context.Context, orders OrderSource, items []models.OrderItem, amount float64, opts CheckoutOptions) (*CheckoutResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if opts.Currency == "" {
		opts.Currency = currency.Default
	}
	if opts.Language == "" {
		opts.Language = string(locale.Default)
	}

	resp, err := orders.Create(ctx, models.OrderCreateData{
		Items:         items,
		Amount:        amount,
		Currency:      opts.Currency,
		Language:      opts.Language,
		PaymentMethod: opts.PaymentMethod,
	})
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %w", ErrLoginRequired, err)
		}
		return nil, fmt.Errorf("create order: %w", err)
	}
	if resp.PaymentURL == nil || *resp.PaymentURL == "" {
		slog.Error("No payment URL received", "order_no", resp.OrderNo)
		return nil, ErrNoPaymentURL
	}

	slog.Info("order created", "order_no", resp.OrderNo, "amount", amount, "currency", opts.Currency)
	return &CheckoutResult{OrderNo: resp.OrderNo, PaymentURL: *resp.PaymentURL}, nil
}
