// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/currency"
	"github.com/polaris-parent/sitegate/locale"
	"github.com/polaris-parent/sitegate/middleware"
	"github.com/polaris-parent/sitegate/models"
	"github.com/polaris-parent/sitegate/site"
)

type CheckoutHandler struct {
	api *apiclient.Client
}

func NewCheckoutHandler(api *apiclient.Client) *CheckoutHandler {
	return &CheckoutHandler{api: api}
}

type CheckoutRequest struct {
	Items  []models.OrderItem `json:"items"`
	Amount float64            `json:"amount"`
	site.CheckoutOptions
}

// requestLocale reads the visitor's locale cookie. /api routes bypass the
// locale middleware, so the context never carries one here.
func requestLocale(r *http.Request) locale.Locale {
	if c, err := r.Cookie(locale.CookieName); err == nil {
		if l, ok := locale.Parse(c.Value); ok {
			return l
		}
	}
	return locale.Default
}

// Create handles POST /api/checkout
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.Currency != "" && !currency.Valid(req.Currency) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unsupported currency")
		return
	}
	if req.Language == "" {
		req.Language = string(requestLocale(r))
	}

	result, err := site.Checkout(r.Context(), h.api.ForRequest(r).Orders(), req.Items, req.Amount, req.CheckoutOptions)
	if err != nil {
		var re *apiclient.RequestError
		switch {
		case errors.Is(err, site.ErrLoginRequired):
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Please log in to purchase")
		case errors.Is(err, site.ErrEmptyOrder):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Order has no items")
		case errors.Is(err, site.ErrNoPaymentURL):
			middleware.ErrorResponse(w, http.StatusBadGateway, "No payment URL received")
		case errors.As(err, &re) && re.Status != 0:
			middleware.ErrorResponse(w, re.Status, re.Message)
		default:
			slog.Error("checkout failed", "error", err)
			middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to create order")
		}
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}
