// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session holds the signed-in visitor for one request.
//
// An AppContext is created per request and changed only through its
// action methods; nothing is kept between requests.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/models"
)

type AuthAPI interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// AppContext is the authentication state of a request.
type AppContext struct {
	User    *models.User `json:"user"`
	Loading bool         `json:"loading"`
	Err     string       `json:"error,omitempty"`

	auth AuthAPI
}

func New(auth AuthAPI) *AppContext {
	return &AppContext{auth: auth}
}

// IsAuthenticated reports whether a user is signed in.
func (a *AppContext) IsAuthenticated() bool {
	return a.User != nil
}

// HasRole reports whether the signed-in user has one of roles.
func (a *AppContext) HasRole(roles ...string) bool {
	if a.User == nil {
		return false
	}
	for _, r := range roles {
		if a.User.Role == r {
			return true
		}
	}
	return false
}

// Login signs in. On failure the user is cleared and Err holds the message.
func (a *AppContext) Login(ctx context.Context, creds models.LoginCredentials) error {
	a.Loading, a.Err = true, ""
	defer func() { a.Loading = false }()

	resp, err := a.auth.Login(ctx, creds)
	if err != nil {
		a.User = nil
		a.Err = errorMessage(err, "Login failed")
		return err
	}
	user := resp.User
	a.User = &user
	return nil
}

// LoadProfile resolves the user from the session cookies. Any failure
// leaves the context anonymous; only unexpected errors are returned.
func (a *AppContext) LoadProfile(ctx context.Context) error {
	a.Loading = true
	defer func() { a.Loading = false }()

	user, err := a.auth.Profile(ctx)
	if err != nil {
		a.User = nil
		switch apiclient.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusUnprocessableEntity:
			return nil
		}
		slog.Warn("profile lookup failed", "error", err)
		return err
	}
	a.Err = ""
	a.User = user
	return nil
}

// Logout clears the user even when the API call fails.
func (a *AppContext) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		slog.Debug("logout request failed", "error", err)
	}
	a.User, a.Err = nil, ""
}

// ClearError resets Err.
func (a *AppContext) ClearError() {
	a.Err = ""
}

func errorMessage(err error, fallback string) string {
	var re *apiclient.RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
