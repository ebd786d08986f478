// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"

	"github.com/polaris-parent/sitegate/models"
)

// AuthAPI manages the cookie session. Tokens live in the client's jar.
type AuthAPI struct{ c *Client }

func (c *Client) Auth() AuthAPI { return AuthAPI{c} }

func (a AuthAPI) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := a.c.Do(ctx, http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a AuthAPI) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.c.Do(ctx, http.MethodGet, "/auth/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a AuthAPI) Logout(ctx context.Context) error {
	return a.c.Do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (a AuthAPI) Refresh(ctx context.Context) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := a.c.Do(ctx, http.MethodPost, refreshEndpoint, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
