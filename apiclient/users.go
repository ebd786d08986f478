// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/polaris-parent/sitegate/models"
)

type UsersAPI struct{ c *Client }

func (c *Client) Users() UsersAPI { return UsersAPI{c} }

func (a UsersAPI) List(ctx context.Context, page, perPage int, role, search string) (*models.UserListResponse, error) {
	q := url.Values{}
	setInt(q, "page", page)
	setInt(q, "per_page", perPage)
	q.Set("role", role)
	q.Set("search", search)
	var out models.UserListResponse
	if err := a.c.Do(ctx, http.MethodGet, "/users", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type userResponse struct {
	User models.User `json:"user"`
}

func (a UsersAPI) Create(ctx context.Context, data models.UserData) (*models.User, error) {
	var out userResponse
	if err := a.c.Do(ctx, http.MethodPost, "/users", nil, data, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (a UsersAPI) Update(ctx context.Context, id int, data models.UserData) (*models.User, error) {
	var out userResponse
	if err := a.c.Do(ctx, http.MethodPut, idPath("/users", id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (a UsersAPI) Delete(ctx context.Context, id int) error {
	return a.c.Do(ctx, http.MethodDelete, idPath("/users", id), nil, nil, nil)
}

func (a UsersAPI) ToggleStatus(ctx context.Context, id int) (bool, error) {
	var out struct {
		IsActive bool `json:"is_active"`
	}
	if err := a.c.Do(ctx, http.MethodPost, idPath("/users", id)+"/toggle-status", nil, nil, &out); err != nil {
		return false, err
	}
	return out.IsActive, nil
}

type SubmissionsAPI struct{ c *Client }

func (c *Client) Submissions() SubmissionsAPI { return SubmissionsAPI{c} }

// Create files a reading request from the public contact form.
func (a SubmissionsAPI) Create(ctx context.Context, data models.SubmissionData) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := a.c.Do(ctx, http.MethodPost, "/submissions", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a SubmissionsAPI) List(ctx context.Context, page, perPage int, status string) (*models.SubmissionListResponse, error) {
	q := url.Values{}
	setInt(q, "page", page)
	setInt(q, "per_page", perPage)
	q.Set("status", status)
	var out models.SubmissionListResponse
	if err := a.c.Do(ctx, http.MethodGet, "/admin/submissions", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a SubmissionsAPI) Update(ctx context.Context, id int, status, notes string) error {
	body := map[string]string{}
	if status != "" {
		body["status"] = status
	}
	if notes != "" {
		body["admin_notes"] = notes
	}
	return a.c.Do(ctx, http.MethodPut, idPath("/admin/submissions", id), nil, body, nil)
}
