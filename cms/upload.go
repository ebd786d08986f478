// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
)

// ListFiles handles GET /api/upload/files.
//
// The upload plugin sometimes answers 401 to a valid token while public
// access would succeed. When that happens with a credential attached, the
// call is repeated once without it. There is never a third attempt.
func (c *Client) ListFiles(ctx context.Context, rawQuery string) (json.RawMessage, error) {
	o := outbound{
		method:    http.MethodGet,
		path:      "/api/upload/files",
		rawQuery:  rawQuery,
		authorize: true,
	}
	resp, err := c.send(ctx, o)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusUnauthorized && c.HasCredential() {
		slog.Warn("upload plugin rejected token, retrying as public role")
		o.authorize = false
		resp, err = c.send(ctx, o)
		if err != nil {
			return nil, err
		}
	}

	if !resp.ok() {
		if resp.status == http.StatusUnauthorized {
			slog.Error("upload plugin still returns 401; check the public role has find and findOne on the media library")
		}
		return nil, resp.apiError(http.StatusText(resp.status))
	}
	return rawJSON(resp.body)
}

// Upload streams a multipart body to POST /api/upload. contentType must
// carry the multipart boundary of body. size may be -1 when unknown.
func (c *Client) Upload(ctx context.Context, contentType string, body io.Reader, size int64) (json.RawMessage, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, outbound{
		method:      http.MethodPost,
		path:        "/api/upload",
		body:        body,
		length:      size,
		contentType: contentType,
		authorize:   true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Upload failed")
	}
	return rawJSON(resp.body)
}

// UpdateFileInfo sends info (name, alternativeText, caption, folder) to
// POST /api/upload/files/{id} as the fileInfo form field.
func (c *Client) UpdateFileInfo(ctx context.Context, fileID string, info json.RawMessage) (json.RawMessage, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("fileInfo", string(info)); err != nil {
		return nil, fmt.Errorf("cms: build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("cms: build form: %w", err)
	}

	resp, err := c.send(ctx, outbound{
		method:      http.MethodPost,
		path:        "/api/upload/files/" + url.PathEscape(fileID),
		body:        &buf,
		contentType: mw.FormDataContentType(),
		authorize:   true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Update failed")
	}
	return rawJSON(resp.body)
}

// DeleteFile handles DELETE /api/upload/files/{id}
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if err := c.requireCredential(); err != nil {
		return err
	}
	resp, err := c.send(ctx, outbound{
		method:    http.MethodDelete,
		path:      "/api/upload/files/" + url.PathEscape(fileID),
		authorize: true,
	})
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.apiError("Delete failed")
	}
	return nil
}

// ListFolders handles GET /api/upload/folders. The body is returned as
// the CMS sent it.
func (c *Client) ListFolders(ctx context.Context) (json.RawMessage, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, outbound{
		method:    http.MethodGet,
		path:      "/api/upload/folders",
		authorize: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to fetch folders")
	}
	return rawJSON(resp.body)
}

// CreateFolder handles POST /api/upload/folders
func (c *Client) CreateFolder(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.folderWrite(ctx, http.MethodPost, "/api/upload/folders", body, "Failed to create folder")
}

// UpdateFolder handles PUT /api/upload/folders/{id}
func (c *Client) UpdateFolder(ctx context.Context, folderID string, body json.RawMessage) (json.RawMessage, error) {
	return c.folderWrite(ctx, http.MethodPut, "/api/upload/folders/"+url.PathEscape(folderID), body, "Failed to update folder")
}

func (c *Client) folderWrite(ctx context.Context, method, path string, body json.RawMessage, fallback string) (json.RawMessage, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, outbound{
		method:      method,
		path:        path,
		body:        bytes.NewReader(body),
		contentType: "application/json",
		authorize:   true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError(fallback)
	}
	return rawJSON(resp.body)
}

// DeleteFolder handles DELETE /api/upload/folders/{id}
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	if err := c.requireCredential(); err != nil {
		return err
	}
	resp, err := c.send(ctx, outbound{
		method:    http.MethodDelete,
		path:      "/api/upload/folders/" + url.PathEscape(folderID),
		authorize: true,
	})
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.apiError("Failed to delete folder")
	}
	return nil
}
