// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/models"
)

// relationSet is the CMS syntax for replacing a relation wholesale.
type relationSet struct {
	Set []models.FlexibleID `json:"set"`
}

func newRelationSet(ids *[]models.FlexibleID) *relationSet {
	if ids == nil {
		return nil
	}
	set := *ids
	if set == nil {
		set = []models.FlexibleID{}
	}
	return &relationSet{Set: set}
}

type mediaMetaPayload struct {
	ChartID   *string            `json:"chartid,omitempty"`
	Place     *string            `json:"place,omitempty"`
	Copyright *string            `json:"copyright,omitempty"`
	IsPublic  *bool              `json:"isPublic,omitempty"`
	Tags      *relationSet       `json:"tags,omitempty"`
	Category  *relationSet       `json:"category,omitempty"`
	File      *models.FlexibleID `json:"file,omitempty"`
}

func mediaMetaQuery(fileID models.FlexibleID) string {
	q := url.Values{}
	if fileID != "" {
		q.Set("filters[file][id][$eq]", fileID.String())
	}
	q.Set("populate[0]", "tags")
	q.Set("populate[1]", "category")
	q.Set("populate[2]", "file")
	return q.Encode()
}

// FindMediaMeta returns the metadata entry attached to fileID, or nil when
// the file has none.
//
// The relation filter is not reliable on every CMS version, so an empty
// filtered result falls back to scanning the full list for a matching
// file relation.
func (c *Client) FindMediaMeta(ctx context.Context, fileID models.FlexibleID) (*models.MediaMeta, error) {
	resp, err := c.send(ctx, outbound{
		method:    http.MethodGet,
		path:      "/api/media-metas",
		rawQuery:  mediaMetaQuery(fileID),
		authorize: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to fetch media metadata")
	}
	metas, err := decodeList[models.MediaMeta](resp.body)
	if err != nil {
		return nil, err
	}
	if len(metas) > 0 {
		m := metas[0].Normalized()
		return &m, nil
	}

	slog.Debug("media meta filter empty, scanning full list", "file_id", fileID)
	resp, err = c.send(ctx, outbound{
		method:    http.MethodGet,
		path:      "/api/media-metas",
		rawQuery:  mediaMetaQuery(""),
		authorize: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, nil
	}
	all, err := decodeList[models.MediaMeta](resp.body)
	if err != nil {
		return nil, err
	}

	want, ok := fileID.Int()
	if !ok {
		return nil, nil
	}
	for _, m := range all {
		if m.File != nil && m.File.ID == want {
			m = m.Normalized()
			return &m, nil
		}
	}
	return nil, nil
}

// SaveMediaMeta updates the entry named by in.DocumentID, or creates one
// linked to in.FileID. With neither set nothing is sent and the result is
// JSON null. The returned value is the data member of the CMS response.
func (c *Client) SaveMediaMeta(ctx context.Context, in models.MediaMetaInput) (json.RawMessage, error) {
	if err := c.requireCredential(); err != nil {
		return nil, err
	}

	payload := mediaMetaPayload{
		ChartID:   in.ChartID,
		Place:     in.Place,
		Copyright: in.Copyright,
		IsPublic:  in.IsPublic,
		Tags:      newRelationSet(in.Tags),
		Category:  newRelationSet(in.Category),
	}

	if in.DocumentID != "" {
		resp, err := c.sendJSON(ctx, http.MethodPut,
			"/api/media-metas/"+url.PathEscape(in.DocumentID),
			models.DataResponse[mediaMetaPayload]{Data: payload})
		if err != nil {
			return nil, err
		}
		if !resp.ok() {
			slog.Error("media meta update failed", "document_id", in.DocumentID, "status", resp.status, "body", string(resp.body))
			return nil, &APIError{Status: resp.status, Message: "Update failed", Details: string(resp.body)}
		}
		return decodeData(resp.body)
	}

	if in.FileID == "" {
		return json.RawMessage("null"), nil
	}

	fileID := in.FileID
	payload.File = &fileID
	resp, err := c.sendJSON(ctx, http.MethodPost, "/api/media-metas",
		models.DataResponse[mediaMetaPayload]{Data: payload})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		slog.Error("media meta create failed", "file_id", in.FileID, "status", resp.status, "body", string(resp.body))
		return nil, &APIError{Status: resp.status, Message: "Create failed", Details: string(resp.body)}
	}
	return decodeData(resp.body)
}

// ListAllMediaMeta returns every metadata entry with its file and
// category relations, reshaped for mapping files to categories.
func (c *Client) ListAllMediaMeta(ctx context.Context) ([]models.MediaMetaSummary, error) {
	q := url.Values{}
	q.Set("populate[0]", "file")
	q.Set("populate[1]", "category")
	q.Set("pagination[pageSize]", "1000")

	resp, err := c.send(ctx, outbound{
		method:    http.MethodGet,
		path:      "/api/media-metas",
		rawQuery:  q.Encode(),
		authorize: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.apiError("Failed to fetch media metadata")
	}
	metas, err := decodeList[models.MediaMeta](resp.body)
	if err != nil {
		return nil, err
	}

	out := make([]models.MediaMetaSummary, 0, len(metas))
	for _, m := range metas {
		out = append(out, m.Summary())
	}
	return out, nil
}
