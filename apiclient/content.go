// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/polaris-parent/sitegate/models"
)

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

func languageParam(language string) url.Values {
	q := url.Values{}
	q.Set("language", language)
	return q
}

func idPath(prefix string, id int) string {
	return prefix + "/" + strconv.Itoa(id)
}

// ContentListParams filters a content listing. Zero values are omitted.
type ContentListParams struct {
	Page       int
	PerPage    int
	CategoryID int
	Status     string
	Type       string
	Tag        string
	Search     string
	Language   string
}

func (p ContentListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "per_page", p.PerPage)
	setInt(q, "category_id", p.CategoryID)
	q.Set("status", p.Status)
	q.Set("type", p.Type)
	q.Set("tag", p.Tag)
	q.Set("search", p.Search)
	q.Set("language", p.Language)
	return q
}

// ContentsAPI covers articles and pages.
type ContentsAPI struct{ c *Client }

func (c *Client) Contents() ContentsAPI { return ContentsAPI{c} }

func (a ContentsAPI) List(ctx context.Context, p ContentListParams) (*models.ContentListResponse, error) {
	var out models.ContentListResponse
	if err := a.c.Do(ctx, http.MethodGet, "/contents", p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ContentsAPI) Get(ctx context.Context, id int) (*models.Content, error) {
	var out models.Content
	if err := a.c.Do(ctx, http.MethodGet, idPath("/contents", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BySlug fetches the content published under slug, in language when given.
func (a ContentsAPI) BySlug(ctx context.Context, slug, language string) (*models.Content, error) {
	var out models.Content
	if err := a.c.Do(ctx, http.MethodGet, "/contents/slug/"+url.PathEscape(slug), languageParam(language), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ContentsAPI) Create(ctx context.Context, data models.CreateContentData) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := a.c.Do(ctx, http.MethodPost, "/contents", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends a partial update; data holds only the changed fields.
func (a ContentsAPI) Update(ctx context.Context, id int, data map[string]any) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := a.c.Do(ctx, http.MethodPut, idPath("/contents", id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a ContentsAPI) Delete(ctx context.Context, id int) error {
	return a.c.Do(ctx, http.MethodDelete, idPath("/contents", id), nil, nil, nil)
}

func (a ContentsAPI) Comments(ctx context.Context, id int) ([]models.Comment, error) {
	var out []models.Comment
	if err := a.c.Do(ctx, http.MethodGet, idPath("/contents", id)+"/comments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Featured returns up to limit featured posts.
func (a ContentsAPI) Featured(ctx context.Context, limit int, language string) ([]models.Content, error) {
	q := languageParam(language)
	setInt(q, "limit", limit)
	var out []models.Content
	if err := a.c.Do(ctx, http.MethodGet, "/contents/featured", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TaxonomyAPI covers categories and tags, which share one shape.
type TaxonomyAPI struct {
	c    *Client
	path string
}

func (c *Client) Categories() TaxonomyAPI { return TaxonomyAPI{c, "/categories"} }

func (c *Client) Tags() TaxonomyAPI { return TaxonomyAPI{c, "/tags"} }

func (a TaxonomyAPI) List(ctx context.Context, language string) ([]models.Term, error) {
	var out []models.Term
	if err := a.c.Do(ctx, http.MethodGet, a.path, languageParam(language), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a TaxonomyAPI) write(ctx context.Context, method, path string, data models.TaxonomyData) (*models.Term, error) {
	var out struct {
		Category *models.Term `json:"category"`
		Tag      *models.Term `json:"tag"`
	}
	if err := a.c.Do(ctx, method, path, nil, data, &out); err != nil {
		return nil, err
	}
	if out.Category != nil {
		return out.Category, nil
	}
	if out.Tag != nil {
		return out.Tag, nil
	}
	return &models.Term{}, nil
}

func (a TaxonomyAPI) Create(ctx context.Context, data models.TaxonomyData) (*models.Term, error) {
	return a.write(ctx, http.MethodPost, a.path, data)
}

func (a TaxonomyAPI) Update(ctx context.Context, id int, data models.TaxonomyData) (*models.Term, error) {
	return a.write(ctx, http.MethodPut, idPath(a.path, id), data)
}

func (a TaxonomyAPI) Delete(ctx context.Context, id int) error {
	return a.c.Do(ctx, http.MethodDelete, idPath(a.path, id), nil, nil, nil)
}

// FindOrCreate resolves tag codes to tags, creating the missing ones. Only
// meaningful on Tags().
func (a TaxonomyAPI) FindOrCreate(ctx context.Context, codes []string) (*models.TagFindOrCreateResponse, error) {
	var out models.TagFindOrCreateResponse
	body := map[string][]string{"codes": codes}
	if err := a.c.Do(ctx, http.MethodPost, a.path+"/find-or-create", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
