// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/polaris-parent/sitegate/models"
)

type SettingsAPI struct{ c *Client }

func (c *Client) Settings() SettingsAPI { return SettingsAPI{c} }

func (a SettingsAPI) I18n(ctx context.Context) (*models.I18nSettings, error) {
	var out models.I18nSettings
	if err := a.c.Do(ctx, http.MethodGet, "/settings/i18n", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a SettingsAPI) UpdateI18n(ctx context.Context, s models.I18nSettings) error {
	return a.c.Do(ctx, http.MethodPut, "/settings/i18n", nil, s, nil)
}

// LanguageList is the language set after an add or remove.
type LanguageList struct {
	Message       string            `json:"message"`
	Languages     []string          `json:"languages"`
	LanguageNames map[string]string `json:"language_names"`
}

func (a SettingsAPI) AddLanguage(ctx context.Context, code, name string) (*LanguageList, error) {
	var out LanguageList
	body := map[string]string{"code": code, "name": name}
	if err := a.c.Do(ctx, http.MethodPost, "/settings/i18n/languages", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a SettingsAPI) RemoveLanguage(ctx context.Context, code string) (*LanguageList, error) {
	var out LanguageList
	if err := a.c.Do(ctx, http.MethodDelete, "/settings/i18n/languages/"+url.PathEscape(code), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a SettingsAPI) Homepage(ctx context.Context) (*models.HomepageSettings, error) {
	var out models.HomepageSettings
	if err := a.c.Do(ctx, http.MethodGet, "/settings/homepage", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHomepage sends the changed settings fields.
func (a SettingsAPI) UpdateHomepage(ctx context.Context, data map[string]any) error {
	return a.c.Do(ctx, http.MethodPut, "/settings/homepage", nil, data, nil)
}

// UploadSlideImage stores a hero slide image and returns its URL.
func (a SettingsAPI) UploadSlideImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	form, err := NewMultipart("file", filename, r)
	if err != nil {
		return "", &RequestError{Message: "encode upload", Err: err}
	}
	var out struct {
		ImageURL string `json:"image_url"`
	}
	if err := a.c.Do(ctx, http.MethodPost, "/settings/homepage/upload", nil, form, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}
