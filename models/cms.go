// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"errors"
	"time"

	json "github.com/goccy/go-json"
)

var errMissingID = errors.New("missing id")

// CMS request types

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TagInput struct {
	Name string `json:"name"`
}

// MediaMetaInput is the body accepted by POST /api/strapi-media-meta.
// A DocumentID selects an update; otherwise FileID selects a create.
// Nil pointer fields are left untouched upstream.
type MediaMetaInput struct {
	FileID     FlexibleID    `json:"fileId"`
	ID         FlexibleID    `json:"id,omitempty"`
	DocumentID string        `json:"documentId"`
	ChartID    *string       `json:"chartid,omitempty"`
	Place      *string       `json:"place,omitempty"`
	Copyright  *string       `json:"copyright,omitempty"`
	IsPublic   *bool         `json:"isPublic,omitempty"`
	Tags       *[]FlexibleID `json:"tags,omitempty"`
	Category   *[]FlexibleID `json:"category,omitempty"`
}

// CMS domain types

type Category struct {
	ID          int        `json:"id"`
	DocumentID  string     `json:"documentId,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (c *Category) Validate() error {
	if c.ID == 0 {
		return errMissingID
	}
	return nil
}

type Tag struct {
	ID         int        `json:"id"`
	DocumentID string     `json:"documentId,omitempty"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func (t *Tag) Validate() error {
	if t.ID == 0 {
		return errMissingID
	}
	return nil
}

// FileRef is a media relation. The CMS sends either a populated object or
// a bare numeric id depending on the populate parameters.
type FileRef struct {
	ID int `json:"id"`
}

func (f *FileRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		f.ID = obj.ID
		return nil
	}
	return json.Unmarshal(b, &f.ID)
}

type MediaMeta struct {
	ID         int        `json:"id"`
	DocumentID string     `json:"documentId,omitempty"`
	ChartID    *string    `json:"chartid,omitempty"`
	Place      *string    `json:"place,omitempty"`
	Copyright  *string    `json:"copyright,omitempty"`
	IsPublic   *bool      `json:"isPublic,omitempty"`
	Tags       []Tag      `json:"tags"`
	Category   []Category `json:"category"`
	File       *FileRef   `json:"file,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func (m *MediaMeta) Validate() error {
	if m.ID == 0 {
		return errMissingID
	}
	return nil
}

// Normalized returns a copy with empty relation lists instead of nulls and
// without the file relation, which callers already know.
func (m MediaMeta) Normalized() MediaMeta {
	if m.Tags == nil {
		m.Tags = []Tag{}
	}
	if m.Category == nil {
		m.Category = []Category{}
	}
	m.File = nil
	return m
}

// MediaMetaSummary is the reshaped row of GET /api/strapi-media-meta/all,
// used to map files to categories.
type MediaMetaSummary struct {
	ID         int        `json:"id"`
	DocumentID string     `json:"documentId,omitempty"`
	File       *FileRef   `json:"file"`
	Category   []Category `json:"category"`
	ChartID    *string    `json:"chartid,omitempty"`
	Place      *string    `json:"place,omitempty"`
	Copyright  *string    `json:"copyright,omitempty"`
	IsPublic   *bool      `json:"isPublic,omitempty"`
}

func (m MediaMeta) Summary() MediaMetaSummary {
	category := m.Category
	if category == nil {
		category = []Category{}
	}
	return MediaMetaSummary{
		ID:         m.ID,
		DocumentID: m.DocumentID,
		File:       m.File,
		Category:   category,
		ChartID:    m.ChartID,
		Place:      m.Place,
		Copyright:  m.Copyright,
		IsPublic:   m.IsPublic,
	}
}

// Upload plugin types

type ImageFormat struct {
	URL    string  `json:"url"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Size   float64 `json:"size,omitempty"`
}

// StrapiFile is an entry of the upload plugin's file collection.
// Size is reported in kilobytes.
type StrapiFile struct {
	ID               int                    `json:"id"`
	DocumentID       string                 `json:"documentId,omitempty"`
	Name             string                 `json:"name"`
	AlternativeText  string                 `json:"alternativeText,omitempty"`
	Caption          string                 `json:"caption,omitempty"`
	Width            int                    `json:"width,omitempty"`
	Height           int                    `json:"height,omitempty"`
	Formats          map[string]ImageFormat `json:"formats,omitempty"`
	Hash             string                 `json:"hash,omitempty"`
	Ext              string                 `json:"ext,omitempty"`
	Mime             string                 `json:"mime"`
	Size             float64                `json:"size"`
	URL              string                 `json:"url"`
	FolderPath       string                 `json:"folderPath,omitempty"`
	Folder           *StrapiFolderRef       `json:"folder,omitempty"`
	CreatedAt        *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time             `json:"updatedAt,omitempty"`
	ProviderMetadata json.RawMessage        `json:"provider_metadata,omitempty"`
}

type StrapiFolderRef struct {
	ID int `json:"id"`
}

type StrapiFolder struct {
	ID         int              `json:"id"`
	DocumentID string           `json:"documentId,omitempty"`
	Name       string           `json:"name"`
	PathID     int              `json:"pathId,omitempty"`
	Path       string           `json:"path,omitempty"`
	Parent     *StrapiFolderRef `json:"parent,omitempty"`
	Files      *struct {
		Count int `json:"count"`
	} `json:"files,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type StrapiPagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}
