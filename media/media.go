// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package media

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/polaris-parent/sitegate/models"
)

// Size names a responsive variant generated by the CMS.
type Size string

const (
	Thumbnail Size = "thumbnail"
	Small     Size = "small"
	Medium    Size = "medium"
	Large     Size = "large"
	Original  Size = "original"
)

// Fallback order per preferred size. Original always resolves.
var sizePriority = map[Size][]Size{
	Thumbnail: {Thumbnail, Small, Medium, Large, Original},
	Small:     {Small, Thumbnail, Medium, Large, Original},
	Medium:    {Medium, Small, Large, Thumbnail, Original},
	Large:     {Large, Medium, Small, Thumbnail, Original},
	Original:  {Original, Large, Medium, Small, Thumbnail},
}

// Item is a media library file as the admin UI consumes it.
type Item struct {
	ID               int                         `json:"id"`
	Filename         string                      `json:"filename"`
	OriginalFilename string                      `json:"original_filename"`
	FilePath         string                      `json:"file_path"`
	FileSize         int64                       `json:"file_size"`
	SizeLabel        string                      `json:"size_label"`
	MimeType         string                      `json:"mime_type"`
	AltText          string                      `json:"alt_text,omitempty"`
	Caption          string                      `json:"caption,omitempty"`
	FolderID         *int                        `json:"folder_id,omitempty"`
	CreatedAt        *time.Time                  `json:"created_at,omitempty"`
	Formats          map[Size]models.ImageFormat `json:"formats,omitempty"`
	Width            int                         `json:"width,omitempty"`
	Height           int                         `json:"height,omitempty"`
}

// FromStrapiFile converts an upload plugin file. The CMS reports sizes in
// kilobytes; Item sizes are bytes.
func FromStrapiFile(f models.StrapiFile) Item {
	item := Item{
		ID:               f.ID,
		Filename:         f.Name,
		OriginalFilename: f.Name,
		FilePath:         f.URL,
		FileSize:         int64(math.Round(f.Size * 1024)),
		MimeType:         f.Mime,
		AltText:          f.AlternativeText,
		Caption:          f.Caption,
		CreatedAt:        f.CreatedAt,
		Width:            f.Width,
		Height:           f.Height,
	}
	item.SizeLabel = humanize.IBytes(uint64(item.FileSize))
	if f.Folder != nil {
		id := f.Folder.ID
		item.FolderID = &id
	}
	if len(f.Formats) > 0 {
		item.Formats = make(map[Size]models.ImageFormat, len(f.Formats))
		for name, format := range f.Formats {
			item.Formats[Size(name)] = format
		}
	}
	return item
}

// OptimizedImageURL returns the URL of the preferred variant, stepping
// through the fallback order when a variant was not generated. Unknown
// sizes are treated as Medium.
func OptimizedImageURL(item Item, preferred Size) string {
	if len(item.Formats) == 0 {
		return item.FilePath
	}
	order, ok := sizePriority[preferred]
	if !ok {
		order = sizePriority[Medium]
	}
	for _, size := range order {
		if size == Original {
			return item.FilePath
		}
		if f, ok := item.Formats[size]; ok && f.URL != "" {
			return f.URL
		}
	}
	return item.FilePath
}

// HasResponsiveFormats reports whether any resized variant exists.
func HasResponsiveFormats(item Item) bool {
	for _, s := range []Size{Thumbnail, Small, Medium, Large} {
		if _, ok := item.Formats[s]; ok {
			return true
		}
	}
	return false
}
