// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package media

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/models"
)

var ErrUnexpectedShape = errors.New("media: unexpected file list shape")

// Pagination mirrors the admin UI's paging block.
type Pagination struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// Page is one page of the media library.
type Page struct {
	Media      []Item     `json:"media"`
	Pagination Pagination `json:"pagination"`
}

// EmptyPage is returned when the library cannot be listed.
func EmptyPage(perPage int) Page {
	return Page{
		Media:      []Item{},
		Pagination: Pagination{Page: 1, Pages: 1, PerPage: perPage},
	}
}

// ParseFileList decodes a file listing. The upload plugin answers either a
// bare array or {"results": [...], "pagination": {...}} depending on
// whether paging parameters were given.
func ParseFileList(body []byte) (Page, error) {
	body = bytes.TrimSpace(body)
	var files []models.StrapiFile
	var pg *models.StrapiPagination

	switch {
	case len(body) > 0 && body[0] == '[':
		if err := json.Unmarshal(body, &files); err != nil {
			return Page{}, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
		}
	case len(body) > 0 && body[0] == '{':
		var paged struct {
			Results    []models.StrapiFile      `json:"results"`
			Pagination *models.StrapiPagination `json:"pagination"`
		}
		if err := json.Unmarshal(body, &paged); err != nil {
			return Page{}, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
		}
		files, pg = paged.Results, paged.Pagination
	default:
		return Page{}, ErrUnexpectedShape
	}

	if pg == nil {
		pg = &models.StrapiPagination{Page: 1, PageSize: len(files), PageCount: 1, Total: len(files)}
	}

	items := make([]Item, 0, len(files))
	for _, f := range files {
		items = append(items, FromStrapiFile(f))
	}
	return Page{
		Media: items,
		Pagination: Pagination{
			Page:    pg.Page,
			Pages:   pg.PageCount,
			PerPage: pg.PageSize,
			Total:   pg.Total,
			HasPrev: pg.Page > 1,
			HasNext: pg.Page < pg.PageCount,
		},
	}, nil
}

// Folder is a media library folder. Children is only set on trees built by
// BuildFolderTree.
type Folder struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	ParentID  *int       `json:"parent_id,omitempty"`
	Path      string     `json:"path"`
	FileCount int        `json:"file_count"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Children  []*Folder  `json:"children,omitempty"`
}

// FromStrapiFolder converts an upload plugin folder.
func FromStrapiFolder(f models.StrapiFolder) Folder {
	out := Folder{
		ID:        f.ID,
		Name:      f.Name,
		Path:      f.Path,
		CreatedAt: f.CreatedAt,
	}
	if f.Parent != nil {
		id := f.Parent.ID
		out.ParentID = &id
	}
	if f.Files != nil {
		out.FileCount = f.Files.Count
	}
	return out
}

// ParseFolders decodes the data member of a folder listing.
func ParseFolders(body []byte) ([]Folder, error) {
	var env models.DataResponse[[]models.StrapiFolder]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	out := make([]Folder, 0, len(env.Data))
	for _, f := range env.Data {
		out = append(out, FromStrapiFolder(f))
	}
	return out, nil
}

// BuildFolderTree nests folders under their parents, keeping input order.
// Folders whose parent is absent from the list become roots. A repeated id
// keeps its first folder, and a folder whose parent link would close a
// cycle becomes a root.
func BuildFolderTree(folders []Folder) []*Folder {
	nodes := make(map[int]*Folder, len(folders))
	order := make([]*Folder, 0, len(folders))
	for i := range folders {
		if _, dup := nodes[folders[i].ID]; dup {
			continue
		}
		f := folders[i]
		f.Children = []*Folder{}
		nodes[f.ID] = &f
		order = append(order, &f)
	}

	attached := make(map[int]int, len(order))
	createsCycle := func(id, parentID int) bool {
		for cur, ok := parentID, true; ok; cur, ok = attached[cur] {
			if cur == id {
				return true
			}
		}
		return false
	}

	roots := []*Folder{}
	for _, node := range order {
		if node.ParentID != nil {
			pid := *node.ParentID
			if parent, ok := nodes[pid]; ok && !createsCycle(node.ID, pid) {
				parent.Children = append(parent.Children, node)
				attached[node.ID] = pid
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// FlatFolder is a tree node with its depth, for indented pickers.
type FlatFolder struct {
	Folder *Folder `json:"folder"`
	Depth  int     `json:"depth"`
}

// FlattenFolderTree walks tree depth-first.
func FlattenFolderTree(tree []*Folder) []FlatFolder {
	out := []FlatFolder{}
	seen := make(map[*Folder]bool)
	var walk func(nodes []*Folder, depth int)
	walk = func(nodes []*Folder, depth int) {
		for _, n := range nodes {
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, FlatFolder{Folder: n, Depth: depth})
			walk(n.Children, depth+1)
		}
	}
	walk(tree, 0)
	return out
}
