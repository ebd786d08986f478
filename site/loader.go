// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package site

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/polaris-parent/sitegate/apiclient"
	"github.com/polaris-parent/sitegate/currency"
	"github.com/polaris-parent/sitegate/locale"
	"github.com/polaris-parent/sitegate/models"
)

var ErrNotFound = errors.New("site: not found")

const (
	homePostLimit    = 3
	homeProductLimit = 4
	postsPerPage     = 12
	productsPerPage  = 100
)

type ContentSource interface {
	List(ctx context.Context, p apiclient.ContentListParams) (*models.ContentListResponse, error)
	BySlug(ctx context.Context, slug, language string) (*models.Content, error)
}

type ProductSource interface {
	List(ctx context.Context, p apiclient.ProductListParams) (*models.ProductListResponse, error)
	Get(ctx context.Context, productID, language, currency string) (*models.Product, error)
}

type SettingsSource interface {
	Homepage(ctx context.Context) (*models.HomepageSettings, error)
}

// Loader assembles page models from the site API. Data-client failures
// never fail a page: they are logged and the page is served empty with
// Degraded set.
type Loader struct {
	contents ContentSource
	products ProductSource
	settings SettingsSource
}

func NewLoader(contents ContentSource, products ProductSource, settings SettingsSource) *Loader {
	return &Loader{contents: contents, products: products, settings: settings}
}

// FromClient wires a Loader to the site API.
func FromClient(c *apiclient.Client) *Loader {
	return NewLoader(c.Contents(), c.Products(), c.Settings())
}

// Meta is shared by every page model.
type Meta struct {
	Locale   locale.Locale `json:"locale"`
	Lang     string        `json:"lang"`
	Degraded bool          `json:"degraded,omitempty"`
}

func newMeta(l locale.Locale) Meta {
	return Meta{Locale: l, Lang: locale.Label(l)}
}

// ProductCard is a product with display-ready prices.
type ProductCard struct {
	models.Product
	PriceLabel         string `json:"price_label"`
	OriginalPriceLabel string `json:"original_price_label,omitempty"`
}

func newProductCard(p models.Product, l locale.Locale) ProductCard {
	code := p.Currency
	if code == "" {
		code = currency.Default
	}
	card := ProductCard{Product: p, PriceLabel: currency.FormatPrice(p.Price, code, l)}
	if p.OriginalPrice != nil {
		card.OriginalPriceLabel = currency.FormatPrice(*p.OriginalPrice, code, l)
	}
	return card
}

func productCards(products []models.Product, l locale.Locale) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, newProductCard(p, l))
	}
	return out
}

type HomePage struct {
	Meta
	FeaturedPosts    []models.Content        `json:"featured_posts"`
	FeaturedProducts []ProductCard           `json:"featured_products"`
	Settings         models.HomepageSettings `json:"settings"`
}

// Home loads the landing page, fetching its three sources concurrently.
func (ld *Loader) Home(ctx context.Context, l locale.Locale) *HomePage {
	page := &HomePage{
		Meta:             newMeta(l),
		FeaturedPosts:    []models.Content{},
		FeaturedProducts: []ProductCard{},
		Settings:         emptyHomepageSettings(),
	}
	var postsFailed, productsFailed, settingsFailed bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := ld.contents.List(gctx, apiclient.ContentListParams{
			Status:   models.StatusPublished,
			Type:     "article",
			PerPage:  homePostLimit,
			Language: string(l),
		})
		if err != nil {
			slog.Error("Error fetching featured posts", "locale", l, "error", err)
			postsFailed = true
			return nil
		}
		if resp.Contents != nil {
			page.FeaturedPosts = resp.Contents
		}
		return nil
	})
	g.Go(func() error {
		featured := true
		resp, err := ld.products.List(gctx, apiclient.ProductListParams{
			Featured: &featured,
			PerPage:  homeProductLimit,
			Language: string(l),
		})
		if err != nil {
			slog.Error("Error fetching featured products", "locale", l, "error", err)
			productsFailed = true
			return nil
		}
		page.FeaturedProducts = productCards(resp.Products, l)
		return nil
	})
	g.Go(func() error {
		s, err := ld.settings.Homepage(gctx)
		if err != nil {
			slog.Error("Error fetching homepage settings", "error", err)
			settingsFailed = true
			return nil
		}
		if s.Slides == nil {
			s.Slides = []models.HomepageSlide{}
		}
		page.Settings = *s
		return nil
	})
	_ = g.Wait()

	page.Degraded = postsFailed || productsFailed || settingsFailed
	return page
}

func emptyHomepageSettings() models.HomepageSettings {
	return models.HomepageSettings{Slides: []models.HomepageSlide{}, ButtonText: map[string]string{}}
}

// PostsQuery narrows the post listing.
type PostsQuery struct {
	Page       int
	Tag        string
	CategoryID int
	Search     string
}

type PostsPage struct {
	Meta
	Posts      []models.Content      `json:"posts"`
	Pagination models.PaginationInfo `json:"pagination"`
}

func (ld *Loader) Posts(ctx context.Context, l locale.Locale, q PostsQuery) *PostsPage {
	page := &PostsPage{
		Meta:       newMeta(l),
		Posts:      []models.Content{},
		Pagination: models.PaginationInfo{Page: 1, Pages: 1, PerPage: postsPerPage},
	}
	resp, err := ld.contents.List(ctx, apiclient.ContentListParams{
		Page:       q.Page,
		PerPage:    postsPerPage,
		CategoryID: q.CategoryID,
		Status:     models.StatusPublished,
		Type:       "article",
		Tag:        q.Tag,
		Search:     q.Search,
		Language:   string(l),
	})
	if err != nil {
		slog.Error("Error fetching posts", "locale", l, "error", err)
		page.Degraded = true
		return page
	}
	if resp.Contents != nil {
		page.Posts = resp.Contents
	}
	page.Pagination = resp.Pagination
	return page
}

type PostPage struct {
	Meta
	Post *models.Content `json:"post"`
}

// Post loads one article. Unpublished posts are only visible in preview.
// It returns ErrNotFound when the post does not exist or is hidden.
func (ld *Loader) Post(ctx context.Context, l locale.Locale, slug string, preview bool) (*PostPage, error) {
	page := &PostPage{Meta: newMeta(l)}
	post, err := ld.contents.BySlug(ctx, slug, "")
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		slog.Error("Error fetching post", "slug", slug, "error", err)
		page.Degraded = true
		return page, nil
	}
	if !preview && post.Status != models.StatusPublished {
		slog.Debug("post hidden outside preview", "slug", slug, "status", post.Status)
		return nil, ErrNotFound
	}
	page.Post = post
	return page, nil
}

type ProductsPage struct {
	Meta
	Products []ProductCard `json:"products"`
}

func (ld *Loader) Products(ctx context.Context, l locale.Locale) *ProductsPage {
	page := &ProductsPage{Meta: newMeta(l), Products: []ProductCard{}}
	resp, err := ld.products.List(ctx, apiclient.ProductListParams{
		PerPage:  productsPerPage,
		Language: string(l),
	})
	if err != nil {
		slog.Error("Failed to fetch products", "locale", l, "error", err)
		page.Degraded = true
		return page
	}
	page.Products = productCards(resp.Products, l)
	return page
}

type ProductPage struct {
	Meta
	Product *ProductCard `json:"product"`
}

// Product loads one product priced in code, defaulting to TWD.
func (ld *Loader) Product(ctx context.Context, l locale.Locale, productID, code string) (*ProductPage, error) {
	if code == "" {
		code = currency.Default
	}
	page := &ProductPage{Meta: newMeta(l)}
	p, err := ld.products.Get(ctx, productID, string(l), code)
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		slog.Error("Error fetching product", "product_id", productID, "error", err)
		page.Degraded = true
		return page, nil
	}
	card := newProductCard(*p, l)
	page.Product = &card
	return page, nil
}
