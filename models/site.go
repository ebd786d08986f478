// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Content status constants
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Order status constants
const (
	OrderPending = "pending"
	OrderPaid    = "paid"
	OrderFailed  = "failed"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// Site API request types

type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateContentData struct {
	Title           string  `json:"title"`
	ContentType     string  `json:"content_type,omitempty"`
	Content         string  `json:"content,omitempty"`
	Summary         string  `json:"summary,omitempty"`
	Slug            string  `json:"slug,omitempty"`
	Status          string  `json:"status,omitempty"`
	CategoryID      int     `json:"category_id,omitempty"`
	FeaturedImage   string  `json:"featured_image,omitempty"`
	CoverImage      string  `json:"cover_image,omitempty"`
	MetaTitle       string  `json:"meta_title,omitempty"`
	MetaDescription string  `json:"meta_description,omitempty"`
	TagIDs          []int   `json:"tag_ids,omitempty"`
	Language        string  `json:"language,omitempty"`
	OriginalID      *int    `json:"original_id,omitempty"`
	PublishedAt     *string `json:"published_at,omitempty"`
}

type TaxonomyData struct {
	Code      string            `json:"code"`
	Slugs     map[string]string `json:"slugs,omitempty"`
	ParentID  *int              `json:"parent_id,omitempty"`
	SortOrder *int              `json:"sort_order,omitempty"`
}

type OrderCreateData struct {
	Items         []OrderItem `json:"items"`
	Amount        float64     `json:"amount"`
	Currency      string      `json:"currency,omitempty"`
	Language      string      `json:"language,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
}

type CreateProductData struct {
	ProductID         string            `json:"product_id"`
	Names             map[string]string `json:"names"`
	Descriptions      map[string]string `json:"descriptions,omitempty"`
	ShortDescriptions map[string]string `json:"short_descriptions,omitempty"`
	Price             float64           `json:"price"`
	OriginalPrice     *float64          `json:"original_price,omitempty"`
	StockQuantity     *int              `json:"stock_quantity,omitempty"`
	StockStatus       string            `json:"stock_status,omitempty"`
	FeaturedImageID   *int              `json:"featured_image_id,omitempty"`
	GalleryImages     []int             `json:"gallery_images,omitempty"`
	CategoryID        *int              `json:"category_id,omitempty"`
	TagIDs            []int             `json:"tag_ids,omitempty"`
	IsActive          *bool             `json:"is_active,omitempty"`
	IsFeatured        *bool             `json:"is_featured,omitempty"`
	SortOrder         *int              `json:"sort_order,omitempty"`
	MetaTitle         string            `json:"meta_title,omitempty"`
	MetaDescription   string            `json:"meta_description,omitempty"`
	DetailContentID   *int              `json:"detail_content_id,omitempty"`
}

type CreateProductPriceData struct {
	Currency      string   `json:"currency"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type SubmissionData struct {
	CharacterName string `json:"character_name,omitempty"`
	BirthYear     string `json:"birth_year,omitempty"`
	BirthMonth    string `json:"birth_month,omitempty"`
	BirthDay      string `json:"birth_day,omitempty"`
	BirthTime     string `json:"birth_time,omitempty"`
	BirthPlace    string `json:"birth_place,omitempty"`
	Question      string `json:"question,omitempty"`
}

type UserData struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Site API response types

type MessageResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
}

type LoginResponse struct {
	User User `json:"user"`
}

type PaginationInfo struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type ContentListResponse struct {
	Contents   []Content      `json:"contents"`
	Pagination PaginationInfo `json:"pagination"`
}

type ProductListResponse struct {
	Products   []Product      `json:"products"`
	Pagination PaginationInfo `json:"pagination"`
}

type ProductAdminListResponse struct {
	Products   []ProductAdmin `json:"products"`
	Pagination PaginationInfo `json:"pagination"`
}

type OrderListResponse struct {
	Orders     []Order        `json:"orders"`
	Pagination PaginationInfo `json:"pagination"`
}

type OrderCreateResponse struct {
	Message    string  `json:"message"`
	OrderNo    string  `json:"order_no"`
	PaymentURL *string `json:"payment_url"`
}

type UserListResponse struct {
	Users      []User         `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}

type SubmissionListResponse struct {
	Submissions []Submission   `json:"submissions"`
	Pagination  PaginationInfo `json:"pagination"`
}

type TagFindOrCreateResponse struct {
	Message string `json:"message"`
	Tags    []Term `json:"tags"`
	TagIDs  []int  `json:"tag_ids"`
}

// Site domain types

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ContentCount int        `json:"content_count,omitempty"`
}

// Term is a category or tag of the site API. Name and Slug are the
// localized projections the content endpoints return.
type Term struct {
	ID        int               `json:"id"`
	Code      string            `json:"code"`
	Slugs     map[string]string `json:"slugs,omitempty"`
	ParentID  *int              `json:"parent_id,omitempty"`
	SortOrder int               `json:"sort_order,omitempty"`
	Name      string            `json:"name,omitempty"`
	Slug      string            `json:"slug,omitempty"`
}

type TranslationInfo struct {
	Language string `json:"language"`
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
}

type Content struct {
	ID                 int               `json:"id"`
	Title              string            `json:"title"`
	Content            string            `json:"content,omitempty"`
	Summary            string            `json:"summary,omitempty"`
	Slug               string            `json:"slug"`
	Status             string            `json:"status"`
	PostType           string            `json:"post_type,omitempty"`
	ContentType        string            `json:"content_type,omitempty"`
	Category           *Term             `json:"category,omitempty"`
	Author             *User             `json:"author,omitempty"`
	Tags               []Term            `json:"tags,omitempty"`
	FeaturedImage      string            `json:"featured_image,omitempty"`
	CoverImage         string            `json:"cover_image,omitempty"`
	MetaTitle          string            `json:"meta_title,omitempty"`
	MetaDescription    string            `json:"meta_description,omitempty"`
	ViewsCount         int               `json:"views_count"`
	LikesCount         int               `json:"likes_count"`
	PublishedAt        *time.Time        `json:"published_at,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Language           string            `json:"language,omitempty"`
	OriginalID         *int              `json:"original_id,omitempty"`
	Translations       []TranslationInfo `json:"translations,omitempty"`
	AvailableLanguages []string          `json:"available_languages,omitempty"`
}

// Kind returns the content type; list and detail endpoints use different
// field names for it.
func (c Content) Kind() string {
	if c.ContentType != "" {
		return c.ContentType
	}
	return c.PostType
}

type Comment struct {
	ID          int       `json:"id"`
	AuthorName  string    `json:"author_name"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	Replies     []Comment `json:"replies,omitempty"`
}

type ProductRef struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Slug string `json:"slug"`
}

type ProductDetail struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content,omitempty"`
	Summary       string     `json:"summary,omitempty"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	CoverImage    string     `json:"cover_image,omitempty"`
	Status        string     `json:"status,omitempty"`
	Language      string     `json:"language"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type Product struct {
	ID                  int            `json:"id"`
	ProductID           string         `json:"product_id"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	ShortDescription    string         `json:"short_description,omitempty"`
	Price               float64        `json:"price"`
	OriginalPrice       *float64       `json:"original_price,omitempty"`
	StockQuantity       int            `json:"stock_quantity"`
	StockStatus         string         `json:"stock_status"`
	Image               string         `json:"image,omitempty"`
	Category            *ProductRef    `json:"category,omitempty"`
	Tags                []ProductRef   `json:"tags"`
	IsFeatured          bool           `json:"is_featured"`
	SortOrder           int            `json:"sort_order"`
	ViewsCount          int            `json:"views_count"`
	SalesCount          int            `json:"sales_count"`
	DetailContentID     *int           `json:"detail_content_id,omitempty"`
	HasDetail           bool           `json:"has_detail,omitempty"`
	DetailContent       *ProductDetail `json:"detail_content,omitempty"`
	Language            string         `json:"language,omitempty"`
	Currency            string         `json:"currency,omitempty"`
	CurrencySymbol      string         `json:"currency_symbol,omitempty"`
	AvailableLanguages  []string       `json:"available_languages,omitempty"`
	AvailableCurrencies []string       `json:"available_currencies,omitempty"`
}

type ProductAdmin struct {
	ID                int               `json:"id"`
	ProductID         string            `json:"product_id"`
	Names             map[string]string `json:"names"`
	Descriptions      map[string]string `json:"descriptions"`
	ShortDescriptions map[string]string `json:"short_descriptions"`
	Price             float64           `json:"price"`
	OriginalPrice     *float64          `json:"original_price,omitempty"`
	StockQuantity     int               `json:"stock_quantity"`
	StockStatus       string            `json:"stock_status"`
	FeaturedImageID   *int              `json:"featured_image_id,omitempty"`
	GalleryImages     []int             `json:"gallery_images"`
	CategoryID        *int              `json:"category_id,omitempty"`
	TagIDs            []int             `json:"tag_ids"`
	IsActive          bool              `json:"is_active"`
	IsFeatured        bool              `json:"is_featured"`
	SortOrder         int               `json:"sort_order"`
	MetaTitle         string            `json:"meta_title,omitempty"`
	MetaDescription   string            `json:"meta_description,omitempty"`
	ViewsCount        int               `json:"views_count"`
	SalesCount        int               `json:"sales_count"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DetailContentID   *int              `json:"detail_content_id,omitempty"`
	Language          string            `json:"language,omitempty"`
	OriginalID        *int              `json:"original_id,omitempty"`
}

type ProductPrice struct {
	ID            int       `json:"id"`
	ProductID     int       `json:"product_id"`
	Currency      string    `json:"currency"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductTranslation struct {
	ID               int       `json:"id"`
	ProductID        string    `json:"product_id"`
	Language         string    `json:"language"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description,omitempty"`
	OriginalID       *int      `json:"original_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SortOrder struct {
	ID        int `json:"id"`
	SortOrder int `json:"sort_order"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency,omitempty"`
}

type Order struct {
	ID            int         `json:"id"`
	OrderNo       string      `json:"order_no"`
	Amount        float64     `json:"amount"`
	Currency      string      `json:"currency"`
	Language      string      `json:"language"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
}

type PaymentMethod struct {
	ID                  int            `json:"id"`
	Code                string         `json:"code"`
	Name                string         `json:"name"`
	Description         string         `json:"description,omitempty"`
	SupportedCurrencies []string       `json:"supported_currencies"`
	IsActive            bool           `json:"is_active"`
	Config              map[string]any `json:"config,omitempty"`
	SortOrder           int            `json:"sort_order"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type PaymentMethodData struct {
	Code                string            `json:"code,omitempty"`
	Name                map[string]string `json:"name,omitempty"`
	Description         map[string]string `json:"description,omitempty"`
	SupportedCurrencies []string          `json:"supported_currencies,omitempty"`
	IsActive            *bool             `json:"is_active,omitempty"`
	Config              map[string]any    `json:"config,omitempty"`
	SortOrder           *int              `json:"sort_order,omitempty"`
}

type Submission struct {
	ID         int       `json:"id"`
	Status     string    `json:"status"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	SubmissionData
}

type I18nSettings struct {
	Enabled         bool              `json:"enabled"`
	DefaultLanguage string            `json:"default_language"`
	Languages       []string          `json:"languages"`
	LanguageNames   map[string]string `json:"language_names"`
}

type HomepageSlide struct {
	ID        string            `json:"id"`
	ImageURL  string            `json:"image_url"`
	AltText   string            `json:"alt_text"`
	SortOrder int               `json:"sort_order"`
	Subtitles map[string]string `json:"subtitles"`
}

type AboutSection struct {
	Title         string   `json:"title"`
	Philosophy    string   `json:"philosophy"`
	Quote         string   `json:"quote"`
	MissionPoints []string `json:"mission_points"`
}

type HomepageSettings struct {
	Slides       []HomepageSlide         `json:"slides"`
	ButtonText   map[string]string       `json:"button_text"`
	AboutSection map[string]AboutSection `json:"about_section,omitempty"`
	UpdatedAt    string                  `json:"updated_at"`
}
