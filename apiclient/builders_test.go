// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/models"
)

func TestRequestBuilders(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name   string
		call   func(ctx context.Context, c *Client) error
		method string
		path   string
		query  url.Values
		body   string
		reply  string
	}{
		// users
		{
			name: "users list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Users().List(ctx, 2, 20, "admin", "mei")
				return err
			},
			method: "GET",
			path:   "/users",
			query:  url.Values{"page": {"2"}, "per_page": {"20"}, "role": {"admin"}, "search": {"mei"}},
		},
		{
			name: "users list without filters",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Users().List(ctx, 0, 0, "", "")
				return err
			},
			method: "GET",
			path:   "/users",
		},
		{
			name: "users create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Users().Create(ctx, models.UserData{Username: "mei", Email: "mei@polaris.test", Role: "editor"})
				return err
			},
			method: "POST",
			path:   "/users",
			body:   `{"username":"mei","email":"mei@polaris.test","role":"editor"}`,
		},
		{
			name: "users update",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Users().Update(ctx, 3, models.UserData{IsActive: &no})
				return err
			},
			method: "PUT",
			path:   "/users/3",
			body:   `{"is_active":false}`,
		},
		{
			name:   "users delete",
			call:   func(ctx context.Context, c *Client) error { return c.Users().Delete(ctx, 3) },
			method: "DELETE",
			path:   "/users/3",
		},
		{
			name: "users toggle status",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Users().ToggleStatus(ctx, 3)
				return err
			},
			method: "POST",
			path:   "/users/3/toggle-status",
		},

		// submissions
		{
			name: "submissions create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Submissions().Create(ctx, models.SubmissionData{CharacterName: "Lin", BirthYear: "1990", Question: "career"})
				return err
			},
			method: "POST",
			path:   "/submissions",
			body:   `{"character_name":"Lin","birth_year":"1990","question":"career"}`,
		},
		{
			name: "submissions list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Submissions().List(ctx, 1, 10, "pending")
				return err
			},
			method: "GET",
			path:   "/admin/submissions",
			query:  url.Values{"page": {"1"}, "per_page": {"10"}, "status": {"pending"}},
		},
		{
			name: "submissions update",
			call: func(ctx context.Context, c *Client) error {
				return c.Submissions().Update(ctx, 5, "done", "called back")
			},
			method: "PUT",
			path:   "/admin/submissions/5",
			body:   `{"status":"done","admin_notes":"called back"}`,
		},
		{
			name:   "submissions update with nothing set",
			call:   func(ctx context.Context, c *Client) error { return c.Submissions().Update(ctx, 5, "", "") },
			method: "PUT",
			path:   "/admin/submissions/5",
			body:   `{}`,
		},

		// orders
		{
			name: "orders list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Orders().List(ctx, 2, 5)
				return err
			},
			method: "GET",
			path:   "/orders",
			query:  url.Values{"page": {"2"}, "per_page": {"5"}},
		},
		{
			name: "orders mock payment",
			call: func(ctx context.Context, c *Client) error {
				return c.Orders().MockPaymentWebhook(ctx, "PO-1", "success")
			},
			method: "POST",
			path:   "/webhooks/mock-payment",
			body:   `{"order_no":"PO-1","status":"success"}`,
		},

		// payment methods
		{
			name: "payment methods list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.PaymentMethods().List(ctx, "USD", "en")
				return err
			},
			method: "GET",
			path:   "/payment-methods",
			query:  url.Values{"currency": {"USD"}, "language": {"en"}},
			reply:  `{"payment_methods":[]}`,
		},
		{
			name: "payment methods get",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.PaymentMethods().Get(ctx, 2, "ja")
				return err
			},
			method: "GET",
			path:   "/payment-methods/2",
			query:  url.Values{"language": {"ja"}},
		},
		{
			name: "payment methods admin create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.PaymentMethods().AdminCreate(ctx, models.PaymentMethodData{
					Code:                "card",
					Name:                map[string]string{"en": "Card"},
					SupportedCurrencies: []string{"TWD", "USD"},
				})
				return err
			},
			method: "POST",
			path:   "/admin/payment-methods",
			body:   `{"code":"card","name":{"en":"Card"},"supported_currencies":["TWD","USD"]}`,
		},
		{
			name: "payment methods admin update",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.PaymentMethods().AdminUpdate(ctx, 2, models.PaymentMethodData{IsActive: &yes})
				return err
			},
			method: "PUT",
			path:   "/admin/payment-methods/2",
			body:   `{"is_active":true}`,
		},
		{
			name:   "payment methods admin delete",
			call:   func(ctx context.Context, c *Client) error { return c.PaymentMethods().AdminDelete(ctx, 2) },
			method: "DELETE",
			path:   "/admin/payment-methods/2",
		},

		// products
		{
			name: "products list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().List(ctx, ProductListParams{Page: 1, PerPage: 12, CategoryID: 3, Featured: &yes, Search: "tarot", Language: "en", Currency: "USD"})
				return err
			},
			method: "GET",
			path:   "/products",
			query:  url.Values{"page": {"1"}, "per_page": {"12"}, "category_id": {"3"}, "is_featured": {"true"}, "search": {"tarot"}, "language": {"en"}, "currency": {"USD"}},
		},
		{
			name: "products get",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().Get(ctx, "p-1", "ja", "JPY")
				return err
			},
			method: "GET",
			path:   "/products/p-1",
			query:  url.Values{"language": {"ja"}, "currency": {"JPY"}},
		},
		{
			name: "products admin list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().AdminList(ctx, AdminProductParams{Page: 2, PerPage: 50, IsActive: "true", Search: "natal"})
				return err
			},
			method: "GET",
			path:   "/admin/products",
			query:  url.Values{"page": {"2"}, "per_page": {"50"}, "is_active": {"true"}, "search": {"natal"}},
		},
		{
			name: "products admin get",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().AdminGet(ctx, 7)
				return err
			},
			method: "GET",
			path:   "/admin/products/7",
		},
		{
			name: "products admin create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().AdminCreate(ctx, models.CreateProductData{
					ProductID: "p-9",
					Names:     map[string]string{"en": "Reading"},
					Price:     1200,
				})
				return err
			},
			method: "POST",
			path:   "/admin/products",
			body:   `{"product_id":"p-9","names":{"en":"Reading"},"price":1200}`,
		},
		{
			name: "products admin update",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().AdminUpdate(ctx, 7, map[string]any{"price": 900})
				return err
			},
			method: "PUT",
			path:   "/admin/products/7",
			body:   `{"price":900}`,
		},
		{
			name:   "products admin delete",
			call:   func(ctx context.Context, c *Client) error { return c.Products().AdminDelete(ctx, 7) },
			method: "DELETE",
			path:   "/admin/products/7",
		},
		{
			name: "products toggle status",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().ToggleStatus(ctx, 7)
				return err
			},
			method: "POST",
			path:   "/admin/products/7/toggle-status",
		},
		{
			name: "products prices",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().Prices(ctx, 7)
				return err
			},
			method: "GET",
			path:   "/admin/products/7/prices",
		},
		{
			name: "products create price",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().CreatePrice(ctx, 7, models.CreateProductPriceData{Currency: "USD", Price: 39.5})
				return err
			},
			method: "POST",
			path:   "/admin/products/7/prices",
			body:   `{"currency":"USD","price":39.5}`,
		},
		{
			name: "products update price",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().UpdatePrice(ctx, 7, 2, map[string]any{"price": 41})
				return err
			},
			method: "PUT",
			path:   "/admin/products/7/prices/2",
			body:   `{"price":41}`,
		},
		{
			name:   "products delete price",
			call:   func(ctx context.Context, c *Client) error { return c.Products().DeletePrice(ctx, 7, 2) },
			method: "DELETE",
			path:   "/admin/products/7/prices/2",
		},
		{
			name: "products translations",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().Translations(ctx, 7)
				return err
			},
			method: "GET",
			path:   "/admin/products/7/translations",
		},
		{
			name: "products create translation",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products().CreateTranslation(ctx, 7, "ja")
				return err
			},
			method: "POST",
			path:   "/admin/products/7/translations",
			body:   `{"language":"ja"}`,
		},
		{
			name: "products sort order",
			call: func(ctx context.Context, c *Client) error {
				return c.Products().UpdateSortOrder(ctx, []models.SortOrder{{ID: 1, SortOrder: 2}, {ID: 3, SortOrder: 1}})
			},
			method: "PUT",
			path:   "/admin/products/sort-order",
			body:   `{"sort_orders":[{"id":1,"sort_order":2},{"id":3,"sort_order":1}]}`,
		},

		// settings
		{
			name: "settings i18n",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Settings().I18n(ctx)
				return err
			},
			method: "GET",
			path:   "/settings/i18n",
		},
		{
			name: "settings update i18n",
			call: func(ctx context.Context, c *Client) error {
				return c.Settings().UpdateI18n(ctx, models.I18nSettings{
					Enabled:         true,
					DefaultLanguage: "zh-TW",
					Languages:       []string{"zh-TW", "en"},
					LanguageNames:   map[string]string{"zh-TW": "繁體中文", "en": "English"},
				})
			},
			method: "PUT",
			path:   "/settings/i18n",
			body:   `{"enabled":true,"default_language":"zh-TW","languages":["zh-TW","en"],"language_names":{"zh-TW":"繁體中文","en":"English"}}`,
		},
		{
			name: "settings add language",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Settings().AddLanguage(ctx, "ja", "日本語")
				return err
			},
			method: "POST",
			path:   "/settings/i18n/languages",
			body:   `{"code":"ja","name":"日本語"}`,
		},
		{
			name: "settings remove language",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Settings().RemoveLanguage(ctx, "zh-CN")
				return err
			},
			method: "DELETE",
			path:   "/settings/i18n/languages/zh-CN",
		},
		{
			name: "settings homepage",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Settings().Homepage(ctx)
				return err
			},
			method: "GET",
			path:   "/settings/homepage",
		},
		{
			name: "settings update homepage",
			call: func(ctx context.Context, c *Client) error {
				return c.Settings().UpdateHomepage(ctx, map[string]any{"hero_title": "Polaris"})
			},
			method: "PUT",
			path:   "/settings/homepage",
			body:   `{"hero_title":"Polaris"}`,
		},

		// contents
		{
			name: "contents list",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().List(ctx, ContentListParams{Page: 2, PerPage: 12, CategoryID: 4, Status: "published", Type: "article", Tag: "astro", Search: "moon", Language: "en"})
				return err
			},
			method: "GET",
			path:   "/contents",
			query:  url.Values{"page": {"2"}, "per_page": {"12"}, "category_id": {"4"}, "status": {"published"}, "type": {"article"}, "tag": {"astro"}, "search": {"moon"}, "language": {"en"}},
		},
		{
			name: "contents get",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().Get(ctx, 4)
				return err
			},
			method: "GET",
			path:   "/contents/4",
		},
		{
			name: "contents by slug",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().BySlug(ctx, "first-post", "en")
				return err
			},
			method: "GET",
			path:   "/contents/slug/first-post",
			query:  url.Values{"language": {"en"}},
		},
		{
			name: "contents create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().Create(ctx, models.CreateContentData{Title: "Hello", Status: "draft", TagIDs: []int{1, 2}})
				return err
			},
			method: "POST",
			path:   "/contents",
			body:   `{"title":"Hello","status":"draft","tag_ids":[1,2]}`,
		},
		{
			name: "contents update",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().Update(ctx, 4, map[string]any{"title": "Renamed"})
				return err
			},
			method: "PUT",
			path:   "/contents/4",
			body:   `{"title":"Renamed"}`,
		},
		{
			name:   "contents delete",
			call:   func(ctx context.Context, c *Client) error { return c.Contents().Delete(ctx, 4) },
			method: "DELETE",
			path:   "/contents/4",
		},
		{
			name: "contents comments",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().Comments(ctx, 4)
				return err
			},
			method: "GET",
			path:   "/contents/4/comments",
			reply:  `[]`,
		},
		{
			name: "contents featured",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Contents().Featured(ctx, 3, "en")
				return err
			},
			method: "GET",
			path:   "/contents/featured",
			query:  url.Values{"language": {"en"}, "limit": {"3"}},
			reply:  `[]`,
		},

		// taxonomy
		{
			name: "categories update",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Categories().Update(ctx, 4, models.TaxonomyData{Code: "news"})
				return err
			},
			method: "PUT",
			path:   "/categories/4",
			body:   `{"code":"news"}`,
		},
		{
			name:   "tags delete",
			call:   func(ctx context.Context, c *Client) error { return c.Tags().Delete(ctx, 9) },
			method: "DELETE",
			path:   "/tags/9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := tt.reply
			if reply == "" {
				reply = `{}`
			}
			c, up := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(reply))
			})

			if err := tt.call(context.Background(), c); err != nil {
				t.Fatalf("call error = %v", err)
			}

			call := up.LastCall(t)
			if call.Method != tt.method {
				t.Errorf("method = %s, want %s", call.Method, tt.method)
			}
			if want := "/api/v1" + tt.path; call.Path != want {
				t.Errorf("path = %s, want %s", call.Path, want)
			}

			wantQuery := tt.query
			if wantQuery == nil {
				wantQuery = url.Values{}
			}
			if diff := cmp.Diff(wantQuery, mustParse(t, call.RawQuery)); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}

			if tt.body == "" {
				if len(call.Body) != 0 {
					t.Errorf("unexpected body %s", call.Body)
				}
				return
			}
			if !strings.HasPrefix(call.ContentType, "application/json") {
				t.Errorf("Content-Type = %q", call.ContentType)
			}
			var want, got any
			if err := json.Unmarshal([]byte(tt.body), &want); err != nil {
				t.Fatalf("bad expected body: %v", err)
			}
			if err := json.Unmarshal(call.Body, &got); err != nil {
				t.Fatalf("sent body is not JSON: %s", call.Body)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
