// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/media"
	"github.com/polaris-parent/sitegate/models"
	"github.com/polaris-parent/sitegate/testutil"
)

func TestGetMediaMeta(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		upstream       http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing fileId",
			path:           "/api/strapi-media-meta",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"fileId is required"}`,
		},
		{
			name: "found",
			path: "/api/strapi-media-meta?fileId=12",
			upstream: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":[{"id":4,"documentId":"m4","place":"Taipei","file":{"id":12}}]}`))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":{"id":4,"documentId":"m4","place":"Taipei","tags":[],"category":[]}}`,
		},
		{
			name: "not found",
			path: "/api/strapi-media-meta?fileId=99",
			upstream: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":[]}`))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":null}`,
		},
		{
			name: "upstream rejection",
			path: "/api/strapi-media-meta?fileId=12",
			upstream: func(w http.ResponseWriter, r *http.Request) {
				testutil.StrapiError(w, http.StatusForbidden, "Forbidden")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := tt.upstream
			if upstream == nil {
				upstream = failIfCalled(t)
			}
			client, _ := newTestCMS(t, testutil.TestToken, upstream)
			handler := NewMediaMetaHandler(client)

			w := httptest.NewRecorder()
			handler.Get(w, testutil.MakeRequest("GET", tt.path, nil, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if got := strings.TrimSpace(w.Body.String()); got != tt.expectedBody {
				t.Errorf("Expected body %s, got %s", tt.expectedBody, got)
			}
		})
	}
}

func TestSaveMediaMeta(t *testing.T) {
	client, up := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":8,"documentId":"m8"}}`))
	})
	handler := NewMediaMetaHandler(client)

	w := httptest.NewRecorder()
	handler.Save(w, testutil.MakeRequest("POST", "/api/strapi-media-meta", `{"fileId":12,"documentId":"","place":"Kyoto","tags":[1,"2"]}`, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"data":{"id":8,"documentId":"m8"}}` {
		t.Errorf("Unexpected body %s", got)
	}

	call := up.LastCall(t)
	if call.Method != "POST" || call.Path != "/api/media-metas" {
		t.Errorf("Unexpected upstream call %s %s", call.Method, call.Path)
	}
	var sent struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(call.Body, &sent); err != nil {
		t.Fatal(err)
	}
	if sent.Data["place"] != "Kyoto" || sent.Data["file"] != float64(12) {
		t.Errorf("Unexpected payload %s", call.Body)
	}
}

func TestSaveMediaMeta_Failures(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		client, up := newTestCMS(t, "", failIfCalled(t))
		w := httptest.NewRecorder()
		NewMediaMetaHandler(client).Save(w, testutil.MakeRequest("POST", "/api/strapi-media-meta", `{"fileId":1}`, nil))
		testutil.AssertStatus(t, w, http.StatusInternalServerError)
		assertProxyError(t, w, "API token not configured")
		testutil.AssertNoCalls(t, up)
	})

	t.Run("upstream rejection carries details", func(t *testing.T) {
		client, _ := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`invalid relation`))
		})
		w := httptest.NewRecorder()
		NewMediaMetaHandler(client).Save(w, testutil.MakeRequest("POST", "/api/strapi-media-meta", `{"documentId":"m4"}`, nil))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		var resp models.ProxyErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Error != "Update failed" || resp.Details != "invalid relation" {
			t.Errorf("Unexpected error body %+v", resp)
		}
	})
}

func TestAllMediaMeta_AlwaysOK(t *testing.T) {
	t.Run("upstream error", func(t *testing.T) {
		client, _ := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
			testutil.StrapiError(w, http.StatusInternalServerError, "boom")
		})
		w := httptest.NewRecorder()
		NewMediaMetaHandler(client).All(w, testutil.MakeRequest("GET", "/api/strapi-media-meta/all", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := strings.TrimSpace(w.Body.String()); got != `{"data":[]}` {
			t.Errorf("Expected empty list, got %s", got)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewMediaMetaHandler(unreachableCMS("")).All(w, testutil.MakeRequest("GET", "/api/strapi-media-meta/all", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("ok", func(t *testing.T) {
		client, _ := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":1,"file":{"id":3},"category":[{"id":5,"name":"Charts"}]}]}`))
		})
		w := httptest.NewRecorder()
		NewMediaMetaHandler(client).All(w, testutil.MakeRequest("GET", "/api/strapi-media-meta/all", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.DataResponse[[]models.MediaMetaSummary]
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Data) != 1 || resp.Data[0].File.ID != 3 || resp.Data[0].Category[0].Name != "Charts" {
			t.Errorf("Unexpected summaries %+v", resp.Data)
		}
	})
}

func TestLibraryFiles(t *testing.T) {
	client, up := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":1,"name":"a.png","mime":"image/png","size":2,"url":"/uploads/a.png"}],"pagination":{"page":2,"pageSize":10,"pageCount":3,"total":25}}`))
	})
	handler := NewLibraryHandler(client)

	w := httptest.NewRecorder()
	handler.Files(w, testutil.MakeRequest("GET", "/api/media/library?page=2&perPage=10&folder=4", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var page media.Page
	testutil.AssertJSON(t, w, &page)
	if len(page.Media) != 1 || page.Media[0].FileSize != 2048 {
		t.Errorf("Unexpected media %+v", page.Media)
	}
	if page.Pagination.Page != 2 || page.Pagination.Pages != 3 || !page.Pagination.HasNext || !page.Pagination.HasPrev {
		t.Errorf("Unexpected pagination %+v", page.Pagination)
	}

	q := up.LastCall(t).RawQuery
	for _, want := range []string{"pagination%5Bpage%5D=2", "pagination%5BpageSize%5D=10", "filters%5Bfolder%5D%5Bid%5D%5B%24eq%5D=4"} {
		if !strings.Contains(q, want) {
			t.Errorf("Expected %s in upstream query %s", want, q)
		}
	}
}

func TestLibraryFiles_Degrades(t *testing.T) {
	w := httptest.NewRecorder()
	NewLibraryHandler(unreachableCMS(testutil.TestToken)).Files(w, testutil.MakeRequest("GET", "/api/media/library?perPage=500", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var page media.Page
	testutil.AssertJSON(t, w, &page)
	if page.Media == nil || len(page.Media) != 0 {
		t.Errorf("Expected empty media list, got %+v", page.Media)
	}
	if page.Pagination.PerPage != 100 {
		t.Errorf("Expected perPage capped at 100, got %d", page.Pagination.PerPage)
	}
}

func TestLibraryFolders(t *testing.T) {
	client, _ := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":"Root","path":"/1"},{"id":2,"name":"Child","path":"/1/2","parent":{"id":1}}]}`))
	})
	handler := NewLibraryHandler(client)

	w := httptest.NewRecorder()
	handler.Folders(w, testutil.MakeRequest("GET", "/api/media/folders", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var tree models.DataResponse[[]*media.Folder]
	testutil.AssertJSON(t, w, &tree)
	if len(tree.Data) != 1 || len(tree.Data[0].Children) != 1 || tree.Data[0].Children[0].Name != "Child" {
		t.Errorf("Unexpected tree %+v", tree.Data)
	}

	w = httptest.NewRecorder()
	handler.Folders(w, testutil.MakeRequest("GET", "/api/media/folders?flat=true", nil, nil))
	var flat models.DataResponse[[]media.FlatFolder]
	testutil.AssertJSON(t, w, &flat)
	if len(flat.Data) != 2 || flat.Data[1].Depth != 1 {
		t.Errorf("Unexpected flat list %+v", flat.Data)
	}
}

func TestLibraryFolders_BadUpstreamData(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		query    string
		wantLen  int
		wantRoot int
	}{
		{"data not a list", `{"data":"folders"}`, "", 0, 0},
		{"folder ids as strings", `{"data":[{"id":"x"}]}`, "?flat=true", 0, 0},
		{"parent cycle with duplicate", `{"data":[{"id":1,"parent":{"id":2}},{"id":2,"parent":{"id":1}},{"id":1}]}`, "?flat=true", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestCMS(t, testutil.TestToken, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			w := httptest.NewRecorder()
			NewLibraryHandler(client).Folders(w, testutil.MakeRequest("GET", "/api/media/folders"+tt.query, nil, nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp struct {
				Data []struct {
					Folder struct {
						ID int `json:"id"`
					} `json:"folder"`
				} `json:"data"`
			}
			testutil.AssertJSON(t, w, &resp)
			if resp.Data == nil || len(resp.Data) != tt.wantLen {
				t.Fatalf("Expected %d folders, got %+v", tt.wantLen, resp.Data)
			}
			if tt.wantLen > 0 && resp.Data[0].Folder.ID != tt.wantRoot {
				t.Errorf("Expected root %d first, got %d", tt.wantRoot, resp.Data[0].Folder.ID)
			}
		})
	}
}
