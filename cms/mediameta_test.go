// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/models"
)

func TestFindMediaMeta_Filtered(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":4,"documentId":"m4","place":"Taipei","tags":null,"category":[{"id":1,"name":"News"}],"file":{"id":12}}]}`))
	})

	got, err := c.FindMediaMeta(context.Background(), "12")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != 4 || got.DocumentID != "m4" {
		t.Fatalf("FindMediaMeta() = %+v", got)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Tags = %v, want empty list", got.Tags)
	}
	if got.File != nil {
		t.Error("file relation should be dropped")
	}

	q := up.LastCall(t)
	if up.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", up.CallCount())
	}
	vals := mustQuery(t, q.RawQuery)
	if vals["filters[file][id][$eq]"] != "12" || vals["populate[2]"] != "file" {
		t.Errorf("query = %v", vals)
	}
}

func TestFindMediaMeta_FallbackScan(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filters[file][id][$eq]") != "" {
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.Write([]byte(`{"data":[
			{"id":1,"file":{"id":3}},
			{"id":2,"file":12},
			{"id":5,"file":null}
		]}`))
	})

	got, err := c.FindMediaMeta(context.Background(), "12")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != 2 {
		t.Fatalf("FindMediaMeta() = %+v, want id 2", got)
	}
	if up.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", up.CallCount())
	}
}

func TestFindMediaMeta_NotFound(t *testing.T) {
	c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	got, err := c.FindMediaMeta(context.Background(), "99")
	if err != nil || got != nil {
		t.Errorf("FindMediaMeta() = %+v, %v; want nil, nil", got, err)
	}
}

func TestFindMediaMeta_UpstreamError(t *testing.T) {
	c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	_, err := c.FindMediaMeta(context.Background(), "1")
	if StatusOf(err) != http.StatusForbidden {
		t.Errorf("error = %v, want 403", err)
	}
}

func TestSaveMediaMeta_Update(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":4,"documentId":"m4"}}`))
	})

	place := "Kyoto"
	tags := []models.FlexibleID{"1", "2"}
	got, err := c.SaveMediaMeta(context.Background(), models.MediaMetaInput{
		FileID:     "12",
		DocumentID: "m4",
		Place:      &place,
		Tags:       &tags,
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"id":4,"documentId":"m4"}` {
		t.Errorf("SaveMediaMeta() = %s", got)
	}

	call := up.LastCall(t)
	if call.Method != http.MethodPut || call.Path != "/api/media-metas/m4" {
		t.Errorf("upstream call %s %s", call.Method, call.Path)
	}
	var sent map[string]map[string]interface{}
	if err := json.Unmarshal(call.Body, &sent); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"place": "Kyoto",
		"tags":  map[string]interface{}{"set": []interface{}{float64(1), float64(2)}},
	}
	if diff := cmp.Diff(want, sent["data"]); diff != "" {
		t.Errorf("update payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveMediaMeta_Create(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":8}}`))
	})

	var empty []models.FlexibleID
	if _, err := c.SaveMediaMeta(context.Background(), models.MediaMetaInput{FileID: "12", Category: &empty}); err != nil {
		t.Fatal(err)
	}

	call := up.LastCall(t)
	if call.Method != http.MethodPost || call.Path != "/api/media-metas" {
		t.Errorf("upstream call %s %s", call.Method, call.Path)
	}
	if string(call.Body) != `{"data":{"category":{"set":[]},"file":12}}` {
		t.Errorf("create payload = %s", call.Body)
	}
}

func TestSaveMediaMeta_NothingToSave(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {})
	got, err := c.SaveMediaMeta(context.Background(), models.MediaMetaInput{})
	if err != nil || string(got) != "null" {
		t.Errorf("SaveMediaMeta() = %s, %v", got, err)
	}
	if up.CallCount() != 0 {
		t.Error("nothing should be sent")
	}
}

func TestSaveMediaMeta_Failure(t *testing.T) {
	c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid relation"}}`))
	})
	_, err := c.SaveMediaMeta(context.Background(), models.MediaMetaInput{DocumentID: "m4"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v", err)
	}
	if apiErr.Message != "Update failed" || apiErr.Details != `{"error":{"message":"Invalid relation"}}` {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestListAllMediaMeta(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"documentId":"a","file":{"id":3,"url":"/u/a.png"},"category":null},{"id":2,"file":null,"category":[{"id":5,"name":"Charts"}]}]}`))
	})

	got, err := c.ListAllMediaMeta(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []models.MediaMetaSummary{
		{ID: 1, DocumentID: "a", File: &models.FileRef{ID: 3}, Category: []models.Category{}},
		{ID: 2, Category: []models.Category{{ID: 5, Name: "Charts"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListAllMediaMeta() mismatch (-want +got):\n%s", diff)
	}

	vals := mustQuery(t, up.LastCall(t).RawQuery)
	if vals["pagination[pageSize]"] != "1000" {
		t.Errorf("query = %v", vals)
	}
}
