// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"context"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestListFiles_RetriesOnceWithoutCredential(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Missing or invalid credentials"}}`))
			return
		}
		w.Write([]byte(`[{"id":1,"name":"a.png"}]`))
	})

	got, err := c.ListFiles(context.Background(), "sort=createdAt:desc")
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if string(got) != `[{"id":1,"name":"a.png"}]` {
		t.Errorf("ListFiles() = %s", got)
	}

	calls := up.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", len(calls))
	}
	if calls[0].Authorization != "Bearer tok" || calls[1].Authorization != "" {
		t.Errorf("auth headers = %q, %q", calls[0].Authorization, calls[1].Authorization)
	}
	if calls[1].RawQuery != "sort=createdAt:desc" {
		t.Errorf("retry dropped query: %q", calls[1].RawQuery)
	}
}

func TestListFiles_NoThirdAttempt(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{}`))
	})

	_, err := c.ListFiles(context.Background(), "")
	if StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401 APIError", err)
	}
	var apiErr *APIError
	errors.As(err, &apiErr)
	if apiErr.Message != "Unauthorized" {
		t.Errorf("Message = %q, want status text", apiErr.Message)
	}
	if n := up.CallCount(); n != 2 {
		t.Errorf("expected exactly 2 calls, got %d", n)
	}
}

func TestListFiles_NoRetryWithoutCredential(t *testing.T) {
	c, up := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if _, err := c.ListFiles(context.Background(), ""); StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("error = %v", err)
	}
	if n := up.CallCount(); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

func TestListFiles_NoRetryOnOtherStatus(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	c.ListFiles(context.Background(), "")
	if n := up.CallCount(); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

func TestUpdateFileInfo_SendsFileInfoField(t *testing.T) {
	var gotInfo string
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			t.Errorf("bad content type: %v", err)
			return
		}
		form, err := multipart.NewReader(r.Body, params["boundary"]).ReadForm(1 << 20)
		if err != nil {
			t.Errorf("bad form: %v", err)
			return
		}
		gotInfo = form.Value["fileInfo"][0]
		w.Write([]byte(`{"id":5,"name":"renamed.png"}`))
	})

	info := json.RawMessage(`{"name":"renamed.png","alternativeText":"alt"}`)
	got, err := c.UpdateFileInfo(context.Background(), "5", info)
	if err != nil {
		t.Fatal(err)
	}
	if gotInfo != string(info) {
		t.Errorf("fileInfo = %q", gotInfo)
	}
	if !strings.Contains(string(got), "renamed.png") {
		t.Errorf("UpdateFileInfo() = %s", got)
	}
	call := up.LastCall(t)
	if call.Method != http.MethodPost || call.Path != "/api/upload/files/5" {
		t.Errorf("upstream call %s %s", call.Method, call.Path)
	}
}

func TestUpload_Passthrough(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":9}]`))
	})
	body := "--b\r\nContent-Disposition: form-data; name=\"files\"; filename=\"a.txt\"\r\n\r\nhi\r\n--b--\r\n"
	got, err := c.Upload(context.Background(), "multipart/form-data; boundary=b", strings.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[{"id":9}]` {
		t.Errorf("Upload() = %s", got)
	}
	call := up.LastCall(t)
	if string(call.Body) != body || call.ContentType != "multipart/form-data; boundary=b" {
		t.Errorf("body or content type not passed through: %q %q", call.Body, call.ContentType)
	}
}

func TestUpload_FallbackMessage(t *testing.T) {
	c, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte("too big"))
	})
	_, err := c.Upload(context.Background(), "multipart/form-data; boundary=b", strings.NewReader("x"), 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Upload failed" || apiErr.Status != 413 {
		t.Errorf("error = %v", err)
	}
}

func TestFolders(t *testing.T) {
	c, up := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[{"id":1,"name":"Root","pathId":1,"path":"/1"}]}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"message":"Folder not found"}}`))
		default:
			w.Write([]byte(`{"data":{"id":2,"name":"New"}}`))
		}
	})
	ctx := context.Background()

	if got, err := c.ListFolders(ctx); err != nil || !strings.Contains(string(got), "Root") {
		t.Errorf("ListFolders() = %s, %v", got, err)
	}
	if _, err := c.CreateFolder(ctx, json.RawMessage(`{"name":"New","parent":null}`)); err != nil {
		t.Errorf("CreateFolder() error = %v", err)
	}
	if _, err := c.UpdateFolder(ctx, "2", json.RawMessage(`{"name":"Renamed"}`)); err != nil {
		t.Errorf("UpdateFolder() error = %v", err)
	}
	err := c.DeleteFolder(ctx, "3")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Folder not found" {
		t.Errorf("DeleteFolder() error = %v", err)
	}

	calls := up.Calls()
	if calls[2].Method != http.MethodPut || calls[2].Path != "/api/upload/folders/2" {
		t.Errorf("update call = %s %s", calls[2].Method, calls[2].Path)
	}
	if string(calls[1].Body) != `{"name":"New","parent":null}` {
		t.Errorf("create body = %s", calls[1].Body)
	}
}
