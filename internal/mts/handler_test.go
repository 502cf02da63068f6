// internal/mts/handler_test.go - Handler tests against a stub service
package mts

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mts-client/internal/config"
)

const featureDoc = `{
	"type": "Feature",
	"geometry": {"type": "LineString", "coordinates": [[45.6, 42.53], [49.758, 48]]},
	"properties": {"id": 2}
}`

func testConfig(baseURL string) *config.Config {
	token := "pk." + base64.RawStdEncoding.EncodeToString([]byte(`{"u": "user"}`))
	return &config.Config{
		Username: "user",
		Token:    token,
		API: config.APIConfig{
			BaseURL:   baseURL,
			Timeout:   5 * time.Second,
			UserAgent: "mts-client/test",
		},
	}
}

func newTestHandler(t *testing.T, srv *httptest.Server) *Handler {
	t.Helper()
	handler, err := NewHandler(testConfig(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	return handler
}

func TestNewHandlerRequiresCredentials(t *testing.T) {
	cfg := testConfig("https://api.example.com")
	cfg.Token = ""

	if _, err := NewHandler(cfg); err == nil {
		t.Error("expected missing credentials to fail")
	}
}

func TestTilesetStatusUsesLatestJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tilesets/v1/user.roads/jobs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": "j1", "tilesetId": "user.roads", "stage": "processing"},
			{"id": "j2", "tilesetId": "user.roads", "stage": "success"}
		]`))
	}))
	defer srv.Close()

	status, err := newTestHandler(t, srv).TilesetStatus(context.Background(), "roads")
	if err != nil {
		t.Fatal(err)
	}
	if status.ID != "user.roads" || status.LatestJob != "j2" || status.Status != "success" {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestTilesetStatusNoJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := newTestHandler(t, srv).TilesetStatus(context.Background(), "roads"); err == nil {
		t.Error("expected an error for a tileset without jobs")
	}
}

func TestActivityPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/activity/v1/user/tilesets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Link", `<https://api.example.com/activity/v1/user/tilesets?start=abc123&access_token=tok>; rel="next"`)
		w.Write([]byte(`[{"id": "user.roads", "requests": 12}]`))
	}))
	defer srv.Close()

	page, err := newTestHandler(t, srv).Activity(context.Background(), ActivityOptions{SortBy: "requests"})
	if err != nil {
		t.Fatal(err)
	}
	if page.Next != "abc123" {
		t.Errorf("expected next token abc123, got %q", page.Next)
	}
}

func TestActivityWithoutLinkHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	page, err := newTestHandler(t, srv).Activity(context.Background(), ActivityOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Next != "" {
		t.Errorf("expected no next token, got %q", page.Next)
	}
}

func TestDeleteSourceCooldown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv)
	if err := handler.DeleteSource(context.Background(), "roads-src"); err != nil {
		t.Fatal(err)
	}

	err := handler.DeleteSource(context.Background(), "roads-src")
	var restricted *RestrictedError
	if !errors.As(err, &restricted) {
		t.Fatalf("expected RestrictedError, got %v", err)
	}
}

func TestUploadSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/tilesets/v1/sources/user/roads-src" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing multipart file: %v", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			t.Error("expected line-delimited feature payload")
		}

		w.Write([]byte(`{"id": "user/roads-src", "files": 1}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "feature.json")
	if err := os.WriteFile(path, []byte(featureDoc), 0644); err != nil {
		t.Fatal(err)
	}

	body, err := newTestHandler(t, srv).UploadSource(context.Background(), "roads-src", []string{path}, UploadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(body) == 0 {
		t.Error("expected the service reply to be returned")
	}
}

func TestUploadSourceRejectsTokenMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("nothing must be sent when the token does not match")
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Token = "pk." + base64.RawStdEncoding.EncodeToString([]byte(`{"u": "someone-else"}`))
	handler, err := NewHandler(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := handler.UploadSource(context.Background(), "roads-src", nil, UploadOptions{}); err == nil {
		t.Error("expected a token mismatch error")
	}
}

func TestUpdateTilesetUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "bad request"}`))
	}))
	defer srv.Close()

	err := newTestHandler(t, srv).UpdateTileset(context.Background(), "roads", TilesetOptions{Name: "Roads"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
}
