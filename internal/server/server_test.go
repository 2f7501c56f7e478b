package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/healthcheck"
	"gallery-analytics-service/internal/log"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Foreign Exploration Gallery</h1>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	cfg := config.Default()
	cfg.ServerID = "server-7"
	cfg.StaticDir = dir

	logger, _ := log.NewForTest()
	return New(cfg, logger)
}

func post(t *testing.T, s *Server, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	_ = resp.Body.Close()
	return resp
}

func get(t *testing.T, s *Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(body)
}

// ------------------------------------------------------------
// ROUTES
// ------------------------------------------------------------

func TestServer_HealthReportsServerID(t *testing.T) {
	s := setupTestServer(t)

	resp, body := get(t, s, "/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var h healthcheck.Response
	if err := json.Unmarshal([]byte(body), &h); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if h.Status != "healthy" || h.Server != "server-7" {
		t.Fatalf("unexpected health: %+v", h)
	}
}

func TestServer_PhotoNotFound(t *testing.T) {
	s := setupTestServer(t)

	resp, body := get(t, s, "/api/photos/999")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
	if body != `{"error":"Photo not found"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestServer_ServesFrontend(t *testing.T) {
	s := setupTestServer(t)

	resp, body := get(t, s, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Foreign Exploration Gallery") {
		t.Fatalf("unexpected index body: %s", body)
	}
}

// ------------------------------------------------------------
// CROSS-CUTTING
// ------------------------------------------------------------

func TestServer_EveryResponseAllowsAnyOrigin(t *testing.T) {
	s := setupTestServer(t)

	for _, path := range []string{"/api/health", "/api/photos", "/api/photos/999", "/api/analytics", "/", "/nope"} {
		resp, _ := get(t, s, path)
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: expected ACAO *, got %q", path, got)
		}
	}
}

func TestServer_CountsEveryRequestIncludingUnmatched(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	get(t, s, "/api/health")
	get(t, s, "/")
	resp, body := get(t, s, "/does-not-exist")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `"error":"not_found"`) {
		t.Fatalf("unexpected 404 body: %s", body)
	}

	st, err := s.Store.State(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalRequests != 3 {
		t.Fatalf("expected 3 requests counted, got %d", st.TotalRequests)
	}
}

func TestServer_PhotoReadsFeedAnalytics(t *testing.T) {
	s := setupTestServer(t)

	get(t, s, "/api/photos")
	get(t, s, "/api/photos/1")
	get(t, s, "/api/photos/1")

	_, body := get(t, s, "/api/analytics")

	var snap struct {
		Overview struct {
			TotalPageViews int64  `json:"totalPageViews"`
			UniqueVisitors int64  `json:"uniqueVisitors"`
			TotalRequests  int64  `json:"totalRequests"`
			ServerID       string `json:"serverId"`
		} `json:"overview"`
		PhotoStats struct {
			TotalPhotoViews  int64 `json:"totalPhotoViews"`
			MostViewedPhotos []struct {
				Title string `json:"title"`
				Views int64  `json:"views"`
			} `json:"mostViewedPhotos"`
		} `json:"photoStats"`
		ActiveSessions *int `json:"activeSessions"`
	}
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if snap.Overview.TotalPageViews != 1 || snap.Overview.UniqueVisitors != 1 {
		t.Fatalf("unexpected overview: %+v", snap.Overview)
	}
	if snap.Overview.TotalRequests != 4 || snap.Overview.ServerID != "server-7" {
		t.Fatalf("unexpected overview: %+v", snap.Overview)
	}
	if snap.PhotoStats.TotalPhotoViews != 2 || snap.PhotoStats.MostViewedPhotos[0].Title != "Machu Picchu Sunrise" {
		t.Fatalf("unexpected photo stats: %+v", snap.PhotoStats)
	}
	if snap.ActiveSessions == nil || *snap.ActiveSessions != 0 {
		t.Fatalf("expected activeSessions 0")
	}
}

func TestServer_GalleryPageCountsVisitAndClickOnce(t *testing.T) {
	cfg := config.Default()
	cfg.StaticDir = filepath.Join("..", "..", "public")
	logger, _ := log.NewForTest()
	s := New(cfg, logger)
	ctx := context.Background()

	resp, script := get(t, s, "/app.js")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for app.js, got %d", resp.StatusCode)
	}
	// The listing already counts the visit and the click is reported by the
	// tracking call alone.
	if strings.Contains(script, "track('page-view'") {
		t.Fatalf("gallery script must not send a page-view event")
	}
	if strings.Contains(script, "/api/photos/${") {
		t.Fatalf("gallery script must not read single photos on click")
	}

	// What the gallery page does for one visit and one card click.
	get(t, s, "/")
	get(t, s, "/api/photos")
	get(t, s, "/api/health")
	if resp := post(t, s, "/api/track/photo-view", `{"photoId":1,"photoTitle":"Machu Picchu Sunrise","sessionId":"session_1"}`); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	st, err := s.Store.State(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.PageViews != 1 {
		t.Fatalf("expected 1 page view, got %d", st.PageViews)
	}
	if got := s.Store.Photos.TotalViews(ctx); got != 1 {
		t.Fatalf("expected 1 photo view, got %d", got)
	}
}
