package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(filepath.Join(dir, "test-results.json"), filepath.Join(dir, "analytics-snapshot.json"))
}

func TestStore_RunRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	run := &domain.RunResult{
		RunID:       "run-1",
		TestSummary: domain.TestSummary{TotalUsers: 1, TotalRequests: 1, SuccessfulRequests: 1},
		ServerStats: map[string]domain.ServerStat{"S1": {Requests: 1, TotalResponseTime: 12}},
		BehaviorStats: map[domain.Behavior]domain.BehaviorStat{
			domain.APIUser: {Count: 1, TotalRequests: 1, AvgDuration: 12},
		},
		UserSessions: []domain.UserSession{{
			UserID:     1,
			Behavior:   domain.APIUser,
			Requests:   []domain.RequestOutcome{{Method: "GET", Path: "/api/health", Status: 200, ServerID: "S1", Success: true}},
			ServersHit: []string{"S1"},
			Errors:     []string{},
		}},
		Errors: []string{},
	}

	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.LatestRun(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, run) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, run)
	}

	raw, _ := os.ReadFile(s.ResultsPath())
	for _, key := range []string{`"testSummary"`, `"serversHitArray"`, `"responseTime"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("expected %s in file", key)
		}
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	snap := &analytics.Snapshot{
		Overview:       analytics.Overview{TotalRequests: 10, ServerID: "S1"},
		PhotoStats:     analytics.PhotoStats{TotalPhotoViews: 3, MostViewedPhotos: []analytics.PhotoViews{{Title: "A", Views: 3}}},
		DailyStats:     []analytics.DailyStat{},
		TopUserAgents:  []analytics.AgentCount{},
		TopReferrers:   []analytics.ReferrerCount{},
		ActiveSessions: 2,
	}
	if err := s.SaveSnapshot(ctx, "run-1", snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.LatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestStore_NewRunDropsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.SaveRun(ctx, &domain.RunResult{RunID: "run-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveSnapshot(ctx, "run-1", &analytics.Snapshot{ActiveSessions: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveRun(ctx, &domain.RunResult{RunID: "run-2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.LatestSnapshot(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for run-2's snapshot, got %v", err)
	}
}

func TestStore_MissingFilesAreNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.LatestRun(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.LatestSnapshot(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.ResultsPath(), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := s.LatestRun(context.Background())
	if err == nil || errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
