package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/usecase"
)

type fakeStateReader struct {
	StateFn func(ctx context.Context) (domain.CounterState, error)
	calls   int
}

func (f *fakeStateReader) State(ctx context.Context) (domain.CounterState, error) {
	f.calls++
	if f.StateFn != nil {
		return f.StateFn(ctx)
	}
	return domain.CounterState{}, nil
}

var testServer = domain.ServerInfo{
	ServerID:  "server-1",
	StartedAt: time.Date(2024, 6, 18, 11, 0, 0, 0, time.UTC),
}

// ------------------------------------------------------------
// OVERVIEW
// ------------------------------------------------------------

func TestBuildSnapshot_Overview(t *testing.T) {
	state := domain.CounterState{
		PageViews:      7,
		UniqueVisitors: 3,
		TotalRequests:  42,
		ActiveSessions: 2,
	}
	now := testServer.StartedAt.Add(90*time.Second + 900*time.Millisecond)

	snap := usecase.BuildSnapshot(state, testServer, now)

	want := domain.Overview{
		TotalPageViews: 7,
		UniqueVisitors: 3,
		TotalRequests:  42,
		ServerUptime:   90,
		ServerID:       "server-1",
	}
	if snap.Overview != want {
		t.Fatalf("unexpected overview: got %+v want %+v", snap.Overview, want)
	}
	if snap.ActiveSessions != 2 {
		t.Fatalf("expected 2 active sessions, got %d", snap.ActiveSessions)
	}
}

// ------------------------------------------------------------
// PHOTO STATS
// ------------------------------------------------------------

func TestBuildSnapshot_PhotoStatsExample(t *testing.T) {
	state := domain.CounterState{
		PhotoViewsByID:    []domain.Count{{Key: "1", Count: 3}, {Key: "2", Count: 1}},
		PhotoViewsByTitle: []domain.Count{{Key: "A", Count: 3}, {Key: "B", Count: 1}},
	}

	snap := usecase.BuildSnapshot(state, testServer, testServer.StartedAt)

	if snap.PhotoStats.TotalPhotoViews != 4 {
		t.Fatalf("expected 4 total views, got %d", snap.PhotoStats.TotalPhotoViews)
	}
	want := []domain.PhotoViews{{Title: "A", Views: 3}, {Title: "B", Views: 1}}
	if !reflect.DeepEqual(snap.PhotoStats.MostViewedPhotos, want) {
		t.Fatalf("unexpected most viewed: %+v", snap.PhotoStats.MostViewedPhotos)
	}
}

func TestBuildSnapshot_TopListsAreCappedAndSorted(t *testing.T) {
	var titles, agents, refs []domain.Count
	for i, n := range []int64{1, 4, 2, 9, 4, 7, 3} {
		key := string(rune('a' + i))
		titles = append(titles, domain.Count{Key: key, Count: n})
		agents = append(agents, domain.Count{Key: key, Count: n})
		refs = append(refs, domain.Count{Key: key, Count: n})
	}
	state := domain.CounterState{PhotoViewsByTitle: titles, UserAgents: agents, Referrers: refs}

	snap := usecase.BuildSnapshot(state, testServer, testServer.StartedAt)

	if len(snap.PhotoStats.MostViewedPhotos) != usecase.TopN ||
		len(snap.TopUserAgents) != usecase.TopN ||
		len(snap.TopReferrers) != usecase.TopN {
		t.Fatalf("expected all top lists capped at %d", usecase.TopN)
	}
	for i := 1; i < usecase.TopN; i++ {
		if snap.PhotoStats.MostViewedPhotos[i].Views > snap.PhotoStats.MostViewedPhotos[i-1].Views {
			t.Fatalf("most viewed not sorted: %+v", snap.PhotoStats.MostViewedPhotos)
		}
		if snap.TopUserAgents[i].Count > snap.TopUserAgents[i-1].Count {
			t.Fatalf("user agents not sorted: %+v", snap.TopUserAgents)
		}
		if snap.TopReferrers[i].Count > snap.TopReferrers[i-1].Count {
			t.Fatalf("referrers not sorted: %+v", snap.TopReferrers)
		}
	}

	// ties keep first-seen order: "b" (4) was seen before "e" (4)
	if snap.TopReferrers[2].Referrer != "b" || snap.TopReferrers[3].Referrer != "e" {
		t.Fatalf("expected tie order b,e got %+v", snap.TopReferrers)
	}
	if len(titles) != 7 || titles[0].Key != "a" {
		t.Fatalf("input state must not be mutated")
	}
}

// ------------------------------------------------------------
// USER AGENTS
// ------------------------------------------------------------

func TestBuildSnapshot_TruncatesUserAgents(t *testing.T) {
	long := strings.Repeat("x", 80)
	state := domain.CounterState{
		UserAgents: []domain.Count{{Key: long, Count: 2}, {Key: "curl/8.0", Count: 1}},
	}

	snap := usecase.BuildSnapshot(state, testServer, testServer.StartedAt)

	if got := snap.TopUserAgents[0].Agent; got != strings.Repeat("x", 50)+"..." {
		t.Fatalf("unexpected truncated agent: %q", got)
	}
	if got := snap.TopUserAgents[1].Agent; got != "curl/8.0..." {
		t.Fatalf("unexpected short agent: %q", got)
	}
}

// ------------------------------------------------------------
// DAILY / EMPTY STATE
// ------------------------------------------------------------

func TestBuildSnapshot_EmptyStateHasEmptyLists(t *testing.T) {
	snap := usecase.BuildSnapshot(domain.CounterState{}, testServer, testServer.StartedAt.Add(-time.Second))

	if snap.Overview.ServerUptime != 0 {
		t.Fatalf("expected uptime clamped to 0, got %d", snap.Overview.ServerUptime)
	}
	if snap.PhotoStats.MostViewedPhotos == nil || snap.DailyStats == nil ||
		snap.TopUserAgents == nil || snap.TopReferrers == nil {
		t.Fatalf("expected non-nil lists so JSON renders []")
	}
}

func TestBuildSnapshot_DailyStats(t *testing.T) {
	state := domain.CounterState{
		Daily: []domain.DailyBucket{
			{Date: "2024-06-17", Requests: 10, UniqueVisitors: 2},
			{Date: "2024-06-18", Requests: 5, UniqueVisitors: 1},
		},
	}

	snap := usecase.BuildSnapshot(state, testServer, testServer.StartedAt)

	want := []domain.DailyStat{
		{Date: "2024-06-17", Requests: 10, UniqueVisitors: 2},
		{Date: "2024-06-18", Requests: 5, UniqueVisitors: 1},
	}
	if !reflect.DeepEqual(snap.DailyStats, want) {
		t.Fatalf("unexpected daily stats: %+v", snap.DailyStats)
	}
}

// ------------------------------------------------------------
// EXECUTE
// ------------------------------------------------------------

func TestGetSnapshot_IsRecomputedAndDeterministic(t *testing.T) {
	reader := &fakeStateReader{
		StateFn: func(ctx context.Context) (domain.CounterState, error) {
			return domain.CounterState{
				PageViews:         2,
				PhotoViewsByTitle: []domain.Count{{Key: "A", Count: 1}},
				UserAgents:        []domain.Count{{Key: "ua", Count: 1}},
			}, nil
		},
	}
	now := testServer.StartedAt.Add(time.Minute)
	uc := usecase.NewGetSnapshotUseCase(reader, testServer).WithClock(func() time.Time { return now })

	first, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reader.calls != 2 {
		t.Fatalf("expected state read on every call, got %d", reader.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical snapshots without mutation")
	}
}

func TestGetSnapshot_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	reader := &fakeStateReader{
		StateFn: func(ctx context.Context) (domain.CounterState, error) {
			return domain.CounterState{}, boom
		},
	}
	uc := usecase.NewGetSnapshotUseCase(reader, testServer)

	if _, err := uc.Execute(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
}
