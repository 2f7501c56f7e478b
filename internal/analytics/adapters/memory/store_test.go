package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
)

var day1 = time.Date(2024, 6, 17, 23, 59, 0, 0, time.UTC)

// ------------------------------------------------------------
// REQUEST COUNTER
// ------------------------------------------------------------

func TestRequestCounter_BucketsByDayAgentAndReferrer(t *testing.T) {
	ctx := context.Background()
	rc := NewRequestCounter()

	rc.RecordRequest(ctx, domain.RequestEvent{Timestamp: day1, ClientID: "a", UserAgent: "ua-1", Referrer: "https://x"})
	rc.RecordRequest(ctx, domain.RequestEvent{Timestamp: day1, ClientID: "a"})
	rc.RecordRequest(ctx, domain.RequestEvent{Timestamp: day1.Add(2 * time.Minute), ClientID: "b"})

	st := rc.state()
	if st.totalRequests != 3 {
		t.Fatalf("expected 3 requests, got %d", st.totalRequests)
	}
	if len(st.daily) != 2 {
		t.Fatalf("expected 2 daily buckets, got %+v", st.daily)
	}
	if st.daily[0].Date != "2024-06-17" || st.daily[0].Requests != 2 || st.daily[0].UniqueVisitors != 1 {
		t.Fatalf("unexpected first bucket: %+v", st.daily[0])
	}
	if st.daily[1].Date != "2024-06-18" || st.daily[1].Requests != 1 {
		t.Fatalf("unexpected second bucket: %+v", st.daily[1])
	}

	wantAgents := []domain.Count{{Key: "ua-1", Count: 1}, {Key: domain.UnknownUserAgent, Count: 2}}
	for i, w := range wantAgents {
		if st.userAgents[i] != w {
			t.Fatalf("user agent %d: got %+v want %+v", i, st.userAgents[i], w)
		}
	}
	if st.referrers[1] != (domain.Count{Key: domain.DirectReferrer, Count: 2}) {
		t.Fatalf("expected Direct referrer default, got %+v", st.referrers)
	}
}

func TestRequestCounter_UniqueVisitorsNeverExceedPageViews(t *testing.T) {
	ctx := context.Background()
	rc := NewRequestCounter()

	for i := 0; i < 50; i++ {
		rc.RecordPageView(ctx, fmt.Sprintf("client-%d", i%7))

		st := rc.state()
		if st.uniqueVisitors > st.pageViews {
			t.Fatalf("unique visitors %d > page views %d", st.uniqueVisitors, st.pageViews)
		}
	}
	if st := rc.state(); st.uniqueVisitors != 7 || st.pageViews != 50 {
		t.Fatalf("unexpected totals: %+v", st)
	}
}

// ------------------------------------------------------------
// PHOTO VIEW TRACKER
// ------------------------------------------------------------

func TestPhotoViewTracker_TotalEqualsCalls(t *testing.T) {
	ctx := context.Background()
	tr := NewPhotoViewTracker()

	const workers, perWorker = 8, 250
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tr.RecordPhotoView(ctx, fmt.Sprint(i%6+1), fmt.Sprintf("photo-%d", i%6+1))
			}
		}(w)
	}
	wg.Wait()

	if got := tr.TotalViews(ctx); got != workers*perWorker {
		t.Fatalf("expected %d views, got %d", workers*perWorker, got)
	}
}

func TestPhotoViewTracker_KeepsIDAndTitleInStep(t *testing.T) {
	ctx := context.Background()
	tr := NewPhotoViewTracker()

	for i := 0; i < 3; i++ {
		tr.RecordPhotoView(ctx, "1", "A")
	}
	tr.RecordPhotoView(ctx, "2", "B")
	tr.RecordPhotoView(ctx, "", "")

	if tr.Views("1") != 3 || tr.Views("2") != 1 || tr.Views(domain.UnknownPhotoID) != 1 {
		t.Fatalf("unexpected id counts")
	}
	_, byTitle := tr.state()
	if byTitle[0] != (domain.Count{Key: "A", Count: 3}) || byTitle[2].Key != domain.UnknownTitle {
		t.Fatalf("unexpected title counts: %+v", byTitle)
	}
}

// ------------------------------------------------------------
// SESSION REGISTRY
// ------------------------------------------------------------

func TestSessionRegistry_TouchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	reg := NewSessionRegistry()

	first := reg.TouchSession(ctx, "s-1", "a", day1)
	second := reg.TouchSession(ctx, "s-1", "b", day1.Add(time.Hour))

	if !second.StartTime.Equal(first.StartTime) || second.ClientID != "a" {
		t.Fatalf("second touch must return the original session, got %+v", second)
	}
	if reg.ActiveSessionCount(ctx) != 1 {
		t.Fatalf("expected 1 session, got %d", reg.ActiveSessionCount(ctx))
	}
}

func TestSessionRegistry_UntouchedSessionsAreNoOps(t *testing.T) {
	ctx := context.Background()
	reg := NewSessionRegistry()

	if reg.RecordPageView(ctx, "ghost") {
		t.Fatalf("page view on unknown session must be a no-op")
	}
	if reg.RecordPhotoViewEvent(ctx, "ghost", domain.PhotoViewEvent{PhotoID: "1"}) {
		t.Fatalf("photo view on unknown session must be a no-op")
	}
	if reg.ActiveSessionCount(ctx) != 0 {
		t.Fatalf("no session should have been created")
	}
}

func TestSessionRegistry_EventsInArrivalOrderAndCopied(t *testing.T) {
	ctx := context.Background()
	reg := NewSessionRegistry()
	reg.TouchSession(ctx, "s-1", "a", day1)
	reg.RecordPageView(ctx, "s-1")

	for i := 1; i <= 3; i++ {
		reg.RecordPhotoViewEvent(ctx, "s-1", domain.PhotoViewEvent{
			PhotoID:   fmt.Sprint(i),
			Timestamp: day1.Add(time.Duration(i) * time.Second),
		})
	}

	s, ok := reg.Session(ctx, "s-1")
	if !ok {
		t.Fatalf("expected session")
	}
	if s.PageViews != 1 || len(s.PhotosViewed) != 3 {
		t.Fatalf("unexpected session: %+v", s)
	}
	for i, ev := range s.PhotosViewed {
		if ev.PhotoID != fmt.Sprint(i+1) {
			t.Fatalf("event %d out of order: %+v", i, ev)
		}
	}

	s.PhotosViewed[0].PhotoID = "mutated"
	again, _ := reg.Session(ctx, "s-1")
	if again.PhotosViewed[0].PhotoID != "1" {
		t.Fatalf("returned session must be a copy")
	}
}

// ------------------------------------------------------------
// METRICS STORE
// ------------------------------------------------------------

func TestMetricsStore_State(t *testing.T) {
	ctx := context.Background()
	s := NewMetricsStore()

	s.Requests.RecordRequest(ctx, domain.RequestEvent{Timestamp: day1, ClientID: "a"})
	s.Requests.RecordPageView(ctx, "a")
	s.Photos.RecordPhotoView(ctx, "1", "A")
	s.Sessions.TouchSession(ctx, "s-1", "a", day1)

	st, err := s.State(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalRequests != 1 || st.PageViews != 1 || st.UniqueVisitors != 1 || st.ActiveSessions != 1 {
		t.Fatalf("unexpected state: %+v", st)
	}
	if len(st.PhotoViewsByID) != 1 || len(st.PhotoViewsByTitle) != 1 || len(st.Daily) != 1 {
		t.Fatalf("unexpected state lists: %+v", st)
	}
}
