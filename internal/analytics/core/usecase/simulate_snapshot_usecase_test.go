package usecase_test

import (
	"context"
	"testing"
	"time"

	"gallery-analytics-service/internal/analytics/core/usecase"
)

func TestSimulateSnapshot_IsLabelledAndWithinRanges(t *testing.T) {
	now := time.Date(2024, 6, 18, 23, 59, 0, 0, time.UTC)

	for name, intn := range map[string]func(int) int{
		"min": func(n int) int { return 0 },
		"max": func(n int) int { return n - 1 },
	} {
		uc := usecase.NewSimulateSnapshotUseCase().WithSource(intn, func() time.Time { return now })
		snap := uc.Execute(context.Background())

		if !snap.Simulated {
			t.Fatalf("%s: snapshot must be labelled simulated", name)
		}
		if snap.Overview.ServerID != usecase.SimulatedServerID || snap.Overview.Platform == "" {
			t.Fatalf("%s: unexpected overview labels: %+v", name, snap.Overview)
		}
		if v := snap.Overview.TotalPageViews; v < 500 || v >= 1500 {
			t.Fatalf("%s: totalPageViews out of range: %d", name, v)
		}
		if v := snap.Overview.ServerUptime; v < 3600 || v >= 3600+86400 {
			t.Fatalf("%s: serverUptime out of range: %d", name, v)
		}
		if v := snap.RealTimeData.BounceRate; v < 20 || v >= 60 {
			t.Fatalf("%s: bounceRate out of range: %d", name, v)
		}
		if snap.ActiveSessions < 10 || snap.ActiveSessions >= 60 {
			t.Fatalf("%s: activeSessions out of range: %d", name, snap.ActiveSessions)
		}
		if len(snap.DailyStats) != 1 || snap.DailyStats[0].Date != "2024-06-18" {
			t.Fatalf("%s: unexpected daily stats: %+v", name, snap.DailyStats)
		}
		if len(snap.PhotoStats.MostViewedPhotos) != usecase.TopN || len(snap.TopCountries) != 5 || len(snap.TopReferrers) != 4 {
			t.Fatalf("%s: unexpected list sizes", name)
		}
		for i := 1; i < len(snap.PhotoStats.MostViewedPhotos); i++ {
			if snap.PhotoStats.MostViewedPhotos[i].Views > snap.PhotoStats.MostViewedPhotos[i-1].Views {
				t.Fatalf("%s: most viewed not sorted", name)
			}
		}
	}
}
