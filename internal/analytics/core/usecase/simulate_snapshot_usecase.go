package usecase

import (
	"context"
	"math/rand/v2"
	"sort"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
)

const (
	SimulatedServerID = "netlify-global-cdn"
	SimulatedPlatform = "Netlify Edge Functions"
	SimulatedRegion   = "Global"
)

type simRange struct {
	label string
	lo    int
	span  int
}

var (
	simulatedPhotos = []simRange{
		{"Machu Picchu Sunrise", 50, 100},
		{"Northern Lights", 40, 90},
		{"Sahara Desert Dunes", 35, 80},
		{"Mount Fuji", 45, 95},
		{"Amazon Rainforest", 30, 70},
		{"Norwegian Fjords", 38, 85},
	}
	simulatedAgents = []simRange{
		{"🌐 Chrome", 50, 100},
		{"🧭 Safari", 30, 80},
		{"🦊 Firefox", 20, 60},
		{"🔷 Edge", 15, 40},
		{"📱 Mobile Safari", 25, 70},
	}
	simulatedReferrers = []simRange{
		{"Direct", 100, 200},
		{"Google Search", 50, 150},
		{"Social Media", 30, 100},
		{"GitHub", 20, 80},
	}
	simulatedCountries = []simRange{
		{"United States", 50, 100},
		{"United Kingdom", 30, 80},
		{"Germany", 25, 70},
		{"Japan", 20, 60},
		{"Canada", 15, 50},
	}
)

// SimulateSnapshotUseCase produces labelled random demo analytics.
// It has no access to the live counters.
type SimulateSnapshotUseCase struct {
	intn func(n int) int
	now  func() time.Time
}

func NewSimulateSnapshotUseCase() *SimulateSnapshotUseCase {
	return &SimulateSnapshotUseCase{intn: rand.IntN, now: time.Now}
}

// WithSource replaces the random source and the clock, mainly for tests.
func (uc *SimulateSnapshotUseCase) WithSource(intn func(n int) int, now func() time.Time) *SimulateSnapshotUseCase {
	uc.intn = intn
	uc.now = now
	return uc
}

func (uc *SimulateSnapshotUseCase) Execute(ctx context.Context) domain.SimulatedSnapshot {
	snap := domain.SimulatedSnapshot{
		Overview: domain.SimulatedOverview{
			Overview: domain.Overview{
				TotalPageViews: uc.between(500, 1000),
				UniqueVisitors: uc.between(100, 200),
				TotalRequests:  uc.between(1000, 2000),
				ServerUptime:   uc.between(3600, 86400),
				ServerID:       SimulatedServerID,
			},
			Platform: SimulatedPlatform,
			Region:   SimulatedRegion,
		},
		PhotoStats: domain.PhotoStats{
			TotalPhotoViews: uc.between(200, 500),
		},
		DailyStats: []domain.DailyStat{{
			Date:           domain.DayKey(uc.now()),
			Requests:       uc.between(100, 300),
			UniqueVisitors: uc.between(20, 80),
		}},
		RealTimeData: domain.RealTimeData{
			CurrentVisitors:        uc.between(5, 25),
			RequestsPerMinute:      uc.between(20, 100),
			AverageSessionDuration: uc.between(120, 300),
			BounceRate:             uc.between(20, 40),
		},
		ActiveSessions: int(uc.between(10, 50)),
		Simulated:      true,
	}

	for _, c := range uc.rank(simulatedPhotos) {
		snap.PhotoStats.MostViewedPhotos = append(snap.PhotoStats.MostViewedPhotos, domain.PhotoViews{Title: c.Key, Views: c.Count})
	}
	for _, c := range uc.rank(simulatedAgents) {
		snap.TopUserAgents = append(snap.TopUserAgents, domain.AgentCount{Agent: c.Key, Count: c.Count})
	}
	for _, c := range uc.rank(simulatedReferrers) {
		snap.TopReferrers = append(snap.TopReferrers, domain.ReferrerCount{Referrer: c.Key, Count: c.Count})
	}
	for _, c := range uc.rank(simulatedCountries) {
		snap.TopCountries = append(snap.TopCountries, domain.CountryCount{Country: c.Key, Count: c.Count})
	}

	return snap
}

// between returns a value in [lo, lo+span).
func (uc *SimulateSnapshotUseCase) between(lo, span int) int64 {
	return int64(lo + uc.intn(span))
}

// rank draws a count per label and keeps the top entries in descending order,
// the same ordering the live snapshot uses.
func (uc *SimulateSnapshotUseCase) rank(ranges []simRange) []domain.Count {
	counts := make([]domain.Count, 0, len(ranges))
	for _, r := range ranges {
		counts = append(counts, domain.Count{Key: r.label, Count: uc.between(r.lo, r.span)})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > TopN {
		counts = counts[:TopN]
	}
	return counts
}
