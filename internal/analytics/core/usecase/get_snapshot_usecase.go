package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/ports"
)

const (
	TopN                = 5
	UserAgentDisplayLen = 50
)

type GetSnapshotUseCase struct {
	reader ports.CounterStateReaderPort
	server domain.ServerInfo
	now    func() time.Time
}

func NewGetSnapshotUseCase(reader ports.CounterStateReaderPort, server domain.ServerInfo) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{reader: reader, server: server, now: time.Now}
}

func (uc *GetSnapshotUseCase) WithClock(now func() time.Time) *GetSnapshotUseCase {
	uc.now = now
	return uc
}

// Execute reads the live counters and reduces them. Nothing is cached.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context) (domain.Snapshot, error) {
	state, err := uc.reader.State(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read counter state: %w", err)
	}
	return BuildSnapshot(state, uc.server, uc.now()), nil
}

// BuildSnapshot is a pure function of its inputs.
func BuildSnapshot(state domain.CounterState, server domain.ServerInfo, now time.Time) domain.Snapshot {
	uptime := int64(now.Sub(server.StartedAt) / time.Second)
	if uptime < 0 {
		uptime = 0
	}

	snap := domain.Snapshot{
		Overview: domain.Overview{
			TotalPageViews: state.PageViews,
			UniqueVisitors: state.UniqueVisitors,
			TotalRequests:  state.TotalRequests,
			ServerUptime:   uptime,
			ServerID:       server.ServerID,
		},
		PhotoStats: domain.PhotoStats{
			TotalPhotoViews:  sumCounts(state.PhotoViewsByID),
			MostViewedPhotos: []domain.PhotoViews{},
		},
		DailyStats:     make([]domain.DailyStat, 0, len(state.Daily)),
		TopUserAgents:  []domain.AgentCount{},
		TopReferrers:   []domain.ReferrerCount{},
		ActiveSessions: state.ActiveSessions,
	}

	for _, c := range topCounts(state.PhotoViewsByTitle, TopN) {
		snap.PhotoStats.MostViewedPhotos = append(snap.PhotoStats.MostViewedPhotos, domain.PhotoViews{
			Title: c.Key,
			Views: c.Count,
		})
	}

	for _, d := range state.Daily {
		snap.DailyStats = append(snap.DailyStats, domain.DailyStat{
			Date:           d.Date,
			Requests:       d.Requests,
			UniqueVisitors: d.UniqueVisitors,
		})
	}

	for _, c := range topCounts(state.UserAgents, TopN) {
		snap.TopUserAgents = append(snap.TopUserAgents, domain.AgentCount{
			Agent: truncateAgent(c.Key),
			Count: c.Count,
		})
	}

	for _, c := range topCounts(state.Referrers, TopN) {
		snap.TopReferrers = append(snap.TopReferrers, domain.ReferrerCount{
			Referrer: c.Key,
			Count:    c.Count,
		})
	}

	return snap
}

// topCounts sorts descending by count; ties keep first-seen order.
func topCounts(in []domain.Count, n int) []domain.Count {
	out := make([]domain.Count, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func sumCounts(in []domain.Count) int64 {
	var total int64
	for _, c := range in {
		total += c.Count
	}
	return total
}

// truncateAgent keeps the first UserAgentDisplayLen runes and always marks the cut.
func truncateAgent(agent string) string {
	r := []rune(agent)
	if len(r) > UserAgentDisplayLen {
		r = r[:UserAgentDisplayLen]
	}
	return string(r) + "..."
}
