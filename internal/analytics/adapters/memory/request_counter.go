package memory

import (
	"context"
	"sort"
	"sync"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/ports"
)

type dayBucket struct {
	requests int64
	clients  map[string]struct{}
}

// RequestCounter holds the per-request counters and the page-view totals.
type RequestCounter struct {
	mu sync.RWMutex

	totalRequests int64
	pageViews     int64
	visitors      map[string]struct{}

	days       map[string]*dayBucket
	userAgents orderedCounter
	referrers  orderedCounter
}

func NewRequestCounter() *RequestCounter {
	return &RequestCounter{
		visitors:   make(map[string]struct{}),
		days:       make(map[string]*dayBucket),
		userAgents: newOrderedCounter(),
		referrers:  newOrderedCounter(),
	}
}

var _ ports.RequestCounterPort = (*RequestCounter)(nil)

func (r *RequestCounter) RecordRequest(ctx context.Context, ev domain.RequestEvent) {
	ev = ev.Normalize()
	key := domain.DayKey(ev.Timestamp)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalRequests++

	b, ok := r.days[key]
	if !ok {
		b = &dayBucket{clients: make(map[string]struct{})}
		r.days[key] = b
	}
	b.requests++
	b.clients[ev.ClientID] = struct{}{}

	r.userAgents.inc(ev.UserAgent)
	r.referrers.inc(ev.Referrer)
}

func (r *RequestCounter) RecordPageView(ctx context.Context, clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pageViews++
	r.visitors[clientID] = struct{}{}
}

type requestCounterState struct {
	totalRequests  int64
	pageViews      int64
	uniqueVisitors int64
	daily          []domain.DailyBucket
	userAgents     []domain.Count
	referrers      []domain.Count
}

func (r *RequestCounter) state() requestCounterState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	daily := make([]domain.DailyBucket, 0, len(r.days))
	for date, b := range r.days {
		daily = append(daily, domain.DailyBucket{
			Date:           date,
			Requests:       b.requests,
			UniqueVisitors: int64(len(b.clients)),
		})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return requestCounterState{
		totalRequests:  r.totalRequests,
		pageViews:      r.pageViews,
		uniqueVisitors: int64(len(r.visitors)),
		daily:          daily,
		userAgents:     r.userAgents.list(),
		referrers:      r.referrers.list(),
	}
}
