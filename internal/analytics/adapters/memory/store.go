package memory

import (
	"context"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/ports"
)

// MetricsStore owns every live analytics counter of one server process.
// It is created at startup and handed to the handlers and the aggregator.
type MetricsStore struct {
	Requests *RequestCounter
	Photos   *PhotoViewTracker
	Sessions *SessionRegistry
}

func NewMetricsStore() *MetricsStore {
	return &MetricsStore{
		Requests: NewRequestCounter(),
		Photos:   NewPhotoViewTracker(),
		Sessions: NewSessionRegistry(),
	}
}

var _ ports.CounterStateReaderPort = (*MetricsStore)(nil)

// State copies each component under its own read lock. Components are read
// one after another, so the copy is consistent per component only.
func (s *MetricsStore) State(ctx context.Context) (domain.CounterState, error) {
	req := s.Requests.state()
	byID, byTitle := s.Photos.state()

	return domain.CounterState{
		PageViews:         req.pageViews,
		UniqueVisitors:    req.uniqueVisitors,
		TotalRequests:     req.totalRequests,
		PhotoViewsByID:    byID,
		PhotoViewsByTitle: byTitle,
		Daily:             req.daily,
		UserAgents:        req.userAgents,
		Referrers:         req.referrers,
		ActiveSessions:    s.Sessions.ActiveSessionCount(ctx),
	}, nil
}
