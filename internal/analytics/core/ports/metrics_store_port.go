package ports

import (
	"context"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
)

// RequestCounterPort counts every inbound request plus logical page views.
type RequestCounterPort interface {
	RecordRequest(ctx context.Context, ev domain.RequestEvent)
	// RecordPageView bumps the page-view total and adds the client to the
	// all-time unique visitor set in one step.
	RecordPageView(ctx context.Context, clientID string)
}

type PhotoViewTrackerPort interface {
	RecordPhotoView(ctx context.Context, photoID, photoTitle string)
	TotalViews(ctx context.Context) int64
}

type SessionRegistryPort interface {
	// TouchSession returns the existing session or creates it with start=now.
	TouchSession(ctx context.Context, sessionID, clientID string, now time.Time) domain.Session
	// RecordPageView is a no-op for sessions that were never touched.
	RecordPageView(ctx context.Context, sessionID string) bool
	// RecordPhotoViewEvent is a no-op for sessions that were never touched.
	RecordPhotoViewEvent(ctx context.Context, sessionID string, ev domain.PhotoViewEvent) bool
	Session(ctx context.Context, sessionID string) (domain.Session, bool)
	ActiveSessionCount(ctx context.Context) int
}

// CounterStateReaderPort returns a copy of the counters for the aggregator.
type CounterStateReaderPort interface {
	State(ctx context.Context) (domain.CounterState, error)
}
