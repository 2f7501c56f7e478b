package usecase

import (
	"context"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/ports"
)

type TrackPageViewInput struct {
	Page      string
	SessionID string
	ClientID  string
}

type TrackPhotoViewInput struct {
	PhotoID    string
	PhotoTitle string
	SessionID  string
}

// TrackUseCase applies tracking side effects to the live counters.
// None of its operations fail: missing fields degrade to default labels.
type TrackUseCase struct {
	requests ports.RequestCounterPort
	photos   ports.PhotoViewTrackerPort
	sessions ports.SessionRegistryPort
	now      func() time.Time
}

func NewTrackUseCase(
	requests ports.RequestCounterPort,
	photos ports.PhotoViewTrackerPort,
	sessions ports.SessionRegistryPort,
) *TrackUseCase {
	return &TrackUseCase{
		requests: requests,
		photos:   photos,
		sessions: sessions,
		now:      time.Now,
	}
}

// WithClock replaces the time source, mainly for tests.
func (uc *TrackUseCase) WithClock(now func() time.Time) *TrackUseCase {
	uc.now = now
	return uc
}

func (uc *TrackUseCase) RecordRequest(ctx context.Context, ev domain.RequestEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = uc.now()
	}
	uc.requests.RecordRequest(ctx, ev)
}

// RecordPageView counts a catalog listing as a logical visit.
func (uc *TrackUseCase) RecordPageView(ctx context.Context, clientID string) {
	uc.requests.RecordPageView(ctx, clientID)
}

// RecordPhotoView counts a direct read of a photo.
func (uc *TrackUseCase) RecordPhotoView(ctx context.Context, photoID, photoTitle string) {
	uc.photos.RecordPhotoView(ctx, photoID, photoTitle)
}

// TrackPageView records a client-reported page view. A session id creates the
// session on first use.
func (uc *TrackUseCase) TrackPageView(ctx context.Context, in TrackPageViewInput) {
	uc.requests.RecordPageView(ctx, in.ClientID)

	if in.SessionID == "" {
		return
	}
	uc.sessions.TouchSession(ctx, in.SessionID, in.ClientID, uc.now())
	uc.sessions.RecordPageView(ctx, in.SessionID)
}

// TrackPhotoView records a client-reported photo view. Unlike TrackPageView it
// does not create sessions: the event is attached only to a session that a
// page view already started.
func (uc *TrackUseCase) TrackPhotoView(ctx context.Context, in TrackPhotoViewInput) {
	if in.PhotoID == "" {
		in.PhotoID = domain.UnknownPhotoID
	}
	if in.PhotoTitle == "" {
		in.PhotoTitle = domain.UnknownTitle
	}

	uc.photos.RecordPhotoView(ctx, in.PhotoID, in.PhotoTitle)

	if in.SessionID == "" {
		return
	}
	uc.sessions.RecordPhotoViewEvent(ctx, in.SessionID, domain.PhotoViewEvent{
		PhotoID:    in.PhotoID,
		PhotoTitle: in.PhotoTitle,
		Timestamp:  uc.now(),
	})
}
