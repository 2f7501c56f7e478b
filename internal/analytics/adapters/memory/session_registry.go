package memory

import (
	"context"
	"sync"
	"time"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/ports"
)

// SessionRegistry maps session ids to sessions. Entries are never evicted.
// Callers get copies; all mutation goes through the registry methods.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*domain.Session)}
}

var _ ports.SessionRegistryPort = (*SessionRegistry)(nil)

func (r *SessionRegistry) TouchSession(ctx context.Context, sessionID, clientID string, now time.Time) domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = &domain.Session{
			ID:        sessionID,
			ClientID:  clientID,
			StartTime: now,
		}
		r.sessions[sessionID] = s
	}
	return copySession(s)
}

func (r *SessionRegistry) RecordPageView(ctx context.Context, sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	s.PageViews++
	return true
}

func (r *SessionRegistry) RecordPhotoViewEvent(ctx context.Context, sessionID string, ev domain.PhotoViewEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	s.PhotosViewed = append(s.PhotosViewed, ev)
	return true
}

func (r *SessionRegistry) Session(ctx context.Context, sessionID string) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, false
	}
	return copySession(s), true
}

func (r *SessionRegistry) ActiveSessionCount(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func copySession(s *domain.Session) domain.Session {
	out := *s
	if s.PhotosViewed != nil {
		out.PhotosViewed = make([]domain.PhotoViewEvent, len(s.PhotosViewed))
		copy(out.PhotosViewed, s.PhotosViewed)
	}
	return out
}
