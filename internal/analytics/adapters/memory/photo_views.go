package memory

import (
	"context"
	"sync"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/ports"
)

// PhotoViewTracker counts views by photo id and, denormalized, by title.
// The photo detail route and the tracking endpoint share one instance.
type PhotoViewTracker struct {
	mu      sync.RWMutex
	byID    orderedCounter
	byTitle orderedCounter
}

func NewPhotoViewTracker() *PhotoViewTracker {
	return &PhotoViewTracker{
		byID:    newOrderedCounter(),
		byTitle: newOrderedCounter(),
	}
}

var _ ports.PhotoViewTrackerPort = (*PhotoViewTracker)(nil)

func (t *PhotoViewTracker) RecordPhotoView(ctx context.Context, photoID, photoTitle string) {
	if photoID == "" {
		photoID = domain.UnknownPhotoID
	}
	if photoTitle == "" {
		photoTitle = domain.UnknownTitle
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.byID.inc(photoID)
	t.byTitle.inc(photoTitle)
}

func (t *PhotoViewTracker) TotalViews(ctx context.Context) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.byID.sum()
}

// Views returns the count recorded for a single photo id.
func (t *PhotoViewTracker) Views(photoID string) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.byID.get(photoID)
}

func (t *PhotoViewTracker) state() (byID, byTitle []domain.Count) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.byID.list(), t.byTitle.list()
}
