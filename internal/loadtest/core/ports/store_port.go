package ports

import (
	"context"
	"errors"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/loadtest/core/domain"
)

// ErrNotFound is returned by stores that hold no matching record.
var ErrNotFound = errors.New("not found")

type ResultStorePort interface {
	SaveRun(ctx context.Context, run *domain.RunResult) error
	LatestRun(ctx context.Context) (*domain.RunResult, error)
}

type SnapshotStorePort interface {
	SaveSnapshot(ctx context.Context, runID string, snap *analytics.Snapshot) error
	// LatestSnapshot returns the snapshot saved for the latest run, or
	// ErrNotFound when that run has none.
	LatestSnapshot(ctx context.Context) (*analytics.Snapshot, error)
}
