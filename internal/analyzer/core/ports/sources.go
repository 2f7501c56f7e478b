package ports

import (
	"context"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	loadtest "gallery-analytics-service/internal/loadtest/core/domain"
)

// ResultsSource returns the most recent persisted load test run.
type ResultsSource interface {
	LatestRun(ctx context.Context) (*loadtest.RunResult, error)
}

// SnapshotSource returns the analytics snapshot captured after the most recent run.
type SnapshotSource interface {
	LatestSnapshot(ctx context.Context) (*analytics.Snapshot, error)
}
