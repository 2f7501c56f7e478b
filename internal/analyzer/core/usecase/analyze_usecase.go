package usecase

import (
	"context"
	"errors"
	"fmt"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analyzer/core/domain"
	"gallery-analytics-service/internal/analyzer/core/ports"
	loadtest "gallery-analytics-service/internal/loadtest/core/domain"
	ltports "gallery-analytics-service/internal/loadtest/core/ports"
	"gallery-analytics-service/internal/log"

	"golang.org/x/sync/errgroup"
)

var (
	ErrRunNotFound        = errors.New("no load test results found")
	ErrResultsUnavailable = errors.New("load test results unavailable")
)

type AnalyzeUseCase struct {
	results   ports.ResultsSource
	snapshots ports.SnapshotSource
	logger    log.Logger
}

func NewAnalyzeUseCase(results ports.ResultsSource, snapshots ports.SnapshotSource, logger log.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{results: results, snapshots: snapshots, logger: logger}
}

// Execute loads the latest run and its snapshot concurrently and analyzes them.
// A missing or unreadable run is fatal. A run saved without a snapshot only
// drops the impact section of the report; the sources never hand back an older
// run's snapshot in its place.
func (uc *AnalyzeUseCase) Execute(ctx context.Context) (*domain.Report, error) {
	var (
		run  *loadtest.RunResult
		snap *analytics.Snapshot
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := uc.results.LatestRun(gctx)
		switch {
		case errors.Is(err, ltports.ErrNotFound):
			return ErrRunNotFound
		case err != nil:
			return fmt.Errorf("%w: %v", ErrResultsUnavailable, err)
		}
		run = r
		return nil
	})

	g.Go(func() error {
		s, err := uc.snapshots.LatestSnapshot(gctx)
		if err != nil {
			uc.logger.Warnf("analytics snapshot unavailable, skipping impact analysis: %v", err)
			return nil
		}
		snap = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Analyze(run, snap), nil
}
