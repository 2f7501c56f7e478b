package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/ports"
)

// Store keeps the latest run and snapshot as indented JSON files, the layout
// of test-results.json and analytics-snapshot.json.
type Store struct {
	resultsPath  string
	snapshotPath string
}

func NewStore(resultsPath, snapshotPath string) *Store {
	return &Store{resultsPath: resultsPath, snapshotPath: snapshotPath}
}

var (
	_ ports.ResultStorePort   = (*Store)(nil)
	_ ports.SnapshotStorePort = (*Store)(nil)
)

func (s *Store) ResultsPath() string { return s.resultsPath }

// SaveRun replaces the results file and removes the previous run's snapshot,
// which no longer describes the stored run.
func (s *Store) SaveRun(ctx context.Context, run *domain.RunResult) error {
	if err := writeJSON(s.resultsPath, run); err != nil {
		return err
	}
	if err := os.Remove(s.snapshotPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale %s: %w", s.snapshotPath, err)
	}
	return nil
}

func (s *Store) LatestRun(ctx context.Context) (*domain.RunResult, error) {
	var run domain.RunResult
	if err := readJSON(s.resultsPath, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// SaveSnapshot overwrites the snapshot file; only the latest run is kept.
func (s *Store) SaveSnapshot(ctx context.Context, runID string, snap *analytics.Snapshot) error {
	return writeJSON(s.snapshotPath, snap)
}

func (s *Store) LatestSnapshot(ctx context.Context) (*analytics.Snapshot, error) {
	var snap analytics.Snapshot
	if err := readJSON(s.snapshotPath, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// writeJSON replaces path atomically so a watcher never sees a partial file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ports.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
