package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/ports"
)

// Repository stores every run and snapshot as a JSON payload keyed by run id.
// The schema is portable between postgres and sqlite.
type Repository struct {
	db  DB
	now func() time.Time
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

var (
	_ ports.ResultStorePort   = (*Repository)(nil)
	_ ports.SnapshotStorePort = (*Repository)(nil)
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS load_test_runs (
    run_id      TEXT PRIMARY KEY,
    recorded_at BIGINT NOT NULL,
    payload     TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS load_test_snapshots (
    run_id      TEXT PRIMARY KEY,
    recorded_at BIGINT NOT NULL,
    payload     TEXT NOT NULL
)`,
}

// SQL templates
const (
	upsertRunSQL = `
INSERT INTO load_test_runs (run_id, recorded_at, payload)
VALUES (?, ?, ?)
ON CONFLICT (run_id) DO UPDATE SET recorded_at = excluded.recorded_at, payload = excluded.payload`

	upsertSnapshotSQL = `
INSERT INTO load_test_snapshots (run_id, recorded_at, payload)
VALUES (?, ?, ?)
ON CONFLICT (run_id) DO UPDATE SET recorded_at = excluded.recorded_at, payload = excluded.payload`

	latestRunSQL = `SELECT payload FROM load_test_runs ORDER BY recorded_at DESC LIMIT 1`

	latestSnapshotSQL = `
SELECT payload FROM load_test_snapshots
WHERE run_id = (SELECT run_id FROM load_test_runs ORDER BY recorded_at DESC LIMIT 1)`
)

func (r *Repository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (r *Repository) SaveRun(ctx context.Context, run *domain.RunResult) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertRunSQL, run.RunID, r.now().UnixNano(), string(payload))
	return err
}

func (r *Repository) LatestRun(ctx context.Context) (*domain.RunResult, error) {
	var run domain.RunResult
	if err := r.latest(ctx, latestRunSQL, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *Repository) SaveSnapshot(ctx context.Context, runID string, snap *analytics.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL, runID, r.now().UnixNano(), string(payload))
	return err
}

// LatestSnapshot returns the snapshot of the latest run. An older run's
// snapshot is never returned in its place.
func (r *Repository) LatestSnapshot(ctx context.Context) (*analytics.Snapshot, error) {
	var snap analytics.Snapshot
	if err := r.latest(ctx, latestSnapshotSQL, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *Repository) latest(ctx context.Context, query string, dest any) error {
	var payload string
	err := r.db.GetContext(ctx, &payload, query)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
