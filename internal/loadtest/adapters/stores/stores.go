// Package stores opens the result and snapshot stores selected by configuration.
package stores

import (
	"context"
	"fmt"

	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/loadtest/adapters/file"
	"gallery-analytics-service/internal/loadtest/adapters/sqlstore"
	"gallery-analytics-service/internal/loadtest/core/ports"
)

type Stores struct {
	Results   ports.ResultStorePort
	Snapshots ports.SnapshotStorePort
	// Location describes where results are written, for console output.
	Location string
	// WatchPath is the file that changes when a run is saved.
	WatchPath string

	close func() error
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.ResultsDriver {
	case "", "file":
		fs := file.NewStore(cfg.ResultsPath, cfg.SnapshotPath)
		return &Stores{Results: fs, Snapshots: fs, Location: cfg.ResultsPath, WatchPath: cfg.ResultsPath}, nil

	case sqlstore.DriverPostgres, sqlstore.DriverSQLite:
		dsn, location, watch := cfg.PostgresDSN, "postgres", ""
		if cfg.ResultsDriver == sqlstore.DriverSQLite {
			dsn, location, watch = cfg.SQLitePath, cfg.SQLitePath, cfg.SQLitePath
		}

		db, err := sqlstore.Open(ctx, cfg.ResultsDriver, dsn)
		if err != nil {
			return nil, err
		}
		repo := sqlstore.NewRepository(sqlstore.NewSQLDB(db))
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Stores{Results: repo, Snapshots: repo, Location: location, WatchPath: watch, close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported results driver %q", cfg.ResultsDriver)
	}
}
