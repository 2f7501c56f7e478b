package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/loadtest/adapters/stores"
	"gallery-analytics-service/internal/loadtest/core/ports"
)

func TestRun_UnreachableTargetExitsNonZero(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "load-tests.db")
	t.Setenv("APP_RESULTS_DRIVER", "sqlite")
	t.Setenv("APP_SQLITE_PATH", dbPath)
	t.Setenv("APP_REQUEST_TIMEOUT_MS", "500")

	var out bytes.Buffer
	code := run([]string{"-users", "2", "-target", "http://127.0.0.1:1"}, &out)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Load test failed") {
		t.Fatalf("expected failure in output, got %q", out.String())
	}

	// The store was migrated and released; nothing was saved.
	cfg := config.Default()
	cfg.ResultsDriver = "sqlite"
	cfg.SQLitePath = dbPath
	st, err := stores.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()
	if _, err := st.Results.LatestRun(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected no saved run, got %v", err)
	}
}

func TestRun_BadFlagExitsWithUsageCode(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-users", "many"}, &out); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}
