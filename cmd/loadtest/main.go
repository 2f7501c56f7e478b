package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/loadtest/adapters/console"
	"gallery-analytics-service/internal/loadtest/adapters/httpclient"
	"gallery-analytics-service/internal/loadtest/adapters/stores"
	"gallery-analytics-service/internal/loadtest/core/usecase"
	"gallery-analytics-service/internal/log"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run drives one load test and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	flagConfig := flags.String("config", "", "path to an optional YAML config file")
	flagUsers := flags.Int("users", 0, "number of simulated users (overrides total_users)")
	flagTarget := flags.String("target", "", "base url of the gallery (overrides target_url)")
	flagSeed := flags.Uint64("seed", 0, "seed for behaviour selection and think times, 0 for random")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	boot := log.New("info")
	cfg, err := config.Load(*flagConfig, boot.Debugf)
	if err != nil {
		boot.Errorf("failed to load application configuration: %v", err)
		return 1
	}
	if *flagUsers > 0 {
		cfg.TotalUsers = *flagUsers
	}
	if *flagTarget != "" {
		cfg.TargetURL = *flagTarget
	}

	logger := log.New(cfg.LogLevel).With(context.Background(), "version", Version)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := stores.Open(ctx, cfg)
	if err != nil {
		logger.Errorf("failed to open results store: %v", err)
		return 1
	}
	defer st.Close()

	timeout := time.Duration(cfg.RequestTimeoutMS) * time.Millisecond
	client := httpclient.NewClient(httpclient.Options{
		MaxConnsPerHost: cfg.MaxConnsPerHost,
		Timeout:         timeout,
	})

	reporter := console.NewReporter(stdout)
	uc := usecase.NewRunLoadTestUseCase(client, st.Results, st.Snapshots, logger).
		WithProgress(console.NewProgress(stdout)).
		WithTimeout(timeout)

	reporter.Banner(cfg.TotalUsers, cfg.TargetURL, time.Now())

	report, err := uc.Execute(ctx, usecase.RunInput{
		TotalUsers: cfg.TotalUsers,
		BaseURL:    cfg.TargetURL,
		Seed:       *flagSeed,
	})
	if err != nil {
		reporter.Failed(err)
		if errors.Is(err, usecase.ErrTargetUnreachable) {
			logger.Error("is the gallery running? start it or pass -target")
		}
		return 1
	}

	reporter.RunSummary(report.Result)
	reporter.Saved(st.Location)
	if report.SnapshotErr != nil {
		reporter.SnapshotFailed(report.SnapshotErr)
	} else {
		reporter.SnapshotSaved(report.Snapshot)
	}
	return 0
}
