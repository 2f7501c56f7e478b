package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/loadtest/adapters/httpclient"
	"gallery-analytics-service/internal/log"
	"gallery-analytics-service/internal/smoke/adapters/console"
	"gallery-analytics-service/internal/smoke/core/usecase"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run checks a deployed gallery and returns 0 only when every check passes.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("smoketest", flag.ContinueOnError)
	flagConfig := flags.String("config", "", "path to an optional YAML config file")
	flagTarget := flags.String("target", "", "base url of the gallery (overrides target_url)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	boot := log.New("info")
	cfg, err := config.Load(*flagConfig, boot.Debugf)
	if err != nil {
		boot.Errorf("failed to load application configuration: %v", err)
		return 1
	}
	if *flagTarget != "" {
		cfg.TargetURL = *flagTarget
	}

	logger := log.New(cfg.LogLevel).With(context.Background(), "version", Version)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := httpclient.NewClient(httpclient.Options{
		MaxConnsPerHost: cfg.MaxConnsPerHost,
		Timeout:         time.Duration(cfg.RequestTimeoutMS) * time.Millisecond,
	})

	logger.Infof("starting Foreign Exploration Gallery tests against %s", cfg.TargetURL)
	rep, err := usecase.NewRunChecksUseCase(client, logger).
		WithRetries(cfg.SmokeRetries).
		Execute(ctx, cfg.TargetURL)
	if err != nil {
		logger.Errorf("test suite failed to run: %v", err)
		return 1
	}

	console.NewReporter(stdout).Print(rep)
	if !rep.AllPassed() {
		return 1
	}
	return 0
}
