package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gallery-analytics-service/internal/analyzer/adapters/console"
	"gallery-analytics-service/internal/analyzer/adapters/watch"
	"gallery-analytics-service/internal/analyzer/core/usecase"
	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/loadtest/adapters/stores"
	"gallery-analytics-service/internal/log"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run analyzes the latest results, once or on every change, and returns the
// process exit code.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("analyze", flag.ContinueOnError)
	flagConfig := flags.String("config", "", "path to an optional YAML config file")
	flagWatch := flags.Bool("watch", false, "re-run the analysis whenever new results are saved")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	boot := log.New("info")
	cfg, err := config.Load(*flagConfig, boot.Debugf)
	if err != nil {
		boot.Errorf("failed to load application configuration: %v", err)
		return 1
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

	uc := usecase.NewAnalyzeUseCase(st.Results, st.Snapshots, logger)
	renderer := console.NewRenderer(stdout)

	analyze := func() bool {
		rep, err := uc.Execute(ctx)
		if err != nil {
			hint := ""
			if errors.Is(err, usecase.ErrRunNotFound) {
				hint = "Make sure to run the load test first!"
			}
			renderer.Error(err, hint)
			return false
		}
		renderer.Render(rep)
		return true
	}

	ok := analyze()
	if !*flagWatch {
		if !ok {
			return 1
		}
		return 0
	}

	if st.WatchPath == "" {
		logger.Errorf("watch mode needs a file or sqlite results store, got %q", cfg.ResultsDriver)
		return 1
	}
	w, err := watch.New(st.WatchPath, watch.DefaultDebounce, logger)
	if err != nil {
		logger.Errorf("failed to watch results: %v", err)
		return 1
	}

	logger.Infof("watching %s for new results", st.WatchPath)
	if err := w.Run(ctx, func() { analyze() }); err != nil {
		logger.Errorf("watch stopped: %v", err)
		return 1
	}
	return 0
}
