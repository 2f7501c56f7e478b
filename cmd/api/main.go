package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/log"
	"gallery-analytics-service/internal/server"

	_ "gallery-analytics-service/docs"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

var flagConfig = flag.String("config", "", "path to an optional YAML config file")

// @title Gallery Analytics Service API
// @version 1.0
// @description Photo gallery with live in-memory analytics and load test tooling.
// @BasePath /
func main() {
	flag.Parse()

	// Config
	boot := log.New("info")
	cfg, err := config.Load(*flagConfig, boot.Debugf)
	if err != nil {
		boot.Errorf("failed to load application configuration: %v", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel).With(context.Background(), "version", Version, "server_id", cfg.ServerID)
	defer func() { _ = logger.Sync() }()

	// HTTP (Fiber) app + handlers
	srv := server.New(cfg, logger)
	addr := fmt.Sprintf(":%d", cfg.ServerPort)

	// Graceful shutdown
	go func() {
		if err := srv.App.Listen(addr); err != nil {
			logger.Errorf("fiber stopped: %v", err)
		}
	}()

	logger.Infof("server running on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Infof("got signal %s, shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.App.ShutdownWithContext(ctx); err != nil {
		logger.Errorf("fiber shutdown error: %v", err)
	}

	logger.Info("server exiting")
}
