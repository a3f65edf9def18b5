// Package main - Entry point for the archcost estimation server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"archcost/api"
	"archcost/core/pricing"
	"archcost/db/ingestion"
	"archcost/internal/config"
	"archcost/internal/logging"
	"archcost/internal/notify"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := run(cfg); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	service := pricing.NewService()

	store, err := pricing.NewStore(cfg.Pricing.DataDir)
	if err != nil {
		return err
	}

	// Overlay the last committed snapshot so a restart does not regress to
	// the compiled-in defaults until the next refresh.
	snap, err := store.Latest()
	if err != nil {
		logging.Warn("ignoring unreadable pricing snapshot", zap.Error(err))
	} else if snap != nil {
		service.Apply(snap)
	}

	mailer := notify.NewMailer(cfg.Email)
	pipeline := ingestion.NewPipeline(ingestion.NewFetcher(), service, store).WithNotifier(mailer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Pricing.RefreshOnStart {
		go func() {
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()
			_ = pipeline.Run(runCtx)
		}()
	}

	if cfg.Refresh.Enabled {
		scheduler := ingestion.NewScheduler(pipeline, cfg.Refresh.Hour, cfg.Refresh.Minute)
		go scheduler.Start(ctx)
	}

	apiServer := api.NewServer(version, cfg, service, store, pipeline, mailer)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      apiServer,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", zap.String("addr", cfg.Server.Addr), zap.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
