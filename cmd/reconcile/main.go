package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/config"
)

// defaultInterval applies to -loop when reconciliation.interval is unset
const defaultInterval = 5 * time.Minute

func main() {
	loop := flag.Bool("loop", false, "keep running, one pass per reconciliation.interval")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger := bootstrap.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to start application", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	clean := runOnce(ctx, app)
	if *loop {
		interval := cfg.Reconciliation.Interval
		if interval <= 0 {
			interval = defaultInterval
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

	poll:
		for {
			select {
			case <-ctx.Done():
				break poll
			case <-ticker.C:
				runOnce(ctx, app)
			}
		}
	}

	if err := app.Close(); err != nil {
		appLogger.Error("Failed to release resources", map[string]any{"error": err.Error()})
	}
	if !*loop && !clean {
		os.Exit(2)
	}
}

// runOnce performs one reconciliation pass and reports whether it found nothing to flag
func runOnce(ctx context.Context, app *bootstrap.App) bool {
	report, err := app.Reconciliation.RunJob(ctx)
	if err != nil {
		app.Logger.Error("Reconciliation job failed", map[string]any{"error": err.Error()})
		return false
	}

	fields := report.LogFields()
	if !report.Clean() {
		fields["errorMessages"] = report.Errors
		app.Logger.Warn("Reconciliation finished with findings", fields)
		return false
	}
	app.Logger.Info("Reconciliation finished", fields)
	return true
}
