package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"budgetbok/internal/cli"
	"budgetbok/internal/config"
	"budgetbok/internal/log"
	"budgetbok/internal/services"
)

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)
	cli.ValidateConfig(logger, cfg)

	store := cli.InitStore(logger, cfg.DBPath)
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snapshots := services.NewSnapshotService(store, cfg.SnapshotKey)
	result := snapshots.Load(ctx)
	if result.Found {
		logger.Info("Restored saved budget",
			log.FieldSnapshotKey, cfg.SnapshotKey,
			"expenses", len(result.Ledger.Expenses),
			"incomes", len(result.Ledger.Incomes))
	} else {
		logger.Info("Starting with a fresh budget", log.FieldSnapshotKey, cfg.SnapshotKey)
	}

	reminder := services.NewSaveReminder(cfg.ReminderDelay)
	defer reminder.Stop()

	app := cli.NewApp(result.Ledger, snapshots, reminder, cfg, logger, os.Stdout)

	// The stdin reader feeds the event loop. It stays a plain goroutine
	// because Scan cannot be interrupted; the process exits right after
	// the event loop finishes, so a blocked read is harmless.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.Run(gctx, lines) })

	if err := g.Wait(); err != nil && !cli.IsQuit(err) && !errors.Is(err, context.Canceled) {
		logger.Error("Event loop failed", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Budgetbok stopped", log.FieldOperation, log.OpShutdown)
}
