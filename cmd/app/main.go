package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/achievement"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/catalog"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/config"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/event"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/logger"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/scheduler"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/server"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/store"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logCfg := logger.DevelopmentConfig()
	if cfg.Environment == "prod" {
		logCfg = logger.ProductionConfig()
	}
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Setup(logCfg)

	cat, err := catalog.Load()
	if err != nil {
		slog.Error("Failed to load catalogs", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := store.Open(ctx, cfg.SavePath)
	if err != nil {
		slog.Error("Failed to open save store", "error", err, "path", cfg.SavePath)
		os.Exit(1)
	}
	defer st.Close()

	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     3,
		RetryDelay:     time.Second,
		DeadLetterPath: cfg.DeadLetterPath,
	})

	eng := engine.New(cat, publisher)

	// Resume the save slot if one exists; a fresh slot starts from defaults.
	snap, err := st.LoadSnapshot(ctx, cfg.SaveSlot)
	switch {
	case err == nil:
		if err := eng.Hydrate(ctx, snap); err != nil {
			slog.Error("Failed to hydrate saved state", "error", err, "slot", cfg.SaveSlot)
			os.Exit(1)
		}
	case errors.Is(err, domain.ErrSnapshotNotFound):
		slog.Info("No existing save, starting fresh", "slot", cfg.SaveSlot)
	default:
		slog.Error("Failed to load save", "error", err, "slot", cfg.SaveSlot)
		os.Exit(1)
	}

	monitor := achievement.NewMonitor(eng)
	monitor.Attach()

	pool := worker.NewPool(2, 32)
	pool.Start()
	defer pool.Stop()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.TickInterval, &worker.PassiveIncomeJob{Engine: eng})
	sched.Schedule(time.Second, &worker.PlaytimeJob{Engine: eng})
	sched.Schedule(cfg.AutosaveEvery, &worker.AutosaveJob{Engine: eng, Store: st, Slot: cfg.SaveSlot})
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, cfg.APIKey, eng, monitor, st, cfg.SaveSlot)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	// Final save so a clean shutdown never loses progress.
	if err := st.SaveSnapshot(ctx, cfg.SaveSlot, eng.Snapshot()); err != nil {
		slog.Error("Final save failed", "error", err, "slot", cfg.SaveSlot)
	}
}
