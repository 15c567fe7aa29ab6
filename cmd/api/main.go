package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/lotto-tracker/api/routes"
	"github.com/ArowuTest/lotto-tracker/internal/bootstrap"
	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/handlers"
	"github.com/ArowuTest/lotto-tracker/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// openRecordRepository is swapped in tests to observe the store lifecycle
var openRecordRepository = bootstrap.OpenRecordRepository

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("Failed to read .env file", "error", err)
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := run(quit); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run serves until quit fires or the listener fails. The history store is
// closed on every return path.
func run(quit <-chan os.Signal) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.SetupLogger(cfg.LogLevel)
	// PORT is what most hosting platforms inject
	cfg.Server.Port = config.GetEnv("PORT", cfg.Server.Port)
	cfg.Server.AllowedHosts = config.GetEnvAsSlice("ALLOWED_ORIGINS", ",", cfg.Server.AllowedHosts)
	cfg.Lottery.SeedRound = config.GetEnvAsInt("LOTTO_SEED_ROUND", cfg.Lottery.SeedRound)

	ctx := context.Background()
	repo, closeStore, err := openRecordRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			slog.Error("Error closing history store", "error", err)
		}
	}()

	tracker := services.NewTrackerService(repo, bootstrap.NewDrawFetcher(cfg))
	if _, err := tracker.LoadHistory(ctx); err != nil {
		return err
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		AuthHandler: handlers.NewAuthHandler(services.NewAuthService(cfg)),
		DrawHandler: handlers.NewDrawHandler(tracker, cfg.Lottery.FixedSets),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "seedRound", cfg.Lottery.SeedRound)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
	return nil
}
