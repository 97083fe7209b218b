// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/config"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/handler"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/logger"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/repository"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/service"
)

func main() {
	// ── 1. Configuration and logging ─────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// ── 2. Seed the roster and wire up layers ────────────────────────────
	roster, err := repository.NewRoster(repository.DefaultSeeds())
	if err != nil {
		zl.Fatal("seed roster", zap.Error(err))
	}
	activitySvc := service.NewActivityService(roster, zl)
	activityHandler := handler.NewActivityHandler(activitySvc, zl)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(handler.RouterConfig{
		StaticDir:  cfg.StaticDir,
		CORSOrigin: cfg.CORSOrigin,
	}, activityHandler, zl)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		zl.Info("server listening", zap.String("addr", srv.Addr), zap.Int("activities", len(roster.List())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}
