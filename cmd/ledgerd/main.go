package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"investledger/internal/config"
	"investledger/internal/ledger"
	"investledger/internal/logger"
	"investledger/internal/server"
	"investledger/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if len(cfg.AdminIDs) == 0 {
		zl.Warn("ADMIN_IDS is empty, admin operations will be refused")
	}

	store := ledger.New(
		ledger.WithLogger(zl.Named("ledger")),
		ledger.WithAdmins(cfg.AdminIDs...),
		ledger.WithExchangeRate(cfg.ExchangeRate),
		ledger.WithReferralBonus(cfg.ReferralBonus),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           server.NewRouter(store, zl.Named("http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go worker.NewMaturityChecker(store, zl.Named("worker"), cfg.MaturityCheck).Start(ctx)

	go func() {
		zl.Info("Service started", zap.String("port", cfg.HTTPPort), zap.Int("admins", len(cfg.AdminIDs)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down, in-memory ledger state will be lost", zap.Int("users", store.Summary().Users))

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}
}
