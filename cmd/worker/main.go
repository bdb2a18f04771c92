package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go-pet-storefront/internal/app"
	"go-pet-storefront/internal/config"
	"go-pet-storefront/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l := logger.Must(cfg.AppEnv).Named("worker")
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx, cfg, l); err != nil {
		l.Fatal("worker failed", zap.Error(err))
	}
}
