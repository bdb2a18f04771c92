package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go-pet-storefront/internal/app"
	"go-pet-storefront/internal/bootstrap"
	"go-pet-storefront/internal/config"
	"go-pet-storefront/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l := logger.Must(cfg.AppEnv)
	defer func() { _ = l.Sync() }()

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(ctx, r, cfg, l)
	if err != nil {
		l.Fatal("build app", zap.Error(err))
	}
	defer cleanup()

	err = bootstrap.StartHTTPServer(ctx, r, bootstrap.ServerConfig{
		Port:        cfg.Port,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}, l)
	if err != nil {
		l.Error("http server", zap.Error(err))
	}
}
