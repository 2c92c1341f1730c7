package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tw1zzzzz/CisBot2/internal/app"
	"github.com/Tw1zzzzz/CisBot2/internal/cache"
	"github.com/Tw1zzzzz/CisBot2/internal/config"
	"github.com/Tw1zzzzz/CisBot2/internal/db"
	"github.com/Tw1zzzzz/CisBot2/internal/logger"
	"github.com/Tw1zzzzz/CisBot2/internal/server"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}

	appCtx := app.New(cfg, database, redisCache, log)

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed demo data", "err", err)
		}
	}

	srv := server.NewServer(appCtx)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("http server stopped", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
	log.Info("server stopped")
}
