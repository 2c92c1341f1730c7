package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/Tw1zzzzz/CisBot2/internal/cache"
	"github.com/Tw1zzzzz/CisBot2/internal/config"
)

// AppContext holds shared dependencies (DB, Redis, Logger, config)
type AppContext struct {
	Cfg        *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	return &AppContext{
		Cfg:        cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
	}
}
