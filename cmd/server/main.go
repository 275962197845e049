package main

import (
	"Catalog/internal/config"
	"Catalog/internal/handlers"
	"Catalog/internal/middleware"
	"Catalog/internal/repo"
	"Catalog/internal/service"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap с уровнем из конфига
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	middleware.SetCookieTTL(cfg.AccessTokenTTL)
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.SQLitePath)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// refresh-сессии: Redis, если задан адрес, иначе основная БД
	sessions := repo.NewSessionStore(gormDB)
	if cfg.RedisAddr != "" {
		client, err := repo.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		defer client.Close()
		sessions = repo.NewRedisSessionStore(client)
	}

	userRepo := repo.NewUserRepository(gormDB)
	blockRepo := repo.NewBlockRepository(gormDB)
	brandRepo := repo.NewBrandRepository(gormDB)
	productRepo := repo.NewProductRepository(gormDB)

	services := handlers.Services{
		Users:    service.NewUserService(userRepo),
		Tokens:   service.NewTokenService(sessions, cfg.AuthSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Brands:   service.NewBrandService(brandRepo, sugar),
		Products: service.NewProductService(productRepo, brandRepo, service.NewVisibilityFilter(blockRepo), sugar),
		Blocks:   service.NewBlockService(blockRepo, userRepo, sugar),
	}
	h := handlers.NewHandler(services, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Postgres", cfg.DatabaseDSN != "",
		"SQLitePath", cfg.SQLitePath,
		"Redis", cfg.RedisAddr,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newLogger: debug — development-конфиг, остальные уровни — production.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	var zcfg zap.Config
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
