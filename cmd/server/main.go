package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"deeplinkr/config"
	appmodel "deeplinkr/internal/app/model"
	apprepository "deeplinkr/internal/app/repository"
	appserver "deeplinkr/internal/app/server"
	appservice "deeplinkr/internal/app/service"
	"deeplinkr/internal/app/shortcode"
	"deeplinkr/internal/infra/logger"
	infraNATS "deeplinkr/internal/infra/nats"
	infraPostgres "deeplinkr/internal/infra/postgres"
	infraPrometheus "deeplinkr/internal/infra/prometheus"
	infraRedis "deeplinkr/internal/infra/redis"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	isDev := os.Getenv("APP_ENV") != "production"
	log := logger.MustInit(logger.Config{
		Development: isDev,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	log.Info("Configuration loaded",
		zap.String("base_url", cfg.App.BaseURL),
		zap.Int("port", cfg.App.Port),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.String("postgres_db", cfg.Postgres.Database),
		zap.String("redis_host", cfg.Redis.Host),
		zap.String("nats_host", cfg.NATS.Host),
	)

	gormDB, err := infraPostgres.NewGorm(cfg.Postgres)
	if err != nil {
		log.Fatal("Failed to open GORM connection", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to access underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := infraPostgres.AutoMigrate(ctx, gormDB, &appmodel.Link{}, &appmodel.ClickEvent{}); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	pool, err := infraPostgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("Failed to connect to Postgres", zap.Error(err))
	}
	defer pool.Close()
	log.Info("Connected to Postgres successfully")

	redisClient, err := infraRedis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("Connected to Redis successfully")

	natsConn, js, err := infraNATS.Connect(cfg.NATS)
	if err != nil {
		log.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsConn.Drain()
	log.Info("Connected to NATS successfully")

	if !isDev {
		promServer := infraPrometheus.NewServer(cfg.Prometheus)
		go func() {
			log.Info("Starting Prometheus metrics server", zap.String("addr", promServer.Addr))
			if err := promServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Prometheus metrics server stopped unexpectedly", zap.Error(err))
			}
		}()
		defer func() {
			if err := promServer.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("Failed to close Prometheus server", zap.Error(err))
			}
		}()
	} else {
		log.Info("Skipping Prometheus metrics server in development mode")
	}

	linkRepo := apprepository.NewLinkRepository(gormDB)
	clickRepo := apprepository.NewClickEventRepository(gormDB)

	linkService := appservice.NewLinkService(linkRepo, shortcode.NewGenerator(0))
	clickPublisher := appservice.NewClickPublisher(js)

	clickConsumer := appservice.NewClickConsumer(js, log, clickRepo)
	if err := clickConsumer.Start(); err != nil {
		log.Fatal("Failed to start click consumer", zap.Error(err))
	}

	server := appserver.New(appserver.Dependencies{
		Logger:         log,
		Postgres:       pool,
		Redis:          redisClient,
		LinkService:    linkService,
		ClickPublisher: clickPublisher,
		BaseURL:        cfg.App.BaseURL,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info("Starting HTTP server", zap.String("addr", addr))
	if err := server.Listen(addr); err != nil {
		log.Fatal("Fiber server exited", zap.Error(err))
	}
}
