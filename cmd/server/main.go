package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "main/docs"
	appanalysis "main/internal/application/service/analysis"
	appstatements "main/internal/application/service/statements"
	"main/internal/config"
	infracache "main/internal/infrastructure/cache"
	infraprovider "main/internal/infrastructure/provider"
	infrahttp "main/internal/interfaces/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	providerClient := infraprovider.NewClient(cfg.Provider.APIKey,
		infraprovider.WithBaseURL(cfg.Provider.BaseURL),
		infraprovider.WithRateLimit(cfg.Provider.RequestsPerSec),
		infraprovider.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
		}),
		infraprovider.WithLogger(logger),
	)

	statementCache := infracache.New(time.Duration(cfg.Cache.TTLSeconds) * time.Second)

	statementsService, err := appstatements.NewService(providerClient, statementCache)
	if err != nil {
		logger.Fatalf("failed to init statements service: %v", err)
	}

	analysisService, err := appanalysis.NewService(statementsService, logger)
	if err != nil {
		logger.Fatalf("failed to init analysis service: %v", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	responseTTL := time.Duration(cfg.Cache.ResponseTTLSeconds) * time.Second
	handler := infrahttp.NewHandler(analysisService, redisClient, responseTTL, cfg.Dashboard.DefaultPeriods, logger)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
