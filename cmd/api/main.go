package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelmock/internal/api"
	"hotelmock/internal/cache"
	"hotelmock/internal/config"
	"hotelmock/internal/domain"
	"hotelmock/internal/fixtures"
	"hotelmock/internal/logging"
	"hotelmock/internal/metrics"
	"hotelmock/internal/service"
	"hotelmock/internal/store"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}

	st, err := loadStore(cfg, &logger)
	if err != nil {
		return err
	}

	svc := service.New(st, &logger)

	searchCache, redisClient := initSearchCache(cfg, &logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	httpServer := api.NewHTTPServer(cfg, svc, searchCache, st, &logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startMetrics(ctx, cfg, &logger)

	return startServer(ctx, httpServer, cfg, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

func loadStore(cfg *config.Config, logger *zerolog.Logger) (*store.Store, error) {
	set, err := fixtures.Load(cfg.Fixtures.Dir)
	if err != nil {
		logger.Error().Err(err).Str("fixtures_dir", cfg.Fixtures.Dir).Msg("load fixtures")
		return nil, err
	}

	st := store.New(set.Hotels, set.Rooms, set.Availability, set.Bookings)
	hotels, rooms, entries := st.Stats()
	logger.Info().
		Int("hotels", hotels).
		Int("rooms", rooms).
		Int("availability_entries", entries).
		Msg("fixture store loaded")

	return st, nil
}

func initSearchCache(cfg *config.Config, logger *zerolog.Logger) (domain.SearchCache, *redis.Client) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	memory := cache.NewMemorySearchCache(ttl)

	if cfg.Redis.Address == "" {
		logger.Info().Msg("search cache using in-memory backend")
		return memory, nil
	}

	redisClient := cache.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx, redisClient); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, search cache falls back to memory")
		_ = redisClient.Close()
		return memory, nil
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	primary := cache.NewRedisSearchCache(redisClient, ttl)
	return cache.NewFailoverSearchCache(primary, memory, logger), redisClient
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	port := cfg.Monitoring.PrometheusPort
	if port == 0 {
		port = 9090
	}
	go startMetricsServer(ctx, port, logger)
}

func startServer(ctx context.Context, httpServer *api.HTTPServer, cfg *config.Config, logger *zerolog.Logger) error {
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	logger.Info().Int("http_port", cfg.Server.Port).Msg("API server started")

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}

	logger.Info().Msg("API server stopped")
	return nil
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
