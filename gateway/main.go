package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Eursukkul/shareit/config"
	"github.com/Eursukkul/shareit/gateway/internal/cache"
	"github.com/Eursukkul/shareit/gateway/internal/client"
	"github.com/Eursukkul/shareit/gateway/internal/consumer"
	"github.com/Eursukkul/shareit/gateway/internal/handler"
	gwMw "github.com/Eursukkul/shareit/gateway/internal/middleware"
	"github.com/Eursukkul/shareit/gateway/internal/validation"
	"github.com/Eursukkul/shareit/pkg/logging"
	"github.com/Eursukkul/shareit/pkg/metrics"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	serviceName = "shareit-gateway"
	cacheQueue  = "shareit-gateway.cache"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverClient := client.New(cfg.Gateway.ServerURL, cfg.Gateway.RequestTimeout(), logger)

	// Redis item cache, kept fresh by server events
	if rdb := initRedis(ctx, cfg, logger); rdb != nil {
		defer rdb.Close()
		itemCache := cache.NewItemCache(rdb, cfg.Gateway.CacheTTL())
		serverClient.UseCache(itemCache)

		if cfg.RabbitMQ.URL != "" {
			mq, err := rabbitmq.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cacheQueue, consumer.Bindings, logger)
			if err != nil {
				return fmt.Errorf("rabbitmq consumer: %w", err)
			}
			defer mq.Close()

			msgs, err := mq.Consume()
			if err != nil {
				return err
			}
			consumer.NewCacheInvalidator(itemCache, logger).Start(ctx, msgs)
		} else {
			logger.Warn().Msg("no rabbitmq url, cached items expire by ttl only")
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.NewErrorHandler(logger)
	e.Use(echoMw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLogger(logger))
	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		e.Use(metrics.Middleware(serviceName))
		e.GET("/metrics", metrics.Handler())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	})

	var apiMw []echo.MiddlewareFunc
	if cfg.Gateway.RateLimit.RPS > 0 {
		apiMw = append(apiMw, gwMw.RateLimit(cfg.Gateway.RateLimit))
	}
	handler.NewUserHandler(serverClient).RegisterRoutes(e, apiMw...)
	handler.NewItemHandler(serverClient).RegisterRoutes(e, apiMw...)
	handler.NewBookingHandler(serverClient).RegisterRoutes(e, apiMw...)
	handler.NewRequestHandler(serverClient).RegisterRoutes(e, apiMw...)

	return serve(ctx, e, cfg.Gateway.Port, logger)
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
	logger := baseLogger.With().Str("component", "gateway").Logger()

	return cfg, logger, closer, nil
}

// initRedis returns nil when redis is not configured or does not answer;
// the gateway then runs without a cache.
func initRedis(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *redis.Client {
	if cfg.Redis.Address == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Str("address", cfg.Redis.Address).Msg("redis unavailable, item cache disabled")
		_ = rdb.Close()
		return nil
	}

	logger.Info().Str("address", cfg.Redis.Address).Msg("redis connected")
	return rdb
}

// serve runs e until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, e *echo.Echo, port int, logger zerolog.Logger) error {
	addr := ":" + strconv.Itoa(port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("gateway starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
