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
	"github.com/Eursukkul/shareit/pkg/database"
	"github.com/Eursukkul/shareit/pkg/logging"
	"github.com/Eursukkul/shareit/pkg/metrics"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/Eursukkul/shareit/server/internal/events"
	"github.com/Eursukkul/shareit/server/internal/handler"
	"github.com/Eursukkul/shareit/server/internal/repository"
	"github.com/Eursukkul/shareit/server/internal/service"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const serviceName = "shareit-server"

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

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database ready")

	// RabbitMQ publisher: domain events for the gateway cache
	var publisher events.Publisher
	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("rabbitmq unavailable, events disabled")
		} else {
			defer mq.Close()
			publisher = mq
		}
	}
	emitter := events.NewEmitter(publisher, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo, emitter)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, emitter)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userRepo, emitter)
	requestSvc := service.NewRequestService(requestRepo, userRepo, emitter)

	// Echo
	e := echo.New()
	e.HideBanner = true
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

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewRequestHandler(requestSvc).RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, e, cfg.Server.Port, logger)
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
	logger := baseLogger.With().Str("component", "server").Logger()

	return cfg, logger, closer, nil
}

// serve runs e until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, e *echo.Echo, port int, logger zerolog.Logger) error {
	addr := ":" + strconv.Itoa(port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
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
