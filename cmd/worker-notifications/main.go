package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"golang.org/x/sync/errgroup"
	"logiflow/internal/app"
	"logiflow/internal/handlers/rest/healthcheck_head"
	"logiflow/internal/pkg/config"
	"logiflow/internal/pkg/dotenv"
	"logiflow/internal/pkg/postgres"
	"logiflow/internal/pkg/rabbitmq"
	"logiflow/pkg/logger"
	"logiflow/pkg/logger/zap_adapter"
	retrierconfig "logiflow/pkg/retrier"
	"logiflow/pkg/retrier/backoff_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting notifications-worker application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file",
				logger.NewField("error", err),
			)
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config",
			logger.NewField("error", err),
		)
		return
	}

	err = run(context.Background(), appLogger, cfg)
	if err != nil {
		mainLog.Error("application failed",
			logger.NewField("error", err),
		)
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	rabbit, err := rabbitmq.Connect(cfg.Rabbit.URL, log)
	if err != nil {
		return fmt.Errorf("rabbitmq: %w", err)
	}
	defer rabbit.Close()

	if err := pingBroker(ctx, runLog, rabbit); err != nil {
		return fmt.Errorf("rabbitmq: %w", err)
	}

	businessApp, err := app.InitializeRabbitWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Rabbit.PortHealthcheck),
		Handler: initHealthcheckRouter(&isShuttingDown),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)

		runLog.With(
			logger.NewField("port", cfg.Rabbit.PortHealthcheck),
		).Info("Server starting")
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			healthServerErr <- err
		}
	}()

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)

		runLog.With(
			logger.NewField("queues", []string{rabbitmq.QueueOrderCreated, rabbitmq.QueueOrderStatusChanged}),
		).Info("AMQP consumers starting")

		group, groupCtx := errgroup.WithContext(ongoingCtx)

		group.Go(func() error {
			return rabbit.Consume(groupCtx, rabbitmq.ConsumerConfig{
				Queue:               rabbitmq.QueueOrderCreated,
				ConsumerTag:         "worker-notifications-order-created",
				Prefetch:            cfg.Rabbit.Prefetch,
				MaxDeliveryAttempts: int64(cfg.Rabbit.Handlers.MaxDeliveryAttempts),
			}, businessApp.OrderCreatedHandler.Handle)
		})

		group.Go(func() error {
			return rabbit.Consume(groupCtx, rabbitmq.ConsumerConfig{
				Queue:               rabbitmq.QueueOrderStatusChanged,
				ConsumerTag:         "worker-notifications-order-status-changed",
				Prefetch:            cfg.Rabbit.Prefetch,
				MaxDeliveryAttempts: int64(cfg.Rabbit.Handlers.MaxDeliveryAttempts),
			}, businessApp.OrderStatusChangedHandler.Handle)
		})

		if err := group.Wait(); err != nil {
			consumerErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("healthcheck server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("Draining AMQP messages")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err = healthServer.Shutdown(shutdownCtx)
	if err != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	stopOngoingGracefully()

	runLog.Info("Worker stopped")
	return nil
}

// pingBroker ждёт готовности подключения к брокеру, ретраясь с backoff.
func pingBroker(ctx context.Context, log logger.Logger, rabbit *rabbitmq.Client) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: 1 * time.Second,
		MaxInterval:     15 * time.Second,
		MaxElapsedTime:  1 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting RabbitMQ connection")

		return rabbit.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to ping broker: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("RabbitMQ connection established")
	return nil
}

func initHealthcheckRouter(isShuttingDown *atomic.Bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthcheck", healthcheck_head.New(isShuttingDown))
	return mux
}
