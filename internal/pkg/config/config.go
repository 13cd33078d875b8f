package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OutboxRelayInterval  time.Duration
		OutboxRelayBatchSize int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Gateways struct {
		BillingBaseURL string
		FleetBaseURL   string
		RequestTimeout time.Duration
	}

	Rabbit struct {
		URL             string
		PortHealthcheck string
		Prefetch        int
		Handlers        RabbitHandlers
	}

	RabbitHandlers struct {
		MaxDeliveryAttempts int
		OrderCreated        RabbitHandler
		OrderStatusChanged  RabbitHandler
	}

	RabbitHandler struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Gateways Gateways
		Rabbit   Rabbit
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	outboxInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatchSize, err := osGetInt("BACKGROUND_OUTBOX_RELAY_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gatewayTimeout, err := osGetEnvDuration("GATEWAY_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rabbitPrefetch, err := osGetInt("RABBITMQ_PREFETCH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxDeliveryAttempts, err := osGetInt("RABBITMQ_MAX_DELIVERY_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderCreatedTimeout, err := osGetEnvDuration("RABBITMQ_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("RABBITMQ_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OutboxRelayInterval:  outboxInterval,
			OutboxRelayBatchSize: outboxBatchSize,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Gateways: Gateways{
			BillingBaseURL: os.Getenv("BILLING_BASE_URL"),
			FleetBaseURL:   os.Getenv("FLEET_BASE_URL"),
			RequestTimeout: gatewayTimeout,
		},
		Rabbit: Rabbit{
			URL:             os.Getenv("RABBITMQ_URL"),
			PortHealthcheck: os.Getenv("RABBITMQ_HTTP_HEALTHCHECK_PORT"),
			Prefetch:        rabbitPrefetch,
			Handlers: RabbitHandlers{
				MaxDeliveryAttempts: maxDeliveryAttempts,
				OrderCreated: RabbitHandler{
					ProcessTimeout: orderCreatedTimeout,
				},
				OrderStatusChanged: RabbitHandler{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.OutboxRelayBatchSize == 0 {
		return errors.New("BACKGROUND_OUTBOX_RELAY_BATCH_SIZE is required")
	}

	if cfg.Gateways.BillingBaseURL == "" {
		return errors.New("BILLING_BASE_URL is required")
	}
	if cfg.Gateways.FleetBaseURL == "" {
		return errors.New("FLEET_BASE_URL is required")
	}
	if cfg.Gateways.RequestTimeout == time.Duration(0) {
		return errors.New("GATEWAY_REQUEST_TIMEOUT is required")
	}

	if cfg.Rabbit.URL == "" {
		return errors.New("RABBITMQ_URL is required")
	}
	if cfg.Rabbit.PortHealthcheck == "" {
		return errors.New("RABBITMQ_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Rabbit.Prefetch == 0 {
		return errors.New("RABBITMQ_PREFETCH is required")
	}
	if cfg.Rabbit.Handlers.MaxDeliveryAttempts == 0 {
		return errors.New("RABBITMQ_MAX_DELIVERY_ATTEMPTS is required")
	}
	if cfg.Rabbit.Handlers.OrderCreated.ProcessTimeout == time.Duration(0) {
		return errors.New("RABBITMQ_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT is required")
	}
	if cfg.Rabbit.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("RABBITMQ_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
