package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"logiflow/internal/entities"
	"logiflow/internal/gateway/rest"
	retrierconfig "logiflow/pkg/retrier"
	"logiflow/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "fleet-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type FleetGateway struct {
	baseURL        string
	client         httpClient
	retrier        retrier
	requestTimeout time.Duration
}

func New(baseURL string, client httpClient, requestTimeout time.Duration) *FleetGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     rest.IsRetryable,
	}

	return &FleetGateway{
		baseURL:        baseURL,
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
		requestTimeout: requestTimeout,
	}
}

// Assign запрашивает подбор курьера. Отказ (REJECTED) - не ошибка,
// он возвращается в теле результата.
func (f *FleetGateway) Assign(ctx context.Context, request entities.AssignmentRequest) (*entities.AssignmentResult, error) {
	body, err := json.Marshal(fromDomainRequest(request))
	if err != nil {
		return nil, fmt.Errorf("gateway fleet, marshal assignment request: %w", err)
	}

	var dto assignmentResultDTO

	err = f.executeWithMetrics(ctx, "Assign", func(ctx context.Context) error {
		return f.doJSON(ctx, f.baseURL+"/assignment", body, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway fleet, assign order: %s: %w", request.OrderID, err)
	}

	return toDomain(dto), nil
}

func (f *FleetGateway) Release(ctx context.Context, orderID string, completed bool) error {
	body, err := json.Marshal(releaseRequestDTO{
		OrderID:   orderID,
		Completed: completed,
	})
	if err != nil {
		return fmt.Errorf("gateway fleet, marshal release request: %w", err)
	}

	err = f.executeWithMetrics(ctx, "Release", func(ctx context.Context) error {
		return f.doJSON(ctx, f.baseURL+"/assignment/release", body, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway fleet, release order: %s: %w", orderID, err)
	}

	return nil
}

func (f *FleetGateway) doJSON(ctx context.Context, url string, body []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, f.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &rest.StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (f *FleetGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := f.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := rest.StatusLabel(err)
	rest.GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		rest.GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}
