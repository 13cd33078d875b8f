package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"logiflow/internal/entities"
	"logiflow/internal/gateway/rest"
	billingservice "logiflow/internal/service/billing"
	retrierconfig "logiflow/pkg/retrier"
	"logiflow/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "billing-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type BillingGateway struct {
	baseURL        string
	client         httpClient
	retrier        retrier
	requestTimeout time.Duration
}

func New(baseURL string, client httpClient, requestTimeout time.Duration) *BillingGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     rest.IsRetryable,
	}

	return &BillingGateway{
		baseURL:        baseURL,
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
		requestTimeout: requestTimeout,
	}
}

func (b *BillingGateway) CreateInvoice(ctx context.Context, request entities.InvoiceRequest) (*entities.Invoice, error) {
	body, err := json.Marshal(fromDomainRequest(request))
	if err != nil {
		return nil, fmt.Errorf("gateway billing, marshal invoice request: %w", err)
	}

	var dto invoiceDTO

	err = b.executeWithMetrics(ctx, "CreateInvoice", func(ctx context.Context) error {
		return b.doJSON(ctx, http.MethodPost, b.baseURL+"/invoice", body, &dto)
	})
	if err != nil {
		var statusErr *rest.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusConflict {
			return nil, fmt.Errorf("gateway billing, create invoice: %s: %w", request.OrderID, billingservice.ErrInvoiceAlreadyExists)
		}
		return nil, fmt.Errorf("gateway billing, create invoice: %s: %w", request.OrderID, err)
	}

	return toDomain(dto), nil
}

func (b *BillingGateway) doJSON(ctx context.Context, method, url string, body []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, b.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
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

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (b *BillingGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := b.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
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
