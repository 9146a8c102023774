package cybersource

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/domain/ports"
	"go.uber.org/zap"
)

// DefaultTimeout is applied when the transport is configured without one.
const DefaultTimeout = 30 * time.Second

// TransportConfig contains configuration for the gateway transport
type TransportConfig struct {
	// Endpoint is the full URL of the gateway's SOAP endpoint.
	Endpoint string

	// Timeout bounds the whole request/response exchange. Zero selects
	// DefaultTimeout.
	Timeout time.Duration
}

// Transport posts serialized request documents to the gateway endpoint.
//
// Any HTTP-level response is a success at this layer, including non-2xx:
// the gateway encodes business errors inside the envelope, not via HTTP
// status. Only failures to complete the exchange at all surface as errors.
// No retries are performed here; failures are reported, not retried.
type Transport struct {
	config TransportConfig
	client ports.HTTPClient
	logger *zap.Logger
}

// NewTransport creates a gateway transport. A nil client selects a plain
// http.Client; tests inject a mock through the HTTPClient port.
func NewTransport(config TransportConfig, client ports.HTTPClient, logger *zap.Logger) *Transport {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Transport{
		config: config,
		client: client,
		logger: logger,
	}
}

// Send posts the document and returns the raw response body.
func (t *Transport) Send(ctx context.Context, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	correlationID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeConnectionFailed, "failed to create gateway request", err)
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("X-Correlation-Id", correlationID)

	t.logger.Info("Sending gateway request",
		zap.String("endpoint", t.config.Endpoint),
		zap.String("correlation_id", correlationID),
		zap.Int("body_length", len(body)),
	)

	startTime := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, t.classifyTransportError(ctx, correlationID, err, time.Since(startTime))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, t.classifyTransportError(ctx, correlationID, err, time.Since(startTime))
	}

	t.logger.Info("Received gateway response",
		zap.String("correlation_id", correlationID),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("body_length", len(raw)),
	)

	return raw, nil
}

func (t *Transport) classifyTransportError(ctx context.Context, correlationID string, err error, elapsed time.Duration) error {
	timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)

	if timedOut {
		t.logger.Error("Gateway request timed out",
			zap.String("correlation_id", correlationID),
			zap.Duration("elapsed", elapsed),
			zap.Duration("timeout", t.config.Timeout),
			zap.Error(err),
		)
		return domain.WrapError(domain.ErrorCodeGatewayTimeout, "payment gateway request timed out", err)
	}

	t.logger.Error("Gateway request failed",
		zap.String("correlation_id", correlationID),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)
	return domain.WrapError(domain.ErrorCodeConnectionFailed, "failed to reach the payment gateway", err)
}
