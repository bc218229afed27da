package lnd

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
)

// ServiceName identifies the node in ExternalServiceError values
const ServiceName = "lnd"

const macaroonHeader = "Grpc-Metadata-macaroon"

// Config holds the REST gateway settings of the Lightning node
type Config struct {
	BaseURL            string
	Macaroon           string // hex encoded
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
	InvoiceExpiry      int64 // seconds
	SendTimeout        int   // seconds
	MaxParts           int
	FeeLimitMsat       int64
	MaxRetries         uint64
	RetryInterval      time.Duration // initial backoff, library default when zero
}

// Client talks to the LND REST API. Idempotent calls are retried with
// exponential backoff; payments are never re-sent by the client.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

var _ external.PaymentGateway = (*Client)(nil)

// NewClient creates a client for the node at config.BaseURL
func NewClient(config Config, logger coreport.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config:     config,
		httpClient: &http.Client{Transport: transport},
		logger:     logger,
	}
}

// apiError is the error body returned by the gRPC gateway
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("lnd error %d: %s", e.Code, e.Message)
}

// statusError is a non-2xx HTTP answer
type statusError struct {
	StatusCode int
	API        *apiError
	Body       string
}

func (e *statusError) Error() string {
	if e.API != nil && e.API.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.API.Message)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

func (e *statusError) message() string {
	if e.API != nil {
		return e.API.Message
	}
	return e.Body
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(macaroonHeader, c.config.Macaroon)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do performs one request and decodes a JSON answer into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &statusError{StatusCode: resp.StatusCode, Body: string(raw)}
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			statusErr.API = &apiErr
		}
		if resp.StatusCode < 500 {
			return backoff.Permanent(statusErr)
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// call runs do with retries and wraps the final failure as an ExternalServiceError
func (c *Client) call(ctx context.Context, operation, method, path string, body, out any) error {
	exp := backoff.NewExponentialBackOff()
	if c.config.RetryInterval > 0 {
		exp.InitialInterval = c.config.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, c.config.MaxRetries), ctx)

	err := backoff.RetryNotify(func() error {
		return c.do(ctx, method, path, body, out)
	}, policy, func(err error, wait time.Duration) {
		c.logger.Warn("Lightning node request failed, retrying", map[string]any{
			"operation":   operation,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})
	})
	if err != nil {
		return errs.NewExternalServiceError(ServiceName, operation, err)
	}
	return nil
}
