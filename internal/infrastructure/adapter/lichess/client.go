package lichess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// ServiceName identifies the game service in ExternalServiceError values
const ServiceName = "lichess"

// Config holds the game service settings
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     uint64
	RetryInterval  time.Duration // initial backoff, library default when zero
	Rated          bool
	AuthCacheSize  int
	AuthCacheTTL   time.Duration
}

// httpError is a non-2xx answer from the game service
type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// api is the HTTP plumbing shared by the game and account clients
type api struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

func newAPI(config Config, logger coreport.Logger) *api {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &api{
		config:     config,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		logger:     logger,
	}
}

// do sends one request with an optional bearer token and JSON body, decoding a
// JSON answer into out. 4xx answers are permanent.
func (a *api) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to encode request: %w", err))
		}
		reader = strings.NewReader(string(payload))
	}

	req, err := http.NewRequestWithContext(ctx, method, a.config.BaseURL+path, reader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &httpError{StatusCode: resp.StatusCode, Body: string(raw)}
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return backoff.Permanent(httpErr)
		}
		return httpErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// retry runs op with exponential backoff while it fails with a transient error
func (a *api) retry(ctx context.Context, operation string, op func() error) error {
	exp := backoff.NewExponentialBackOff()
	if a.config.RetryInterval > 0 {
		exp.InitialInterval = a.config.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, a.config.MaxRetries), ctx)

	return backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		a.logger.Warn("Game service request failed, retrying", map[string]any{
			"operation":   operation,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})
	})
}

// unwrapPermanent strips the retry marker from errors produced outside retry
func unwrapPermanent(err error) error {
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}
