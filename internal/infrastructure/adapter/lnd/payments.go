package lnd

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

// maxStreamLine bounds one NDJSON message of the router stream
const maxStreamLine = 1 << 20

type decodePayReqResponse struct {
	PaymentHash string `json:"payment_hash"`
	NumSatoshis string `json:"num_satoshis"`
	Description string `json:"description"`
}

type sendPaymentRequest struct {
	PaymentRequest string `json:"payment_request"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	MaxParts       int    `json:"max_parts,omitempty"`
	FeeLimitMsat   string `json:"fee_limit_msat"`
}

type paymentUpdate struct {
	Result *struct {
		PaymentHash   string `json:"payment_hash"`
		Status        string `json:"status"`
		FailureReason string `json:"failure_reason"`
	} `json:"result"`
	Error *apiError `json:"error"`
}

// DecodePaymentRequest decodes a BOLT11 payment request
func (c *Client) DecodePaymentRequest(ctx context.Context, paymentRequest string) (entity.DecodedPayment, error) {
	paymentRequest = strings.TrimSpace(paymentRequest)
	if paymentRequest == "" {
		return entity.DecodedPayment{}, errs.NewValidationError("payment_request", "is required")
	}

	var resp decodePayReqResponse
	path := "/v1/payreq/" + url.PathEscape(paymentRequest)
	if err := c.call(ctx, "decode_payment_request", http.MethodGet, path, nil, &resp); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			return entity.DecodedPayment{}, errs.NewValidationError("payment_request", statusErr.message())
		}
		return entity.DecodedPayment{}, err
	}

	amount, err := parseSats(resp.NumSatoshis)
	if err != nil {
		return entity.DecodedPayment{}, errs.NewExternalServiceError(ServiceName, "decode_payment_request", err)
	}
	return entity.DecodedPayment{
		Amount:      amount,
		PaymentHash: resp.PaymentHash,
		Description: resp.Description,
	}, nil
}

// SendPayment pays paymentRequest through the router and follows the update
// stream until it closes. The last status seen is returned.
func (c *Client) SendPayment(ctx context.Context, paymentRequest string) (entity.PaymentStatus, error) {
	body := sendPaymentRequest{
		PaymentRequest: paymentRequest,
		TimeoutSeconds: c.config.SendTimeout,
		MaxParts:       c.config.MaxParts,
		FeeLimitMsat:   strconv.FormatInt(c.config.FeeLimitMsat, 10),
	}

	status, err := c.stream(ctx, "send_payment", http.MethodPost, "/v2/router/send", body)
	if err != nil {
		return entity.PaymentUnknown, err
	}
	return status, nil
}

// LookupPayment follows the router's tracking stream for a hex payment hash
func (c *Client) LookupPayment(ctx context.Context, paymentHash string) (entity.PaymentStatus, error) {
	hash, err := hex.DecodeString(paymentHash)
	if err != nil {
		return entity.PaymentUnknown, fmt.Errorf("%w: payment hash is not hex: %v", errs.ErrInvalidRequest, err)
	}
	path := "/v2/router/track/" + base64.URLEncoding.EncodeToString(hash) + "?no_inflight_updates=true"

	status, err := c.stream(ctx, "track_payment", http.MethodGet, path, nil)
	if err != nil {
		return entity.PaymentUnknown, err
	}
	return status, nil
}

// stream issues a request whose answer is a sequence of payment updates.
// The send timeout bounds the router, so only the caller's context applies here.
func (c *Client) stream(ctx context.Context, operation, method, path string, body any) (entity.PaymentStatus, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return entity.PaymentUnknown, errs.NewExternalServiceError(ServiceName, operation, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.PaymentUnknown, errs.NewExternalServiceError(ServiceName, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxStreamLine))
		statusErr := &statusError{StatusCode: resp.StatusCode, Body: string(raw)}
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			statusErr.API = &apiErr
		}
		if status, ok := statusFromMessage(statusErr.message()); ok {
			return status, nil
		}
		return entity.PaymentUnknown, errs.NewExternalServiceError(ServiceName, operation, statusErr)
	}

	return c.readUpdates(operation, resp.Body)
}

func (c *Client) readUpdates(operation string, body io.Reader) (entity.PaymentStatus, error) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLine)

	status := entity.PaymentUnknown
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var update paymentUpdate
		if err := json.Unmarshal([]byte(line), &update); err != nil {
			return status, errs.NewExternalServiceError(ServiceName, operation, fmt.Errorf("malformed stream message: %w", err))
		}

		if update.Error != nil {
			if known, ok := statusFromMessage(update.Error.Message); ok {
				return known, nil
			}
			return status, errs.NewExternalServiceError(ServiceName, operation, update.Error)
		}
		if update.Result == nil {
			continue
		}

		status = mapPaymentStatus(update.Result.Status)
		c.logger.Debug("Payment update", map[string]any{
			"operation":      operation,
			"payment_hash":   update.Result.PaymentHash,
			"status":         update.Result.Status,
			"failure_reason": update.Result.FailureReason,
		})
		if status == entity.PaymentSucceeded || status == entity.PaymentFailed {
			return status, nil
		}
	}

	if err := scanner.Err(); err != nil && status == entity.PaymentUnknown {
		return status, errs.NewExternalServiceError(ServiceName, operation, err)
	}
	return status, nil
}

func mapPaymentStatus(status string) entity.PaymentStatus {
	switch status {
	case "SUCCEEDED":
		return entity.PaymentSucceeded
	case "FAILED":
		return entity.PaymentFailed
	case "IN_FLIGHT", "INITIATED":
		return entity.PaymentInFlight
	default:
		return entity.PaymentUnknown
	}
}

// statusFromMessage recognises router errors that describe a payment state
func statusFromMessage(message string) (entity.PaymentStatus, bool) {
	message = strings.ToLower(message)
	switch {
	case strings.Contains(message, "already paid"):
		return entity.PaymentSucceeded, true
	case strings.Contains(message, "in transition"):
		return entity.PaymentInFlight, true
	case strings.Contains(message, "isn't initiated"), strings.Contains(message, "not initiated"):
		return entity.PaymentFailed, true
	}
	return entity.PaymentUnknown, false
}
