package lnd

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

type addHoldInvoiceRequest struct {
	Hash   string `json:"hash"`
	Value  string `json:"value"`
	Memo   string `json:"memo"`
	Expiry string `json:"expiry"`
}

type addHoldInvoiceResponse struct {
	PaymentRequest string `json:"payment_request"`
	AddIndex       string `json:"add_index"`
	PaymentAddr    string `json:"payment_addr"`
}

type lookupInvoiceResponse struct {
	State      string `json:"state"`
	AmtPaidSat string `json:"amt_paid_sat"`
}

type settleInvoiceRequest struct {
	Preimage string `json:"preimage"`
}

// CreateHoldInvoice adds a hold invoice locked to paymentHash
func (c *Client) CreateHoldInvoice(ctx context.Context, amount int64, memo string, paymentHash []byte) (entity.HoldInvoice, error) {
	req := addHoldInvoiceRequest{
		Hash:   base64.StdEncoding.EncodeToString(paymentHash),
		Value:  strconv.FormatInt(amount, 10),
		Memo:   memo,
		Expiry: strconv.FormatInt(c.config.InvoiceExpiry, 10),
	}

	var resp addHoldInvoiceResponse
	if err := c.call(ctx, "add_hold_invoice", http.MethodPost, "/v2/invoices/hodl", req, &resp); err != nil {
		return entity.HoldInvoice{}, err
	}
	if resp.PaymentRequest == "" || resp.PaymentAddr == "" {
		return entity.HoldInvoice{}, errs.NewExternalServiceError(ServiceName, "add_hold_invoice",
			errors.New("response is missing payment_request or payment_addr"))
	}

	c.logger.Debug("Hold invoice created", map[string]any{
		"amount":    amount,
		"add_index": resp.AddIndex,
	})
	return entity.HoldInvoice{PaymentRequest: resp.PaymentRequest, PaymentAddr: resp.PaymentAddr}, nil
}

// LookupInvoice reports the state of the invoice identified by its base64 payment address
func (c *Client) LookupInvoice(ctx context.Context, paymentAddr string) (entity.InvoiceStatus, error) {
	addr, err := base64.StdEncoding.DecodeString(paymentAddr)
	if err != nil {
		return entity.InvoiceStatus{}, fmt.Errorf("%w: payment address is not base64: %v", errs.ErrInvalidRequest, err)
	}
	path := "/v2/invoices/lookup?payment_addr=" + url.QueryEscape(base64.URLEncoding.EncodeToString(addr))

	var resp lookupInvoiceResponse
	if err := c.call(ctx, "lookup_invoice", http.MethodGet, path, nil, &resp); err != nil {
		return entity.InvoiceStatus{}, err
	}

	state := entity.InvoiceState(resp.State)
	switch state {
	case entity.InvoiceOpen, entity.InvoiceAccepted, entity.InvoiceSettled, entity.InvoiceCanceled:
	default:
		return entity.InvoiceStatus{}, errs.NewExternalServiceError(ServiceName, "lookup_invoice",
			fmt.Errorf("unknown invoice state %q", resp.State))
	}

	paid, err := parseSats(resp.AmtPaidSat)
	if err != nil {
		return entity.InvoiceStatus{}, errs.NewExternalServiceError(ServiceName, "lookup_invoice", err)
	}
	return entity.InvoiceStatus{State: state, AmountPaid: paid}, nil
}

// SettleInvoice releases an accepted hold invoice. Settling an invoice that is
// already settled succeeds.
func (c *Client) SettleInvoice(ctx context.Context, preimage []byte) error {
	req := settleInvoiceRequest{Preimage: base64.StdEncoding.EncodeToString(preimage)}

	err := c.call(ctx, "settle_invoice", http.MethodPost, "/v2/invoices/settle", req, nil)
	if err != nil && isAlreadySettled(err) {
		c.logger.Info("Hold invoice was already settled", nil)
		return nil
	}
	return err
}

func isAlreadySettled(err error) bool {
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return strings.Contains(strings.ToLower(statusErr.message()), "already settled")
}

func parseSats(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	sats, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid satoshi amount %q: %w", value, err)
	}
	if sats < 0 {
		return 0, fmt.Errorf("negative satoshi amount %d", sats)
	}
	return sats, nil
}
