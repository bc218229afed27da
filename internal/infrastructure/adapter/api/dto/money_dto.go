package dto

import (
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// InvoiceRequest is the body of POST /api/invoice
type InvoiceRequest struct {
	Sats int64 `json:"sats" binding:"required"`
}

// SendPaymentRequest is the body of POST /api/send-payment
type SendPaymentRequest struct {
	PaymentRequest string `json:"payment_request" binding:"required"`
}

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	Username           string `json:"username"`
	Balance            int64  `json:"balance"`
	PendingWithdrawals int64  `json:"pending_withdrawals"`
	Available          int64  `json:"available"`
}

// NewBalanceResponse builds the balance response
func NewBalanceResponse(b entity.Balance) BalanceResponse {
	return BalanceResponse{
		Username:           b.Username,
		Balance:            b.Amount,
		PendingWithdrawals: b.PendingWithdrawals,
		Available:          b.Available(),
	}
}

// TransactionResponse is the public view of a ledger record. The preimage is never included.
type TransactionResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Type           string    `json:"ttype"`
	Detail         string    `json:"detail"`
	Amount         int64     `json:"amount"`
	State          string    `json:"state"`
	PaymentAddr    string    `json:"payment_addr,omitempty"`
	PaymentRequest string    `json:"payment_request,omitempty"`
	PaymentHash    string    `json:"payment_hash,omitempty"`
	ChallengeID    *int64    `json:"challenge_id,omitempty"`
	CreatedAt      time.Time `json:"created_on"`
}

// NewTransactionResponse builds the response for one record
func NewTransactionResponse(t *entity.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		Username:       t.Username,
		Type:           string(t.Type),
		Detail:         t.Detail,
		Amount:         t.Amount,
		State:          string(t.State),
		PaymentAddr:    t.PaymentAddr,
		PaymentRequest: t.PaymentRequest,
		PaymentHash:    t.PaymentHash,
		ChallengeID:    t.ChallengeID,
		CreatedAt:      t.CreatedAt,
	}
}

// NewTransactionListResponse builds the response for a list of records
func NewTransactionListResponse(records []*entity.TransactionRecord) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(records))
	for _, t := range records {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

// ProfileResponse is the body of GET /api/profile
type ProfileResponse struct {
	Username string `json:"username"`
}
