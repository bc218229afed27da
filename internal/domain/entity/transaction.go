package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// TransactionType classifies a ledger record
type TransactionType string

// Transaction types
const (
	TypeInvoice         TransactionType = "invoice"
	TypeWithdrawal      TransactionType = "withdrawal"
	TypeCreateChallenge TransactionType = "create_challenge"
	TypeAcceptChallenge TransactionType = "accept_challenge"
	TypeFee             TransactionType = "fee"
	TypeWinnings        TransactionType = "winnings"
	TypeDrawRefund      TransactionType = "draw_refund"
)

// IsValid reports whether t is a known type
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeInvoice, TypeWithdrawal, TypeCreateChallenge, TypeAcceptChallenge,
		TypeFee, TypeWinnings, TypeDrawRefund:
		return true
	}
	return false
}

// IsDebit reports whether records of this type carry a negative amount
func (t TransactionType) IsDebit() bool {
	return t == TypeWithdrawal || t == TypeCreateChallenge || t == TypeAcceptChallenge
}

// TransactionState is the settlement state of a record
type TransactionState string

// Transaction states. Only OPEN -> SETTLED and OPEN -> FAILED are allowed.
const (
	StateOpen    TransactionState = "OPEN"
	StateSettled TransactionState = "SETTLED"
	StateFailed  TransactionState = "FAILED"
)

// IsValid reports whether s is a known state
func (s TransactionState) IsValid() bool {
	return s == StateOpen || s == StateSettled || s == StateFailed
}

// CanTransitionTo reports whether next may follow s
func (s TransactionState) CanTransitionTo(next TransactionState) bool {
	return s == StateOpen && (next == StateSettled || next == StateFailed)
}

// TransactionRecord is one row of the append-only ledger log
type TransactionRecord struct {
	ID             int64
	Username       string
	Type           TransactionType
	Detail         string
	Amount         int64 // signed: credits positive, debits negative
	State          TransactionState
	Preimage       string // base64, never leaves the service
	PaymentAddr    string // base64
	PaymentRequest string
	PaymentHash    string // hex
	ChallengeID    *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLedgerEntry builds the SETTLED record that accompanies a balance change.
// magnitude is the absolute amount; the sign is derived from the type.
func NewLedgerEntry(
	username string,
	txType TransactionType,
	magnitude int64,
	detail string,
	challengeID *int64,
	timeProvider coreport.TimeProvider,
) (*TransactionRecord, error) {
	if !txType.IsValid() || txType == TypeInvoice || txType == TypeWithdrawal {
		return nil, fmt.Errorf("%w: %q is not a direct ledger entry type", errs.ErrInvalidRequest, txType)
	}
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidateAmount("amount", magnitude); err != nil {
		return nil, err
	}

	amount := magnitude
	if txType.IsDebit() {
		amount = -magnitude
	}

	now := timeProvider.Now()
	return &TransactionRecord{
		Username:    username,
		Type:        txType,
		Detail:      detail,
		Amount:      amount,
		State:       StateSettled,
		ChallengeID: challengeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewInvoiceRecord builds the OPEN funding record for a freshly created hold invoice.
// The amount stays zero until the invoice is paid.
func NewInvoiceRecord(
	username, memo, preimage, paymentHash string,
	invoice HoldInvoice,
	timeProvider coreport.TimeProvider,
) *TransactionRecord {
	now := timeProvider.Now()
	return &TransactionRecord{
		Username:       username,
		Type:           TypeInvoice,
		Detail:         memo,
		Amount:         0,
		State:          StateOpen,
		Preimage:       preimage,
		PaymentAddr:    invoice.PaymentAddr,
		PaymentRequest: invoice.PaymentRequest,
		PaymentHash:    paymentHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewWithdrawalRecord builds the OPEN intent record written before paying out
func NewWithdrawalRecord(
	username, paymentRequest string,
	decoded DecodedPayment,
	timeProvider coreport.TimeProvider,
) *TransactionRecord {
	now := timeProvider.Now()
	return &TransactionRecord{
		Username:       username,
		Type:           TypeWithdrawal,
		Detail:         decoded.Description,
		Amount:         -decoded.Amount,
		State:          StateOpen,
		PaymentRequest: paymentRequest,
		PaymentHash:    decoded.PaymentHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Magnitude returns the absolute amount
func (t *TransactionRecord) Magnitude() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// CountsTowardBalance reports whether the record is part of the balance sum
func (t *TransactionRecord) CountsTowardBalance() bool {
	return t.State == StateSettled
}

// Reference returns the best external reference for logging gaps
func (t *TransactionRecord) Reference() string {
	switch {
	case t.PaymentHash != "":
		return "payment_hash:" + t.PaymentHash
	case t.PaymentAddr != "":
		return "payment_addr:" + t.PaymentAddr
	case t.ChallengeID != nil:
		return fmt.Sprintf("challenge:%d", *t.ChallengeID)
	default:
		return fmt.Sprintf("transaction:%d", t.ID)
	}
}
