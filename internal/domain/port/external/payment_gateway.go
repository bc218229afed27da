package external

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// PaymentGateway is the Lightning node that moves funds in and out of the ledger.
// Failures are returned as ExternalServiceError.
type PaymentGateway interface {
	// CreateHoldInvoice creates an invoice locked to paymentHash (sha256 of the preimage)
	CreateHoldInvoice(ctx context.Context, amount int64, memo string, paymentHash []byte) (entity.HoldInvoice, error)

	// LookupInvoice reports the state and paid amount of an invoice
	LookupInvoice(ctx context.Context, paymentAddr string) (entity.InvoiceStatus, error)

	// SettleInvoice releases an ACCEPTED hold invoice
	SettleInvoice(ctx context.Context, preimage []byte) error

	// DecodePaymentRequest parses an outbound payment request
	DecodePaymentRequest(ctx context.Context, paymentRequest string) (entity.DecodedPayment, error)

	// SendPayment pays paymentRequest and returns the final status seen on the stream
	SendPayment(ctx context.Context, paymentRequest string) (entity.PaymentStatus, error)

	// LookupPayment reports the status of an earlier outbound payment by its hash
	LookupPayment(ctx context.Context, paymentHash string) (entity.PaymentStatus, error)
}
