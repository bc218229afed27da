package usecase

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// LedgerUseCase exposes balances, funding invoices and the transaction history
type LedgerUseCase interface {
	// GetBalance reconciles the principal's open invoices and accepted challenges, then
	// returns the balance
	GetBalance(ctx context.Context, principal entity.Principal) (entity.Balance, error)

	// CreateInvoice opens a hold invoice funding the principal's account
	CreateInvoice(ctx context.Context, principal entity.Principal, amount int64) (*entity.TransactionRecord, error)

	// ListTransactions returns the principal's ledger records, newest first
	ListTransactions(ctx context.Context, principal entity.Principal) ([]*entity.TransactionRecord, error)

	// GetTransaction reconciles and returns one of the principal's records
	GetTransaction(ctx context.Context, principal entity.Principal, id int64) (*entity.TransactionRecord, error)
}

// WithdrawalUseCase pays funds out of the ledger
type WithdrawalUseCase interface {
	// SendPayment pays paymentRequest from the principal's balance and returns the
	// withdrawal record
	SendPayment(ctx context.Context, principal entity.Principal, paymentRequest string) (*entity.TransactionRecord, error)
}
