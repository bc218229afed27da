package usecase

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// ReconciliationUseCase brings local ledger and challenge state in line with the
// payment gateway and the game provider. All operations are idempotent.
type ReconciliationUseCase interface {
	// SweepInvoices resolves the user's OPEN invoices
	SweepInvoices(ctx context.Context, username string) error

	// SweepSettlements settles the user's ACCEPTED challenges whose game has finished
	SweepSettlements(ctx context.Context, username string) error

	// ReconcileUser runs both sweeps for one user
	ReconcileUser(ctx context.Context, username string) error

	// ReconcileTransaction resolves a single record if it is still OPEN
	ReconcileTransaction(ctx context.Context, username string, transactionID int64) error

	// SettleChallenge settles one ACCEPTED challenge if its game has finished
	SettleChallenge(ctx context.Context, challenge *entity.Challenge) error

	// RunJob sweeps every user and resolves stale withdrawals
	RunJob(ctx context.Context) (*entity.ReconciliationReport, error)
}
