package escrow

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
)

// IdempotencyHandler finds stakes that were already debited for a challenge, so a
// retried accept does not take the opponent's stake twice
type IdempotencyHandler struct{}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler() *IdempotencyHandler {
	return &IdempotencyHandler{}
}

// CheckStake returns the existing stake debit of txType for username on challengeID
// and whether one was found
func (h *IdempotencyHandler) CheckStake(
	ctx context.Context,
	ledgerRepo persistence.LedgerRepository,
	username string,
	challengeID int64,
	txType entity.TransactionType,
) (*entity.TransactionRecord, bool, error) {
	record, err := ledgerRepo.FindChallengeTransaction(ctx, username, challengeID, txType)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s debit: %w", txType, err)
	}
	if record == nil {
		return nil, false, nil
	}
	return record, true, nil
}
