// Package ledgertest holds helpers for tests that move money through the ledger
package ledgertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
)

// Fund credits username with a paid invoice, writing the SETTLED record in the
// same unit as the balance change
func Fund(t *testing.T, uow persistence.UnitOfWork, clock coreport.TimeProvider, username string, amount int64) {
	t.Helper()
	ctx := context.Background()

	record := entity.NewInvoiceRecord(username, "test funding", "", "", entity.HoldInvoice{}, clock)
	record.State = entity.StateSettled
	record.Amount = amount

	err := uow.Do(ctx, func(txCtx context.Context) error {
		ledgerRepo := uow.GetLedgerRepository(txCtx)
		if _, err := ledgerRepo.Credit(txCtx, username, amount); err != nil {
			return err
		}
		return ledgerRepo.AppendTransaction(txCtx, record)
	})
	require.NoError(t, err)
}

// AssertBalanced checks that each user's balance equals the sum of their SETTLED records
func AssertBalanced(t *testing.T, uow persistence.UnitOfWork, usernames ...string) {
	t.Helper()
	ctx := context.Background()
	ledgerRepo := uow.GetLedgerRepository(ctx)

	for _, username := range usernames {
		balance, err := ledgerRepo.GetBalance(ctx, username)
		require.NoError(t, err)

		records, err := ledgerRepo.ListTransactions(ctx, persistence.TransactionFilter{Username: username})
		require.NoError(t, err)

		var settled int64
		for _, record := range records {
			if record.CountsTowardBalance() {
				settled += record.Amount
			}
		}
		assert.Equal(t, balance, settled, "ledger of %s does not add up", username)
	}
}
