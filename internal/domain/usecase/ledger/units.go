package ledger

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
)

// The functions below are the guarded ledger units shared by the coordinators and
// the reconciliation worker. Each one is a single atomic unit and reports whether it
// changed anything; false means another caller already resolved the record.

// SettleInvoice moves an OPEN invoice to SETTLED with the paid amount and credits it
func SettleInvoice(ctx context.Context, uow persistence.UnitOfWork, record *entity.TransactionRecord, amountPaid int64) (bool, error) {
	var changed bool
	err := uow.Do(ctx, func(txCtx context.Context) error {
		changed = false
		ledgerRepo := uow.GetLedgerRepository(txCtx)

		ok, err := ledgerRepo.TransitionTransaction(txCtx, record.ID, entity.StateOpen, entity.StateSettled, amountPaid)
		if err != nil || !ok {
			return err
		}
		if amountPaid > 0 {
			if _, err := ledgerRepo.Credit(txCtx, record.Username, amountPaid); err != nil {
				return err
			}
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if changed {
		record.State = entity.StateSettled
		record.Amount = amountPaid
	}
	return changed, nil
}

// SettleWithdrawal moves an OPEN withdrawal to SETTLED and debits its amount
func SettleWithdrawal(ctx context.Context, uow persistence.UnitOfWork, record *entity.TransactionRecord) (bool, error) {
	var changed bool
	err := uow.Do(ctx, func(txCtx context.Context) error {
		changed = false
		ledgerRepo := uow.GetLedgerRepository(txCtx)

		ok, err := ledgerRepo.TransitionTransaction(txCtx, record.ID, entity.StateOpen, entity.StateSettled, record.Amount)
		if err != nil || !ok {
			return err
		}
		if _, err := ledgerRepo.Debit(txCtx, record.Username, record.Magnitude()); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if changed {
		record.State = entity.StateSettled
	}
	return changed, nil
}

// FailTransaction moves an OPEN record to FAILED; the balance is untouched
func FailTransaction(ctx context.Context, uow persistence.UnitOfWork, record *entity.TransactionRecord) (bool, error) {
	changed, err := uow.GetLedgerRepository(ctx).TransitionTransaction(ctx, record.ID, entity.StateOpen, entity.StateFailed, record.Amount)
	if err != nil {
		return false, err
	}
	if changed {
		record.State = entity.StateFailed
	}
	return changed, nil
}
