package reconciliation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger"
)

// ReconcileTransaction resolves one of username's records if it is still OPEN.
// Records owned by someone else are reported as not found.
func (w *Worker) ReconcileTransaction(ctx context.Context, username string, transactionID int64) error {
	record, err := w.uow.GetLedgerRepository(ctx).GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if record.Username != username {
		return errs.ErrTransactionNotFound
	}
	if record.State != entity.StateOpen {
		return nil
	}

	switch record.Type {
	case entity.TypeInvoice:
		_, err = w.reconcileInvoice(ctx, record)
	case entity.TypeWithdrawal:
		_, err = w.reconcileWithdrawal(ctx, record)
	}
	if err != nil && skippable(err) {
		w.logSkipped("Transaction left open", err, map[string]any{"transaction_id": record.ID})
		return nil
	}
	return err
}

// RunJob is the explicit reconciliation pass: every OPEN invoice, every ACCEPTED
// challenge, OPEN withdrawals older than the grace period, and accept debits whose
// challenge never left WAITING_FOR_ACCEPTANCE.
func (w *Worker) RunJob(ctx context.Context) (*entity.ReconciliationReport, error) {
	report := &entity.ReconciliationReport{StartedAt: w.timeProvider.Now()}

	steps := []struct {
		name string
		run  func(context.Context, *entity.ReconciliationReport) error
	}{
		{"invoices", func(ctx context.Context, r *entity.ReconciliationReport) error {
			_, _, err := w.sweepInvoices(ctx, "", r)
			return err
		}},
		{"settlements", func(ctx context.Context, r *entity.ReconciliationReport) error {
			_, err := w.sweepSettlements(ctx, "", r)
			return err
		}},
		{"withdrawals", w.sweepWithdrawals},
		{"stranded accepts", w.findStrandedAccepts},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := step.run(ctx, report); err != nil {
			report.FinishedAt = w.timeProvider.Now()
			return report, fmt.Errorf("reconciliation step %s failed: %w", step.name, err)
		}
	}

	report.FinishedAt = w.timeProvider.Now()
	if report.Clean() {
		w.logger.Info("Reconciliation job finished", report.LogFields())
	} else {
		w.logger.Warn("Reconciliation job finished with findings", report.LogFields())
	}
	return report, nil
}

func (w *Worker) sweepWithdrawals(ctx context.Context, report *entity.ReconciliationReport) error {
	withdrawals, err := w.uow.GetLedgerRepository(ctx).ListTransactions(ctx, persistence.TransactionFilter{
		Type:  entity.TypeWithdrawal,
		State: entity.StateOpen,
	})
	if err != nil {
		return fmt.Errorf("failed to list open withdrawals: %w", err)
	}

	for _, withdrawal := range withdrawals {
		if w.timeProvider.Since(withdrawal.CreatedAt).Std() < w.withdrawalGrace {
			continue
		}
		report.WithdrawalsChecked++

		result, err := w.reconcileWithdrawal(ctx, withdrawal)
		if err != nil {
			if !skippable(err) {
				return err
			}
			w.logSkipped("Withdrawal left open", err, map[string]any{"transaction_id": withdrawal.ID})
			report.AddError(err)
			continue
		}
		switch result {
		case outcomeSettled:
			report.WithdrawalsSettled++
		case outcomeFailed:
			report.WithdrawalsFailed++
		}
	}
	return nil
}

// reconcileWithdrawal asks the gateway how an earlier outbound payment ended.
// In-flight and unknown payments stay OPEN and keep their amount reserved.
func (w *Worker) reconcileWithdrawal(ctx context.Context, withdrawal *entity.TransactionRecord) (outcome, error) {
	if withdrawal.PaymentHash == "" {
		return outcomeUnchanged, nil
	}

	status, err := w.payments.LookupPayment(ctx, withdrawal.PaymentHash)
	if err != nil {
		return outcomeUnchanged, err
	}

	switch status {
	case entity.PaymentSucceeded:
		changed, err := ledger.SettleWithdrawal(ctx, w.uow, withdrawal)
		if err != nil {
			gap := errs.NewPartialCommitGapError("withdrawal", withdrawal.Username, withdrawal.Magnitude(),
				withdrawal.Reference(), err)
			gap.TransactionID = withdrawal.ID
			w.notifier.Gap(ctx, gap)
			return outcomeUnchanged, gap
		}
		if !changed {
			return outcomeUnchanged, nil
		}
		w.logger.Info("Withdrawal settled by reconciliation", map[string]any{
			"transaction_id": withdrawal.ID,
			"username":       withdrawal.Username,
			"amount":         withdrawal.Magnitude(),
		})
		w.notifier.Publish(ctx, core.EventWithdrawalSettled, map[string]any{
			"transaction_id": withdrawal.ID,
			"username":       withdrawal.Username,
			"amount":         withdrawal.Magnitude(),
		})
		return outcomeSettled, nil

	case entity.PaymentFailed:
		changed, err := ledger.FailTransaction(ctx, w.uow, withdrawal)
		if err != nil || !changed {
			return outcomeUnchanged, err
		}
		w.logger.Info("Withdrawal failed", map[string]any{
			"transaction_id": withdrawal.ID,
			"username":       withdrawal.Username,
		})
		return outcomeFailed, nil

	default:
		return outcomeUnchanged, nil
	}
}

func (w *Worker) findStrandedAccepts(ctx context.Context, report *entity.ReconciliationReport) error {
	waiting, err := w.uow.GetChallengeRepository(ctx).ListByStatus(ctx, entity.ChallengeWaitingForAcceptance, "")
	if err != nil {
		return fmt.Errorf("failed to list waiting challenges: %w", err)
	}

	ledgerRepo := w.uow.GetLedgerRepository(ctx)
	for _, challenge := range waiting {
		debit, err := ledgerRepo.FindChallengeTransaction(ctx, challenge.OpponentUsername, challenge.ID, entity.TypeAcceptChallenge)
		if err != nil {
			return err
		}
		if debit == nil {
			continue
		}

		report.StrandedAcceptDebits = append(report.StrandedAcceptDebits, challenge.ID)
		gap := errs.NewPartialCommitGapError("accept_challenge", challenge.OpponentUsername, challenge.Stake,
			fmt.Sprintf("challenge:%d", challenge.ID), errs.ErrInvalidState)
		gap.ChallengeID = challenge.ID
		gap.TransactionID = debit.ID
		w.notifier.Gap(ctx, gap)
	}
	return nil
}
