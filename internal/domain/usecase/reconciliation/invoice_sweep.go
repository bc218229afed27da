package reconciliation

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger"
)

type outcome int

const (
	outcomeUnchanged outcome = iota
	outcomeSettled
	outcomeFailed
)

// SweepInvoices resolves every OPEN invoice of username; an empty username sweeps all users
func (w *Worker) SweepInvoices(ctx context.Context, username string) error {
	_, _, err := w.sweepInvoices(ctx, username, nil)
	return err
}

func (w *Worker) sweepInvoices(ctx context.Context, username string, report *entity.ReconciliationReport) (int, int, error) {
	invoices, err := w.uow.GetLedgerRepository(ctx).ListTransactions(ctx, persistence.TransactionFilter{
		Username: username,
		Type:     entity.TypeInvoice,
		State:    entity.StateOpen,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list open invoices: %w", err)
	}

	var settled, failed int
	for _, invoice := range invoices {
		result, err := w.reconcileInvoice(ctx, invoice)
		if err != nil {
			if !skippable(err) {
				return settled, failed, err
			}
			w.logSkipped("Invoice left open", err, map[string]any{
				"transaction_id": invoice.ID,
				"username":       invoice.Username,
			})
			if report != nil {
				report.AddError(err)
			}
			continue
		}
		switch result {
		case outcomeSettled:
			settled++
		case outcomeFailed:
			failed++
		}
	}
	if report != nil {
		report.InvoicesChecked += len(invoices)
		report.InvoicesSettled += settled
		report.InvoicesFailed += failed
	}
	return settled, failed, nil
}

// reconcileInvoice asks the gateway about one OPEN invoice. A hold invoice the payer
// has locked (ACCEPTED) is settled with the stored preimage first. The OPEN -> SETTLED
// guard inside the ledger unit makes repeated or concurrent calls credit at most once.
func (w *Worker) reconcileInvoice(ctx context.Context, invoice *entity.TransactionRecord) (outcome, error) {
	status, err := w.payments.LookupInvoice(ctx, invoice.PaymentAddr)
	if err != nil {
		return outcomeUnchanged, err
	}

	switch status.State {
	case entity.InvoiceOpen:
		return outcomeUnchanged, nil

	case entity.InvoiceAccepted:
		preimage, err := base64.StdEncoding.DecodeString(invoice.Preimage)
		if err != nil {
			w.logger.Error("Invoice has a corrupt preimage", map[string]any{
				"transaction_id": invoice.ID,
				"username":       invoice.Username,
				"error":          err.Error(),
			})
			return outcomeUnchanged, nil
		}
		if err := w.payments.SettleInvoice(ctx, preimage); err != nil {
			return outcomeUnchanged, err
		}
		return w.settleInvoice(ctx, invoice, status.AmountPaid)

	case entity.InvoiceSettled:
		return w.settleInvoice(ctx, invoice, status.AmountPaid)

	case entity.InvoiceCanceled:
		changed, err := ledger.FailTransaction(ctx, w.uow, invoice)
		if err != nil || !changed {
			return outcomeUnchanged, err
		}
		w.logger.Info("Invoice canceled", map[string]any{
			"transaction_id": invoice.ID,
			"username":       invoice.Username,
		})
		return outcomeFailed, nil

	default:
		return outcomeUnchanged, errs.NewExternalServiceError("payment_gateway", "lookup_invoice",
			fmt.Errorf("unknown invoice state %q", status.State))
	}
}

func (w *Worker) settleInvoice(ctx context.Context, invoice *entity.TransactionRecord, amountPaid int64) (outcome, error) {
	changed, err := ledger.SettleInvoice(ctx, w.uow, invoice, amountPaid)
	if err != nil || !changed {
		return outcomeUnchanged, err
	}

	w.logger.Info("Invoice settled", map[string]any{
		"transaction_id": invoice.ID,
		"username":       invoice.Username,
		"amount":         amountPaid,
	})
	w.notifier.Publish(ctx, core.EventInvoiceSettled, map[string]any{
		"transaction_id": invoice.ID,
		"username":       invoice.Username,
		"amount":         amountPaid,
	})
	return outcomeSettled, nil
}
