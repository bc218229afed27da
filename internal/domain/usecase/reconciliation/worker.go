package reconciliation

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/notify"
)

// DefaultWithdrawalGrace is how long a withdrawal may stay OPEN before the job asks
// the payment gateway about it
const DefaultWithdrawalGrace = 5 * time.Minute

// Config holds reconciliation settings
type Config struct {
	AdminUsername   string
	WithdrawalGrace time.Duration
}

// Worker compares local OPEN records and ACCEPTED challenges with the payment gateway
// and the game provider and applies the differences exactly once. It has no loop of
// its own: reads call the per-user sweeps, and cmd/reconcile calls RunJob.
type Worker struct {
	uow             persistence.UnitOfWork
	payments        external.PaymentGateway
	games           external.GameProvider
	notifier        *notify.Notifier
	timeProvider    core.TimeProvider
	logger          core.Logger
	admin           string
	withdrawalGrace time.Duration
}

// NewWorker creates a new reconciliation worker
func NewWorker(
	uow persistence.UnitOfWork,
	payments external.PaymentGateway,
	games external.GameProvider,
	notifier *notify.Notifier,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *Worker {
	if cfg.WithdrawalGrace <= 0 {
		cfg.WithdrawalGrace = DefaultWithdrawalGrace
	}
	return &Worker{
		uow:             uow,
		payments:        payments,
		games:           games,
		notifier:        notifier,
		timeProvider:    timeProvider,
		logger:          logger,
		admin:           cfg.AdminUsername,
		withdrawalGrace: cfg.WithdrawalGrace,
	}
}

var _ usecase.ReconciliationUseCase = (*Worker)(nil)

// ReconcileUser runs the invoice sweep and then the settlement sweep for username
func (w *Worker) ReconcileUser(ctx context.Context, username string) error {
	if err := w.SweepInvoices(ctx, username); err != nil {
		return err
	}
	return w.SweepSettlements(ctx, username)
}

// skippable reports whether a sweep may log err and move on to the next item.
// Failures of the outside services and already reported gaps qualify; local
// storage errors stop the sweep.
func skippable(err error) bool {
	return errors.Is(err, errs.ErrExternalService) ||
		errors.Is(err, errs.ErrPartialCommitGap) ||
		errs.IsStateConflictError(err)
}

func (w *Worker) logSkipped(message string, err error, fields map[string]any) {
	logFields := errs.LogFieldsOf(err)
	for k, v := range fields {
		logFields[k] = v
	}
	w.logger.Warn(message, logFields)
}
