package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/sequencer"
)

// ErrPaymentFailed is the cause recorded when the gateway reports a final failure
var ErrPaymentFailed = errors.New("payment failed")

// Service is the withdrawal coordinator
type Service struct {
	uow          persistence.UnitOfWork
	payments     external.PaymentGateway
	sequencer    *sequencer.Sequencer
	notifier     *notify.Notifier
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewService creates a new withdrawal service
func NewService(
	uow persistence.UnitOfWork,
	payments external.PaymentGateway,
	seq *sequencer.Sequencer,
	notifier *notify.Notifier,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Service {
	return &Service{
		uow:          uow,
		payments:     payments,
		sequencer:    seq,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.WithdrawalUseCase = (*Service)(nil)

// SendPayment pays paymentRequest out of the principal's balance.
//
// The OPEN withdrawal record is committed before the gateway is called and reserves
// the amount until it is resolved. On success the record is settled and the balance
// debited in one unit. When the outcome is unknown the record stays OPEN and the
// reconciliation job resolves it later.
func (s *Service) SendPayment(ctx context.Context, principal entity.Principal, paymentRequest string) (*entity.TransactionRecord, error) {
	if principal.Username == "" {
		return nil, errs.ErrUnauthenticated
	}
	paymentRequest = strings.TrimSpace(paymentRequest)
	if paymentRequest == "" {
		return nil, errs.NewValidationError("payment_request", "must not be empty")
	}

	var record *entity.TransactionRecord
	err := s.sequencer.Run(ctx, principal.Username, func(ctx context.Context) error {
		var err error
		record, err = s.sendPayment(ctx, principal.Username, paymentRequest)
		return err
	})
	if err != nil {
		if !errors.Is(err, errs.ErrPartialCommitGap) {
			s.logger.Warn("Withdrawal rejected", mergeFields(errs.LogFieldsOf(err), map[string]any{
				"username": principal.Username,
			}))
		}
		return record, err
	}
	return record, nil
}

func (s *Service) sendPayment(ctx context.Context, username, paymentRequest string) (*entity.TransactionRecord, error) {
	// Step 1: decode
	decoded, err := s.payments.DecodePaymentRequest(ctx, paymentRequest)
	if err != nil {
		return nil, err
	}
	if decoded.Amount < 0 {
		return nil, fmt.Errorf("%w: payment request has a negative amount", errs.ErrInvalidRequest)
	}
	if decoded.Amount == 0 {
		return nil, errs.NewValidationError("payment_request", "amountless invoices are not supported")
	}
	if err := entity.ValidateAmount("payment_request", decoded.Amount); err != nil {
		return nil, err
	}

	// Step 2 and 3: check funds and write the intent record
	record := entity.NewWithdrawalRecord(username, paymentRequest, decoded, s.timeProvider)
	err = s.uow.Do(ctx, func(txCtx context.Context) error {
		ledgerRepo := s.uow.GetLedgerRepository(txCtx)

		balance, err := ledgerRepo.GetBalance(txCtx, username)
		if err != nil {
			return err
		}
		pending, err := ledgerRepo.SumOpenWithdrawals(txCtx, username)
		if err != nil {
			return err
		}
		available := entity.Balance{Amount: balance, PendingWithdrawals: pending}.Available()
		if available <= decoded.Amount {
			return errs.NewInsufficientFundsError(username, decoded.Amount, available)
		}

		return ledgerRepo.AppendTransaction(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	// Step 4: pay
	status, err := s.payments.SendPayment(ctx, paymentRequest)
	if err != nil {
		return record, s.gap(ctx, record, err)
	}

	// Step 5: settle or release
	switch status {
	case entity.PaymentSucceeded:
		if _, err := ledger.SettleWithdrawal(ctx, s.uow, record); err != nil {
			return record, s.gap(ctx, record, err)
		}
		s.logger.Info("Withdrawal settled", map[string]any{
			"transaction_id": record.ID,
			"username":       username,
			"amount":         decoded.Amount,
		})
		s.notifier.Publish(ctx, core.EventWithdrawalSettled, map[string]any{
			"transaction_id": record.ID,
			"username":       username,
			"amount":         decoded.Amount,
		})
		return record, nil

	case entity.PaymentFailed:
		if _, err := ledger.FailTransaction(ctx, s.uow, record); err != nil {
			return record, err
		}
		return record, errs.NewExternalServiceError("payment_gateway", "send_payment", ErrPaymentFailed)

	default:
		s.logger.Warn("Withdrawal still in flight", map[string]any{
			"transaction_id": record.ID,
			"username":       username,
			"status":         string(status),
		})
		return record, nil
	}
}

func (s *Service) gap(ctx context.Context, record *entity.TransactionRecord, cause error) error {
	gap := errs.NewPartialCommitGapError("withdrawal", record.Username, record.Magnitude(), record.Reference(),
		fmt.Errorf("withdrawal left open: %w", cause))
	gap.TransactionID = record.ID
	s.notifier.Gap(ctx, gap)
	return gap
}

func mergeFields(base map[string]any, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
