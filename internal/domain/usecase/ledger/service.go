package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/sequencer"
)

// DefaultListLimit caps transaction listings
const DefaultListLimit = 100

// Config holds ledger settings
type Config struct {
	// MemoTemplate is formatted with the username to build the invoice memo
	MemoTemplate string
	ListLimit    int
}

// DefaultMemoTemplate is the invoice memo shown in the payer's wallet
const DefaultMemoTemplate = "funding account %s on lightningchess.io"

// Service exposes balances, funding invoices and transaction history
type Service struct {
	uow          persistence.UnitOfWork
	payments     external.PaymentGateway
	secrets      core.SecretGenerator
	reconciler   usecase.ReconciliationUseCase
	sequencer    *sequencer.Sequencer
	timeProvider core.TimeProvider
	logger       core.Logger
	memoTemplate string
	listLimit    int
}

// NewService creates a new ledger service
func NewService(
	uow persistence.UnitOfWork,
	payments external.PaymentGateway,
	secrets core.SecretGenerator,
	reconciler usecase.ReconciliationUseCase,
	seq *sequencer.Sequencer,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *Service {
	if cfg.MemoTemplate == "" {
		cfg.MemoTemplate = DefaultMemoTemplate
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = DefaultListLimit
	}
	return &Service{
		uow:          uow,
		payments:     payments,
		secrets:      secrets,
		reconciler:   reconciler,
		sequencer:    seq,
		timeProvider: timeProvider,
		logger:       logger,
		memoTemplate: cfg.MemoTemplate,
		listLimit:    cfg.ListLimit,
	}
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// GetBalance reconciles the principal and returns the resulting balance. State only
// becomes current when someone asks for it, so this is where invoices get credited
// and finished games get paid out.
func (s *Service) GetBalance(ctx context.Context, principal entity.Principal) (entity.Balance, error) {
	if principal.Username == "" {
		return entity.Balance{}, errs.ErrUnauthenticated
	}

	var balance entity.Balance
	err := s.sequencer.Run(ctx, principal.Username, func(ctx context.Context) error {
		if err := s.reconciler.ReconcileUser(ctx, principal.Username); err != nil {
			return err
		}

		ledgerRepo := s.uow.GetLedgerRepository(ctx)
		amount, err := ledgerRepo.GetBalance(ctx, principal.Username)
		if err != nil {
			return err
		}
		pending, err := ledgerRepo.SumOpenWithdrawals(ctx, principal.Username)
		if err != nil {
			return err
		}

		balance = entity.Balance{
			Username:           principal.Username,
			Amount:             amount,
			PendingWithdrawals: pending,
			UpdatedAt:          s.timeProvider.Now(),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to get balance", map[string]any{
			"username": principal.Username,
			"error":    err.Error(),
		})
		return entity.Balance{}, err
	}

	s.logger.Debug("User balance retrieved", map[string]any{
		"username": balance.Username,
		"balance":  balance.Amount,
	})
	return balance, nil
}

// CreateInvoice opens a hold invoice for amount and records it OPEN. The preimage is
// generated here and kept in the record so the invoice can be settled once paid.
func (s *Service) CreateInvoice(ctx context.Context, principal entity.Principal, amount int64) (*entity.TransactionRecord, error) {
	if principal.Username == "" {
		return nil, errs.ErrUnauthenticated
	}
	if err := entity.ValidateAmount("sats", amount); err != nil {
		return nil, err
	}

	preimage, err := s.secrets.Preimage()
	if err != nil {
		return nil, fmt.Errorf("failed to generate preimage: %w", err)
	}
	hash := sha256.Sum256(preimage)
	memo := fmt.Sprintf(s.memoTemplate, principal.Username)

	invoice, err := s.payments.CreateHoldInvoice(ctx, amount, memo, hash[:])
	if err != nil {
		s.logger.Error("Failed to create invoice", mergeFields(errs.LogFieldsOf(err), map[string]any{
			"username": principal.Username,
			"amount":   amount,
		}))
		return nil, err
	}

	record := entity.NewInvoiceRecord(
		principal.Username,
		memo,
		base64.StdEncoding.EncodeToString(preimage),
		hex.EncodeToString(hash[:]),
		invoice,
		s.timeProvider,
	)
	if err := s.uow.GetLedgerRepository(ctx).AppendTransaction(ctx, record); err != nil {
		// Unrecorded hold invoices are never settled, so the payer's funds return on expiry
		s.logger.Error("Failed to record invoice", map[string]any{
			"username":     principal.Username,
			"amount":       amount,
			"payment_hash": record.PaymentHash,
			"error":        err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Invoice created", map[string]any{
		"transaction_id": record.ID,
		"username":       principal.Username,
		"amount":         amount,
	})
	return record, nil
}

// ListTransactions returns the principal's most recent records
func (s *Service) ListTransactions(ctx context.Context, principal entity.Principal) ([]*entity.TransactionRecord, error) {
	if principal.Username == "" {
		return nil, errs.ErrUnauthenticated
	}
	return s.uow.GetLedgerRepository(ctx).ListTransactions(ctx, persistence.TransactionFilter{
		Username: principal.Username,
		Limit:    s.listLimit,
	})
}

// GetTransaction resolves the record against the gateway if it is OPEN and returns it
func (s *Service) GetTransaction(ctx context.Context, principal entity.Principal, id int64) (*entity.TransactionRecord, error) {
	if principal.Username == "" {
		return nil, errs.ErrUnauthenticated
	}
	if id <= 0 {
		return nil, errs.NewValidationError("transaction_id", "must be positive")
	}

	var record *entity.TransactionRecord
	err := s.sequencer.Run(ctx, principal.Username, func(ctx context.Context) error {
		if err := s.reconciler.ReconcileTransaction(ctx, principal.Username, id); err != nil {
			return err
		}
		var err error
		record, err = s.uow.GetLedgerRepository(ctx).GetTransaction(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if record.Username != principal.Username {
		return nil, errs.ErrTransactionNotFound
	}
	return record, nil
}

func mergeFields(base map[string]any, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
