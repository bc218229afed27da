package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/model"
)

const creditStatement = `INSERT INTO balances (username, amount, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (username) DO UPDATE
SET amount = balances.amount + EXCLUDED.amount, updated_at = EXCLUDED.updated_at
RETURNING amount`

// LedgerRepository implements LedgerRepository interface using GORM
type LedgerRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// handleDatabaseError standardizes database error handling
func (r *LedgerRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, operation)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	if errors.Is(mapped, errs.ErrUserLocked) {
		r.logger.Warn(fmt.Sprintf("Serialization conflict when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// GetBalance returns the stored balance, 0 for users without a row
func (r *LedgerRepository) GetBalance(ctx context.Context, username string) (int64, error) {
	var row model.Balance
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, r.handleDatabaseError("getting balance", err, map[string]any{"username": username})
	}
	return row.Amount, nil
}

// Debit locks the balance row and decreases it
func (r *LedgerRepository) Debit(ctx context.Context, username string, amount int64) (int64, error) {
	if err := entity.ValidateAmount("amount", amount); err != nil {
		return 0, err
	}

	r.logger.Debug("Debiting balance", map[string]any{
		"username": username,
		"amount":   amount,
	})

	db := r.db.WithContext(ctx)

	var row model.Balance
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("username = ?", username).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, errs.NewInsufficientFundsError(username, amount, 0)
	}
	if err != nil {
		return 0, r.handleDatabaseError("locking balance", err, map[string]any{"username": username})
	}

	if row.Amount < amount {
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"username": username,
			"balance":  row.Amount,
			"amount":   amount,
		})
		return 0, errs.NewInsufficientFundsError(username, amount, row.Amount)
	}

	newBalance := row.Amount - amount
	result := db.Model(&model.Balance{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"amount":     newBalance,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("debiting balance", result.Error, map[string]any{"username": username})
	}

	return newBalance, nil
}

// Credit increases the balance, creating the row on first credit
func (r *LedgerRepository) Credit(ctx context.Context, username string, amount int64) (int64, error) {
	if err := entity.ValidateAmount("amount", amount); err != nil {
		return 0, err
	}

	r.logger.Debug("Crediting balance", map[string]any{
		"username": username,
		"amount":   amount,
	})

	now := r.timeProvider.Now()
	var newBalance int64
	err := r.db.WithContext(ctx).Raw(creditStatement, username, amount, now, now).Scan(&newBalance).Error
	if err != nil {
		return 0, r.handleDatabaseError("crediting balance", err, map[string]any{"username": username})
	}
	return newBalance, nil
}

// AppendTransaction inserts a ledger record
func (r *LedgerRepository) AppendTransaction(ctx context.Context, record *entity.TransactionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: nil transaction record", errs.ErrInvalidRequest)
	}
	if !record.Type.IsValid() || !record.State.IsValid() {
		return fmt.Errorf("%w: type %q state %q", errs.ErrConstraintViolation, record.Type, record.State)
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.timeProvider.Now()
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}

	row := model.TransactionFromEntity(record)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("appending transaction", err, map[string]any{
			"username": record.Username,
			"type":     string(record.Type),
		})
	}

	record.ID = row.ID
	return nil
}

// TransitionTransaction updates a record only while it is still in expected
func (r *LedgerRepository) TransitionTransaction(
	ctx context.Context,
	id int64,
	expected, next entity.TransactionState,
	amount int64,
) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, fmt.Errorf("%w: %s -> %s", errs.ErrInvalidState, expected, next)
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND state = ?", id, string(expected)).
		Updates(map[string]any{
			"state":      string(next),
			"amount":     amount,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("transitioning transaction", result.Error, map[string]any{
			"transaction_id": id,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Transaction already moved by another caller", map[string]any{
			"transaction_id": id,
			"expected":       string(expected),
		})
	}
	return result.RowsAffected > 0, nil
}

// GetTransaction returns a record by ID
func (r *LedgerRepository) GetTransaction(ctx context.Context, id int64) (*entity.TransactionRecord, error) {
	var row model.Transaction
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.errorMapper.MapEntityNotFoundError(err, EntityTypeTransaction)
	}
	return row.ToEntity(), nil
}

// ListTransactions returns records matching filter, newest first
func (r *LedgerRepository) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.TransactionRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.State != "" {
		query = query.Where("state = ?", string(filter.State))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.Transaction
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, map[string]any{
			"username": filter.Username,
		})
	}

	records := make([]*entity.TransactionRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToEntity())
	}
	return records, nil
}

// FindChallengeTransaction returns the record of txType linked to challengeID, or nil
func (r *LedgerRepository) FindChallengeTransaction(
	ctx context.Context,
	username string,
	challengeID int64,
	txType entity.TransactionType,
) (*entity.TransactionRecord, error) {
	var row model.Transaction
	err := r.db.WithContext(ctx).
		Where("username = ? AND challenge_id = ? AND type = ?", username, challengeID, string(txType)).
		Order("id").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.handleDatabaseError("finding challenge transaction", err, map[string]any{
			"username":     username,
			"challenge_id": challengeID,
		})
	}
	return row.ToEntity(), nil
}

// SumOpenWithdrawals returns the magnitude reserved by OPEN withdrawals
func (r *LedgerRepository) SumOpenWithdrawals(ctx context.Context, username string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(-amount), 0)").
		Where("username = ? AND type = ? AND state = ?", username, string(entity.TypeWithdrawal), string(entity.StateOpen)).
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing open withdrawals", err, map[string]any{"username": username})
	}
	return total, nil
}
