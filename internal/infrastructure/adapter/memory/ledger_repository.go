package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
)

type ledgerRepository struct {
	store *Store
}

func (r *ledgerRepository) GetBalance(ctx context.Context, username string) (int64, error) {
	var balance int64
	err := r.store.with(ctx, func(data *state) error {
		balance = data.balances[username].amount
		return nil
	})
	return balance, err
}

func (r *ledgerRepository) Debit(ctx context.Context, username string, amount int64) (int64, error) {
	if err := entity.ValidateAmount("amount", amount); err != nil {
		return 0, err
	}

	var balance int64
	err := r.store.with(ctx, func(data *state) error {
		current := data.balances[username].amount
		if current < amount {
			return errs.NewInsufficientFundsError(username, amount, current)
		}
		balance = current - amount
		data.balances[username] = balanceRow{amount: balance, updatedAt: r.store.timeProvider.Now()}
		return nil
	})
	return balance, err
}

func (r *ledgerRepository) Credit(ctx context.Context, username string, amount int64) (int64, error) {
	if err := entity.ValidateAmount("amount", amount); err != nil {
		return 0, err
	}

	var balance int64
	err := r.store.with(ctx, func(data *state) error {
		next, err := entity.SafeAdd(data.balances[username].amount, amount)
		if err != nil {
			return err
		}
		balance = next
		data.balances[username] = balanceRow{amount: balance, updatedAt: r.store.timeProvider.Now()}
		return nil
	})
	return balance, err
}

func (r *ledgerRepository) AppendTransaction(ctx context.Context, record *entity.TransactionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: nil transaction record", errs.ErrInvalidRequest)
	}
	if !record.Type.IsValid() || !record.State.IsValid() {
		return fmt.Errorf("%w: type %q state %q", errs.ErrConstraintViolation, record.Type, record.State)
	}

	return r.store.with(ctx, func(data *state) error {
		if record.PaymentHash != "" {
			for i := range data.transactions {
				existing := &data.transactions[i]
				if existing.Type == record.Type && existing.PaymentHash == record.PaymentHash &&
					existing.State != entity.StateFailed {
					return errs.ErrDuplicateTransaction
				}
			}
		}

		record.ID = data.nextTransaction
		data.nextTransaction++
		if record.CreatedAt.IsZero() {
			record.CreatedAt = r.store.timeProvider.Now()
		}
		if record.UpdatedAt.IsZero() {
			record.UpdatedAt = record.CreatedAt
		}
		data.transactions = append(data.transactions, *record)
		return nil
	})
}

func (r *ledgerRepository) TransitionTransaction(
	ctx context.Context,
	id int64,
	expected, next entity.TransactionState,
	amount int64,
) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, fmt.Errorf("%w: %s -> %s", errs.ErrInvalidState, expected, next)
	}

	changed := false
	err := r.store.with(ctx, func(data *state) error {
		for i := range data.transactions {
			row := &data.transactions[i]
			if row.ID != id {
				continue
			}
			if row.State != expected {
				return nil
			}
			row.State = next
			row.Amount = amount
			row.UpdatedAt = r.store.timeProvider.Now()
			changed = true
			return nil
		}
		return nil
	})
	return changed, err
}

func (r *ledgerRepository) GetTransaction(ctx context.Context, id int64) (*entity.TransactionRecord, error) {
	var found *entity.TransactionRecord
	err := r.store.with(ctx, func(data *state) error {
		for i := range data.transactions {
			if data.transactions[i].ID == id {
				row := data.transactions[i]
				found = &row
				return nil
			}
		}
		return errs.ErrTransactionNotFound
	})
	return found, err
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.TransactionRecord, error) {
	var result []*entity.TransactionRecord
	err := r.store.with(ctx, func(data *state) error {
		for i := range data.transactions {
			row := data.transactions[i]
			if filter.Username != "" && row.Username != filter.Username {
				continue
			}
			if filter.Type != "" && row.Type != filter.Type {
				continue
			}
			if filter.State != "" && row.State != filter.State {
				continue
			}
			result = append(result, &row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *ledgerRepository) FindChallengeTransaction(
	ctx context.Context,
	username string,
	challengeID int64,
	txType entity.TransactionType,
) (*entity.TransactionRecord, error) {
	var found *entity.TransactionRecord
	err := r.store.with(ctx, func(data *state) error {
		for i := range data.transactions {
			row := data.transactions[i]
			if row.Username == username && row.Type == txType &&
				row.ChallengeID != nil && *row.ChallengeID == challengeID {
				found = &row
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *ledgerRepository) SumOpenWithdrawals(ctx context.Context, username string) (int64, error) {
	var total int64
	err := r.store.with(ctx, func(data *state) error {
		for i := range data.transactions {
			row := &data.transactions[i]
			if row.Username == username && row.Type == entity.TypeWithdrawal && row.State == entity.StateOpen {
				total += row.Magnitude()
			}
		}
		return nil
	})
	return total, err
}
