package persistence

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// TransactionFilter narrows ledger listings. Zero values mean "any".
type TransactionFilter struct {
	Username string
	Type     entity.TransactionType
	State    entity.TransactionState
	Limit    int
}

// LedgerRepository is the per-user balance plus the append-only transaction log.
// Every mutating method must run inside a unit of work when it is combined with
// another mutation.
type LedgerRepository interface {
	// GetBalance returns the current balance, 0 when the user has no row yet
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	GetBalance(ctx context.Context, username string) (int64, error)

	// Debit decreases the balance and returns the new value. The balance row is
	// locked for the rest of the unit.
	//
	// Possible errors:
	// - InsufficientFundsError: If the balance would become negative
	// - ErrInvalidAmount: If amount is not positive
	Debit(ctx context.Context, username string, amount int64) (int64, error)

	// Credit increases the balance, creating the row when absent, and returns the new value
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount is not positive
	// - ErrAmountOverflow: If the balance would overflow
	Credit(ctx context.Context, username string, amount int64) (int64, error)

	// AppendTransaction inserts record and fills in its ID
	AppendTransaction(ctx context.Context, record *entity.TransactionRecord) error

	// TransitionTransaction moves a record from expected to next and sets its amount,
	// conditioned on the stored state still being expected. It reports whether the row
	// was changed; false means another caller already moved it.
	TransitionTransaction(ctx context.Context, id int64, expected, next entity.TransactionState, amount int64) (bool, error)

	// GetTransaction returns a record by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no record has this ID
	GetTransaction(ctx context.Context, id int64) (*entity.TransactionRecord, error)

	// ListTransactions returns records matching filter, newest first
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionRecord, error)

	// FindChallengeTransaction returns the record of txType linked to challengeID for
	// username, or nil when there is none
	FindChallengeTransaction(ctx context.Context, username string, challengeID int64, txType entity.TransactionType) (*entity.TransactionRecord, error)

	// SumOpenWithdrawals returns the magnitude reserved by the user's OPEN withdrawals
	SumOpenWithdrawals(ctx context.Context, username string) (int64, error)
}
