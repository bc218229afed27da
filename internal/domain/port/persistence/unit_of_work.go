package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction, committing when fn returns nil and rolling
	// back otherwise. Serialization failures are retried, so fn must not have
	// side effects outside the repositories.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// GetLedgerRepository returns a ledger repository bound to the current transaction
	GetLedgerRepository(ctx context.Context) LedgerRepository

	// GetChallengeRepository returns a challenge repository bound to the current transaction
	GetChallengeRepository(ctx context.Context) ChallengeRepository
}
