package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
)

type contextKey string

const txKey contextKey = "tx"

// ErrNoTransaction is returned by Commit and Rollback outside a unit
var ErrNoTransaction = errors.New("no transaction found in context")

// ErrNestedTransaction is returned by Begin when the context already carries a unit
var ErrNestedTransaction = errors.New("transaction already active in context")

type balanceRow struct {
	amount    int64
	updatedAt time.Time
}

type state struct {
	balances        map[string]balanceRow
	transactions    []entity.TransactionRecord
	challenges      []entity.Challenge
	nextTransaction int64
	nextChallenge   int64
}

func newState() *state {
	return &state{
		balances:        make(map[string]balanceRow),
		nextTransaction: 1,
		nextChallenge:   1,
	}
}

func (s *state) clone() *state {
	c := &state{
		balances:        make(map[string]balanceRow, len(s.balances)),
		transactions:    make([]entity.TransactionRecord, len(s.transactions)),
		challenges:      make([]entity.Challenge, len(s.challenges)),
		nextTransaction: s.nextTransaction,
		nextChallenge:   s.nextChallenge,
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	copy(c.transactions, s.transactions)
	copy(c.challenges, s.challenges)
	return c
}

type unit struct {
	snapshot *state
	done     bool
}

// Store is a process-local implementation of the persistence ports. A unit of
// work holds the store lock from Begin until Commit or Rollback, so units are
// fully serialized. Rollback restores the snapshot taken at Begin.
type Store struct {
	mu           sync.Mutex
	data         *state
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewStore creates an empty store
func NewStore(logger coreport.Logger, timeProvider coreport.TimeProvider) *Store {
	return &Store{
		data:         newState(),
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin implements persistence.UnitOfWork
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey).(*unit); ok {
		return ctx, ErrNestedTransaction
	}
	s.mu.Lock()
	return context.WithValue(ctx, txKey, &unit{snapshot: s.data.clone()}), nil
}

// Commit implements persistence.UnitOfWork
func (s *Store) Commit(ctx context.Context) error {
	u, ok := ctx.Value(txKey).(*unit)
	if !ok {
		return ErrNoTransaction
	}
	if u.done {
		return errors.New("transaction has already been committed or rolled back")
	}
	u.done = true
	u.snapshot = nil
	s.mu.Unlock()
	return nil
}

// Rollback implements persistence.UnitOfWork. Rolling back a finished unit is a no-op.
func (s *Store) Rollback(ctx context.Context) error {
	u, ok := ctx.Value(txKey).(*unit)
	if !ok {
		return ErrNoTransaction
	}
	if u.done {
		return nil
	}
	u.done = true
	s.data = u.snapshot
	u.snapshot = nil
	s.mu.Unlock()
	s.logger.Debug("Rolled back in-memory unit", nil)
	return nil
}

// Do implements persistence.UnitOfWork. A context that already carries a unit
// joins it instead of starting a new one.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if u, ok := ctx.Value(txKey).(*unit); ok && !u.done {
		return fn(ctx)
	}

	txCtx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = s.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		_ = s.Rollback(txCtx)
		return err
	}
	return s.Commit(txCtx)
}

// GetLedgerRepository implements persistence.UnitOfWork
func (s *Store) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return &ledgerRepository{store: s}
}

// GetChallengeRepository implements persistence.UnitOfWork
func (s *Store) GetChallengeRepository(ctx context.Context) persistence.ChallengeRepository {
	return &challengeRepository{store: s}
}

// with runs fn against the live state, taking the store lock unless ctx
// already holds it through an open unit
func (s *Store) with(ctx context.Context, fn func(data *state) error) error {
	if u, ok := ctx.Value(txKey).(*unit); ok && !u.done {
		return fn(s.data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}
