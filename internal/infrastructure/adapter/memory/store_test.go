package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	stdtime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/time"
)

func newTestStore() (*Store, *timeadapter.ManualTimeProvider) {
	clock := timeadapter.NewManualTimeProvider(stdtime.Date(2024, 3, 1, 12, 0, 0, 0, stdtime.UTC))
	return NewStore(logger.NewNoopLogger(), clock), clock
}

func int64Ptr(v int64) *int64 { return &v }

func TestLedger_CreditDebit(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	ledger := store.GetLedgerRepository(ctx)

	balance, err := ledger.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	balance, err = ledger.Credit(ctx, "alice", 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), balance)

	balance, err = ledger.Debit(ctx, "alice", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	_, err = ledger.Debit(ctx, "alice", 1001)
	var insufficient *errs.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(1000), insufficient.Available)

	_, err = ledger.Credit(ctx, "alice", 0)
	assert.ErrorIs(t, err, errs.ErrValidation)

	balance, err = ledger.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestUnitOfWork_RollbackRestoresState(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := store.GetLedgerRepository(ctx).Credit(ctx, "alice", 100)
	require.NoError(t, err)

	err = store.Do(ctx, func(ctx context.Context) error {
		ledger := store.GetLedgerRepository(ctx)
		if _, err := ledger.Credit(ctx, "alice", 900); err != nil {
			return err
		}
		entry, err := entity.NewLedgerEntry("alice", entity.TypeWinnings, 900, "test", nil, store.timeProvider)
		if err != nil {
			return err
		}
		if err := ledger.AppendTransaction(ctx, entry); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	ledger := store.GetLedgerRepository(ctx)
	balance, err := ledger.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	records, err := ledger.ListTransactions(ctx, persistence.TransactionFilter{Username: "alice"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnitOfWork_DoJoinsOpenUnit(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	err := store.Do(ctx, func(outer context.Context) error {
		return store.Do(outer, func(inner context.Context) error {
			_, err := store.GetLedgerRepository(inner).Credit(inner, "bob", 10)
			return err
		})
	})
	require.NoError(t, err)

	balance, err := store.GetLedgerRepository(ctx).GetBalance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
}

func TestUnitOfWork_BeginCommitRollback(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Commit(ctx), ErrNoTransaction)
	assert.ErrorIs(t, store.Rollback(ctx), ErrNoTransaction)

	txCtx, err := store.Begin(ctx)
	require.NoError(t, err)

	_, err = store.Begin(txCtx)
	assert.ErrorIs(t, err, ErrNestedTransaction)

	require.NoError(t, store.Commit(txCtx))
	assert.NoError(t, store.Rollback(txCtx))
	assert.Error(t, store.Commit(txCtx))
}

func TestUnitOfWork_SerializesConcurrentDebits(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	_, err := store.GetLedgerRepository(ctx).Credit(ctx, "carol", 1000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Do(ctx, func(ctx context.Context) error {
				_, err := store.GetLedgerRepository(ctx).Debit(ctx, "carol", 100)
				return err
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	balance, err := store.GetLedgerRepository(ctx).GetBalance(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestLedger_TransitionTransaction(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()
	ledger := store.GetLedgerRepository(ctx)

	record := entity.NewInvoiceRecord("alice", "memo", "cHJl", "abcd",
		entity.HoldInvoice{PaymentRequest: "lnbc1", PaymentAddr: "YWRkcg=="}, clock)
	require.NoError(t, ledger.AppendTransaction(ctx, record))
	assert.Equal(t, int64(1), record.ID)

	clock.Advance(stdtime.Minute)
	changed, err := ledger.TransitionTransaction(ctx, record.ID, entity.StateOpen, entity.StateSettled, 2000)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = ledger.TransitionTransaction(ctx, record.ID, entity.StateOpen, entity.StateFailed, 0)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = ledger.TransitionTransaction(ctx, record.ID, entity.StateSettled, entity.StateOpen, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	stored, err := ledger.GetTransaction(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateSettled, stored.State)
	assert.Equal(t, int64(2000), stored.Amount)
	assert.Equal(t, clock.Now(), stored.UpdatedAt)

	_, err = ledger.GetTransaction(ctx, 99)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestLedger_QueriesAndWithdrawalReservation(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()
	ledger := store.GetLedgerRepository(ctx)

	stake, err := entity.NewLedgerEntry("alice", entity.TypeCreateChallenge, 300, "stake", int64Ptr(7), clock)
	require.NoError(t, err)
	require.NoError(t, ledger.AppendTransaction(ctx, stake))

	first := entity.NewWithdrawalRecord("alice", "lnbc-a", entity.DecodedPayment{Amount: 100, PaymentHash: "h1"}, clock)
	second := entity.NewWithdrawalRecord("alice", "lnbc-b", entity.DecodedPayment{Amount: 250, PaymentHash: "h2"}, clock)
	require.NoError(t, ledger.AppendTransaction(ctx, first))
	require.NoError(t, ledger.AppendTransaction(ctx, second))

	duplicate := entity.NewWithdrawalRecord("alice", "lnbc-a", entity.DecodedPayment{Amount: 100, PaymentHash: "h1"}, clock)
	assert.ErrorIs(t, ledger.AppendTransaction(ctx, duplicate), errs.ErrDuplicateTransaction)

	reserved, err := ledger.SumOpenWithdrawals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(350), reserved)

	_, err = ledger.TransitionTransaction(ctx, first.ID, entity.StateOpen, entity.StateFailed, first.Amount)
	require.NoError(t, err)
	reserved, err = ledger.SumOpenWithdrawals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(250), reserved)

	retry := entity.NewWithdrawalRecord("alice", "lnbc-a", entity.DecodedPayment{Amount: 100, PaymentHash: "h1"}, clock)
	assert.NoError(t, ledger.AppendTransaction(ctx, retry))

	found, err := ledger.FindChallengeTransaction(ctx, "alice", 7, entity.TypeCreateChallenge)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, stake.ID, found.ID)

	missing, err := ledger.FindChallengeTransaction(ctx, "alice", 7, entity.TypeAcceptChallenge)
	require.NoError(t, err)
	assert.Nil(t, missing)

	withdrawals, err := ledger.ListTransactions(ctx, persistence.TransactionFilter{
		Username: "alice",
		Type:     entity.TypeWithdrawal,
		Limit:    2,
	})
	require.NoError(t, err)
	require.Len(t, withdrawals, 2)
	assert.Equal(t, retry.ID, withdrawals[0].ID)
	assert.Equal(t, second.ID, withdrawals[1].ID)
}

func TestChallenges_Lifecycle(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()
	repo := store.GetChallengeRepository(ctx)

	first, err := entity.NewChallenge("alice", entity.ChallengeParams{Opponent: "bob", Stake: 1000, Color: "white"}, clock)
	require.NoError(t, err)
	second, err := entity.NewChallenge("carol", entity.ChallengeParams{Opponent: "alice", Stake: 50, Color: "black"}, clock)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	mine, err := repo.ListByUser(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)

	limited, err := repo.ListByUser(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	gameID := "abcd1234"
	err = repo.UpdateStatus(ctx, first.ID, entity.ChallengeWaitingForAcceptance, entity.ChallengeAccepted,
		entity.ChallengeUpdate{ExternalGameID: &gameID})
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, first.ID, entity.ChallengeWaitingForAcceptance, entity.ChallengeAccepted,
		entity.ChallengeUpdate{})
	assert.True(t, errs.IsStateConflictError(err))

	err = repo.UpdateStatus(ctx, 42, entity.ChallengeAccepted, entity.ChallengeCompleted, entity.ChallengeUpdate{})
	assert.ErrorIs(t, err, errs.ErrChallengeNotFound)

	stored, err := repo.GetByIDForUpdate(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChallengeAccepted, stored.Status)
	assert.Equal(t, gameID, stored.ExternalGameID)

	accepted, err := repo.ListByStatus(ctx, entity.ChallengeAccepted, "")
	require.NoError(t, err)
	require.Len(t, accepted, 1)

	waiting, err := repo.ListByStatus(ctx, entity.ChallengeWaitingForAcceptance, "bob")
	require.NoError(t, err)
	assert.Empty(t, waiting)

	_, err = repo.GetByID(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrChallengeNotFound)
}
