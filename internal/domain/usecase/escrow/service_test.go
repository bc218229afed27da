package escrow

import (
	"context"
	"errors"
	"sync"
	"testing"
	stdtime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger/ledgertest"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/sequencer"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/time"
	mockexternal "github.com/amirhossein-jamali/chess-escrow/mocks/port/external"
)

var (
	alice = entity.Principal{Username: "alice", AccessToken: "token-alice"}
	bob   = entity.Principal{Username: "bob", AccessToken: "token-bob"}
	carol = entity.Principal{Username: "carol", AccessToken: "token-carol"}
)

type fixture struct {
	ctx      context.Context
	clock    *timeadapter.ManualTimeProvider
	store    *memory.Store
	games    *mockexternal.MockGameProvider
	payments *mockexternal.MockPaymentGateway
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := timeadapter.NewManualTimeProvider(stdtime.Date(2024, 5, 1, 9, 0, 0, 0, stdtime.UTC))
	log := logger.NewNoopLogger()
	store := memory.NewStore(log, clock)
	games := mockexternal.NewMockGameProvider(t)
	payments := mockexternal.NewMockPaymentGateway(t)
	notifier := notify.NewNotifier(nil, log)

	worker := reconciliation.NewWorker(store, payments, games, notifier, clock, log, reconciliation.Config{
		AdminUsername: "admin",
	})
	seq := sequencer.NewSequencer(log, 0)
	t.Cleanup(seq.Shutdown)

	return &fixture{
		ctx:      context.Background(),
		clock:    clock,
		store:    store,
		games:    games,
		payments: payments,
		service:  NewService(store, games, worker, seq, notifier, clock, log, Config{}),
	}
}

func (f *fixture) fund(t *testing.T, username string, amount int64) {
	t.Helper()
	ledgertest.Fund(t, f.store, f.clock, username, amount)
}

func (f *fixture) balance(t *testing.T, username string) int64 {
	t.Helper()
	balance, err := f.store.GetLedgerRepository(f.ctx).GetBalance(f.ctx, username)
	require.NoError(t, err)
	return balance
}

func (f *fixture) records(t *testing.T, username string, txType entity.TransactionType) []*entity.TransactionRecord {
	t.Helper()
	records, err := f.store.GetLedgerRepository(f.ctx).ListTransactions(f.ctx, persistence.TransactionFilter{
		Username: username,
		Type:     txType,
	})
	require.NoError(t, err)
	return records
}

// createAccepted funds both players, creates a white challenge from alice to bob and
// has bob accept it against game "g1"
func (f *fixture) createAccepted(t *testing.T, stake int64) *entity.Challenge {
	t.Helper()
	f.fund(t, "alice", stake)
	f.fund(t, "bob", stake)

	challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
		Opponent: "bob",
		Stake:    stake,
		Color:    "white",
	})
	require.NoError(t, err)

	f.games.EXPECT().CreateGame(mock.Anything, bob, mock.Anything).
		Return(entity.GameHandle{ID: "g1", URL: "https://lichess.org/g1"}, nil).Once()

	accepted, err := f.service.AcceptChallenge(f.ctx, bob, challenge.ID)
	require.NoError(t, err)
	return accepted
}

func TestCreateChallenge(t *testing.T) {
	t.Run("Debits the stake and stores the challenge", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 1000)

		challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "Bob",
			Stake:    300,
			Color:    "black",
		})
		require.NoError(t, err)

		assert.NotZero(t, challenge.ID)
		assert.Equal(t, "bob", challenge.OpponentUsername)
		assert.Equal(t, entity.ChallengeWaitingForAcceptance, challenge.Status)
		assert.Equal(t, int64(700), f.balance(t, "alice"))

		stakes := f.records(t, "alice", entity.TypeCreateChallenge)
		require.Len(t, stakes, 1)
		assert.Equal(t, int64(-300), stakes[0].Amount)
		assert.Equal(t, entity.StateSettled, stakes[0].State)
		require.NotNil(t, stakes[0].ChallengeID)
		assert.Equal(t, challenge.ID, *stakes[0].ChallengeID)
		ledgertest.AssertBalanced(t, f.store, "alice")
	})

	t.Run("Insufficient funds leaves nothing behind", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 100)

		_, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    300,
			Color:    "white",
		})
		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, int64(100), f.balance(t, "alice"))

		challenges, err := f.store.GetChallengeRepository(f.ctx).ListByUser(f.ctx, "alice", 10)
		require.NoError(t, err)
		assert.Empty(t, challenges)
		assert.Empty(t, f.records(t, "alice", entity.TypeCreateChallenge))
		ledgertest.AssertBalanced(t, f.store, "alice")
	})

	t.Run("Open withdrawals are set aside", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 500)
		pending := entity.NewWithdrawalRecord("alice", "lnbc1", entity.DecodedPayment{Amount: 300, PaymentHash: "aa"},
			timeadapter.NewRealTimeProvider())
		require.NoError(t, f.store.GetLedgerRepository(f.ctx).AppendTransaction(f.ctx, pending))

		_, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    300,
			Color:    "white",
		})

		var insufficient *errs.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(200), insufficient.Available)
	})

	t.Run("Invalid input is rejected before any state change", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 1000)

		cases := []entity.ChallengeParams{
			{Opponent: "alice", Stake: 10, Color: "white"},
			{Opponent: "bob", Stake: 0, Color: "white"},
			{Opponent: "bob", Stake: 10, Color: "green"},
			{Opponent: "b", Stake: 10, Color: "white"},
		}
		for _, params := range cases {
			_, err := f.service.CreateChallenge(f.ctx, alice, params)
			assert.True(t, errs.IsValidationError(err), "params %+v", params)
		}
		assert.Equal(t, int64(1000), f.balance(t, "alice"))
	})

	t.Run("Requires an authenticated principal", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateChallenge(f.ctx, entity.Principal{Username: "alice"}, entity.ChallengeParams{})
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAcceptChallenge(t *testing.T) {
	t.Run("Debits the opponent and records the game", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 1000)
		f.fund(t, "bob", 500)

		challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    400,
			Color:    "white",
		})
		require.NoError(t, err)

		f.games.EXPECT().CreateGame(mock.Anything, bob, entity.GameRequest{
			ChallengedUsername: "alice",
			ClockLimit:         entity.DefaultTimeLimit,
			Increment:          entity.DefaultIncrement,
			Color:              entity.ColorBlack,
		}).Return(entity.GameHandle{ID: "abcd1234"}, nil).Once()

		accepted, err := f.service.AcceptChallenge(f.ctx, bob, challenge.ID)
		require.NoError(t, err)

		assert.Equal(t, entity.ChallengeAccepted, accepted.Status)
		assert.Equal(t, "abcd1234", accepted.ExternalGameID)
		assert.Equal(t, int64(100), f.balance(t, "bob"))

		stored, err := f.store.GetChallengeRepository(f.ctx).GetByID(f.ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengeAccepted, stored.Status)
		assert.Equal(t, "abcd1234", stored.ExternalGameID)
		ledgertest.AssertBalanced(t, f.store, "alice", "bob")
	})

	t.Run("Only the named opponent may accept", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 100)
		f.fund(t, "carol", 100)

		challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    100,
			Color:    "white",
		})
		require.NoError(t, err)

		_, err = f.service.AcceptChallenge(f.ctx, carol, challenge.ID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = f.service.AcceptChallenge(f.ctx, alice, challenge.ID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, int64(100), f.balance(t, "carol"))
	})

	t.Run("Opponent without funds is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 100)
		f.fund(t, "bob", 99)

		challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    100,
			Color:    "white",
		})
		require.NoError(t, err)

		_, err = f.service.AcceptChallenge(f.ctx, bob, challenge.ID)
		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, int64(99), f.balance(t, "bob"))
	})

	t.Run("Unknown challenge", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.AcceptChallenge(f.ctx, bob, 77)
		assert.ErrorIs(t, err, errs.ErrChallengeNotFound)

		_, err = f.service.AcceptChallenge(f.ctx, bob, 0)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Accepting twice fails without a second debit", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.createAccepted(t, 200)
		f.fund(t, "bob", 200)

		_, err := f.service.AcceptChallenge(f.ctx, bob, challenge.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, int64(200), f.balance(t, "bob"))
	})

	t.Run("Game service failure leaves a gap that a retry closes", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 300)
		f.fund(t, "bob", 300)

		challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    300,
			Color:    "black",
		})
		require.NoError(t, err)

		lichessDown := errs.NewExternalServiceError("lichess", "create_game", errors.New("503"))
		f.games.EXPECT().CreateGame(mock.Anything, bob, mock.Anything).
			Return(entity.GameHandle{}, lichessDown).Once()

		_, err = f.service.AcceptChallenge(f.ctx, bob, challenge.ID)
		var gap *errs.PartialCommitGapError
		require.ErrorAs(t, err, &gap)
		assert.Equal(t, challenge.ID, gap.ChallengeID)
		assert.Equal(t, int64(300), gap.Amount)
		assert.Equal(t, int64(0), f.balance(t, "bob"))

		stored, err := f.store.GetChallengeRepository(f.ctx).GetByID(f.ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengeWaitingForAcceptance, stored.Status)

		f.games.EXPECT().CreateGame(mock.Anything, bob, mock.Anything).
			Return(entity.GameHandle{ID: "retry1"}, nil).Once()

		accepted, err := f.service.AcceptChallenge(f.ctx, bob, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, "retry1", accepted.ExternalGameID)
		assert.Equal(t, int64(0), f.balance(t, "bob"))
		assert.Len(t, f.records(t, "bob", entity.TypeAcceptChallenge), 1)
		ledgertest.AssertBalanced(t, f.store, "alice", "bob")
	})

	t.Run("Concurrent accepts debit once", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t, "alice", 100)
		f.fund(t, "bob", 1000)

		challenge, err := f.service.CreateChallenge(f.ctx, alice, entity.ChallengeParams{
			Opponent: "bob",
			Stake:    100,
			Color:    "white",
		})
		require.NoError(t, err)

		f.games.EXPECT().CreateGame(mock.Anything, bob, mock.Anything).
			Return(entity.GameHandle{ID: "g1"}, nil).Once()

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.service.AcceptChallenge(f.ctx, bob, challenge.ID); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int64(900), f.balance(t, "bob"))
		ledgertest.AssertBalanced(t, f.store, "alice", "bob")
	})
}

func TestGetChallenge(t *testing.T) {
	t.Run("Settles a decisive game once", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.createAccepted(t, 1000)

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").Return(entity.GameResult{
			Status:    entity.GameFinished,
			Winner:    entity.ColorWhite,
			RawStatus: "mate",
		}, nil).Once()

		settled, err := f.service.GetChallenge(f.ctx, bob, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengeCompleted, settled.Status)

		assert.Equal(t, int64(1980), f.balance(t, "alice"))
		assert.Equal(t, int64(0), f.balance(t, "bob"))
		assert.Equal(t, int64(20), f.balance(t, "admin"))

		again, err := f.service.GetChallenge(f.ctx, alice, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengeCompleted, again.Status)
		assert.Equal(t, int64(1980), f.balance(t, "alice"))
		assert.Len(t, f.records(t, "alice", entity.TypeWinnings), 1)
		assert.Len(t, f.records(t, "admin", entity.TypeFee), 1)
		ledgertest.AssertBalanced(t, f.store, "alice", "bob", "admin")
	})

	t.Run("Game in progress stays accepted", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.createAccepted(t, 500)

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").
			Return(entity.GameResult{Status: entity.GameStarted}, nil).Once()

		got, err := f.service.GetChallenge(f.ctx, alice, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengeAccepted, got.Status)
		assert.Equal(t, int64(0), f.balance(t, "alice"))
	})

	t.Run("Game service failure is not fatal", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.createAccepted(t, 500)

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").
			Return(entity.GameResult{}, errs.NewExternalServiceError("lichess", "export_game", errors.New("timeout"))).Once()

		got, err := f.service.GetChallenge(f.ctx, alice, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChallengeAccepted, got.Status)
	})

	t.Run("Outsiders cannot read a challenge", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.createAccepted(t, 10)

		_, err := f.service.GetChallenge(f.ctx, carol, challenge.ID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestListChallenges(t *testing.T) {
	f := newFixture(t)
	challenge := f.createAccepted(t, 1000)

	f.games.EXPECT().GetGameResult(mock.Anything, "g1").Return(entity.GameResult{
		Status:    entity.GameFinished,
		RawStatus: "draw",
	}, nil).Once()

	challenges, err := f.service.ListChallenges(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, challenge.ID, challenges[0].ID)
	assert.Equal(t, entity.ChallengeCompleted, challenges[0].Status)

	assert.Equal(t, int64(990), f.balance(t, "alice"))
	assert.Equal(t, int64(990), f.balance(t, "bob"))
	assert.Equal(t, int64(20), f.balance(t, "admin"))

	total := f.balance(t, "alice") + f.balance(t, "bob") + f.balance(t, "admin")
	assert.Equal(t, int64(2000), total)
	ledgertest.AssertBalanced(t, f.store, "alice", "bob", "admin")

	challenges, err = f.service.ListChallenges(f.ctx, bob)
	require.NoError(t, err)
	assert.Len(t, challenges, 1)
}
