package reconciliation

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
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
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/time"
	mockexternal "github.com/amirhossein-jamali/chess-escrow/mocks/port/external"
)

var testPreimage = bytes.Repeat([]byte{0x2a}, 32)

type fixture struct {
	ctx      context.Context
	clock    *timeadapter.ManualTimeProvider
	store    *memory.Store
	payments *mockexternal.MockPaymentGateway
	games    *mockexternal.MockGameProvider
	worker   *Worker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := timeadapter.NewManualTimeProvider(stdtime.Date(2024, 5, 1, 9, 0, 0, 0, stdtime.UTC))
	log := logger.NewNoopLogger()
	store := memory.NewStore(log, clock)
	payments := mockexternal.NewMockPaymentGateway(t)
	games := mockexternal.NewMockGameProvider(t)

	return &fixture{
		ctx:      context.Background(),
		clock:    clock,
		store:    store,
		payments: payments,
		games:    games,
		worker: NewWorker(store, payments, games, notify.NewNotifier(nil, log), clock, log, Config{
			AdminUsername: "admin",
		}),
	}
}

func (f *fixture) ledger() persistence.LedgerRepository {
	return f.store.GetLedgerRepository(f.ctx)
}

func (f *fixture) balance(t *testing.T, username string) int64 {
	t.Helper()
	balance, err := f.ledger().GetBalance(f.ctx, username)
	require.NoError(t, err)
	return balance
}

func (f *fixture) invoice(t *testing.T, username, addr string) *entity.TransactionRecord {
	t.Helper()
	record := entity.NewInvoiceRecord(username, "memo", base64.StdEncoding.EncodeToString(testPreimage), "",
		entity.HoldInvoice{PaymentRequest: "lnbc" + addr, PaymentAddr: addr}, f.clock)
	require.NoError(t, f.ledger().AppendTransaction(f.ctx, record))
	return record
}

func (f *fixture) state(t *testing.T, id int64) entity.TransactionState {
	t.Helper()
	record, err := f.ledger().GetTransaction(f.ctx, id)
	require.NoError(t, err)
	return record.State
}

// accepted stores an ACCEPTED challenge with both stakes already escrowed
func (f *fixture) accepted(t *testing.T, stake int64, gameID string) *entity.Challenge {
	t.Helper()
	challenge, err := entity.NewChallenge("alice", entity.ChallengeParams{
		Opponent: "bob",
		Stake:    stake,
		Color:    "white",
	}, f.clock)
	require.NoError(t, err)

	repo := f.store.GetChallengeRepository(f.ctx)
	require.NoError(t, repo.Create(f.ctx, challenge))
	f.escrow(t, "alice", entity.TypeCreateChallenge, stake, challenge.ID)
	f.escrow(t, "bob", entity.TypeAcceptChallenge, stake, challenge.ID)
	require.NoError(t, repo.UpdateStatus(f.ctx, challenge.ID, entity.ChallengeWaitingForAcceptance,
		entity.ChallengeAccepted, entity.ChallengeUpdate{ExternalGameID: &gameID}))

	stored, err := repo.GetByID(f.ctx, challenge.ID)
	require.NoError(t, err)
	return stored
}

// escrow funds username with stake and moves it into the challenge
func (f *fixture) escrow(t *testing.T, username string, txType entity.TransactionType, stake, challengeID int64) {
	t.Helper()
	ledgertest.Fund(t, f.store, f.clock, username, stake)

	entry, err := entity.NewLedgerEntry(username, txType, stake, "stake", &challengeID, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.store.Do(f.ctx, func(txCtx context.Context) error {
		ledgerRepo := f.store.GetLedgerRepository(txCtx)
		if _, err := ledgerRepo.Debit(txCtx, username, stake); err != nil {
			return err
		}
		return ledgerRepo.AppendTransaction(txCtx, entry)
	}))
}

func TestSweepInvoices(t *testing.T) {
	t.Run("Accepted hold invoice is settled and credited", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "alice", "addr1")

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{State: entity.InvoiceAccepted, AmountPaid: 5000}, nil).Once()
		f.payments.EXPECT().SettleInvoice(mock.Anything, testPreimage).Return(nil).Once()

		require.NoError(t, f.worker.SweepInvoices(f.ctx, "alice"))
		assert.Equal(t, entity.StateSettled, f.state(t, record.ID))
		assert.Equal(t, int64(5000), f.balance(t, "alice"))

		// settled records are no longer swept
		require.NoError(t, f.worker.SweepInvoices(f.ctx, "alice"))
		assert.Equal(t, int64(5000), f.balance(t, "alice"))
		ledgertest.AssertBalanced(t, f.store, "alice")
	})

	t.Run("Settled elsewhere is only credited", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "alice", "addr1")

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{State: entity.InvoiceSettled, AmountPaid: 800}, nil).Once()

		require.NoError(t, f.worker.SweepInvoices(f.ctx, ""))
		assert.Equal(t, entity.StateSettled, f.state(t, record.ID))
		assert.Equal(t, int64(800), f.balance(t, "alice"))
	})

	t.Run("Open invoice is left alone", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "alice", "addr1")

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{State: entity.InvoiceOpen}, nil).Once()

		require.NoError(t, f.worker.SweepInvoices(f.ctx, "alice"))
		assert.Equal(t, entity.StateOpen, f.state(t, record.ID))
	})

	t.Run("Canceled invoice fails", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "alice", "addr1")

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{State: entity.InvoiceCanceled}, nil).Once()

		require.NoError(t, f.worker.SweepInvoices(f.ctx, "alice"))
		assert.Equal(t, entity.StateFailed, f.state(t, record.ID))
		assert.Equal(t, int64(0), f.balance(t, "alice"))
	})

	t.Run("Gateway failure skips the record and continues", func(t *testing.T) {
		f := newFixture(t)
		broken := f.invoice(t, "alice", "addr1")
		paid := f.invoice(t, "alice", "addr2")

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{}, errs.NewExternalServiceError("lnd", "lookup_invoice", errors.New("timeout"))).Once()
		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr2").
			Return(entity.InvoiceStatus{State: entity.InvoiceSettled, AmountPaid: 300}, nil).Once()

		require.NoError(t, f.worker.SweepInvoices(f.ctx, "alice"))
		assert.Equal(t, entity.StateOpen, f.state(t, broken.ID))
		assert.Equal(t, entity.StateSettled, f.state(t, paid.ID))
		assert.Equal(t, int64(300), f.balance(t, "alice"))
		ledgertest.AssertBalanced(t, f.store, "alice")
	})

	t.Run("Settle failure leaves the record open", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "alice", "addr1")

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{State: entity.InvoiceAccepted, AmountPaid: 5000}, nil).Once()
		f.payments.EXPECT().SettleInvoice(mock.Anything, testPreimage).
			Return(errs.NewExternalServiceError("lnd", "settle_invoice", errors.New("503"))).Once()

		require.NoError(t, f.worker.SweepInvoices(f.ctx, "alice"))
		assert.Equal(t, entity.StateOpen, f.state(t, record.ID))
		assert.Equal(t, int64(0), f.balance(t, "alice"))
	})

	t.Run("Stale copy does not credit twice", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "alice", "addr1")
		stale := *record

		f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
			Return(entity.InvoiceStatus{State: entity.InvoiceSettled, AmountPaid: 900}, nil).Twice()

		result, err := f.worker.reconcileInvoice(f.ctx, record)
		require.NoError(t, err)
		assert.Equal(t, outcomeSettled, result)

		result, err = f.worker.reconcileInvoice(f.ctx, &stale)
		require.NoError(t, err)
		assert.Equal(t, outcomeUnchanged, result)
		assert.Equal(t, int64(900), f.balance(t, "alice"))
	})
}

func TestSettleChallenge(t *testing.T) {
	t.Run("Decisive game pays the winner and the fee", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.accepted(t, 1000, "g1")

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").
			Return(entity.GameResult{Status: entity.GameFinished, Winner: entity.ColorBlack, RawStatus: "resign"}, nil).Once()

		require.NoError(t, f.worker.SettleChallenge(f.ctx, challenge))
		assert.Equal(t, entity.ChallengeCompleted, challenge.Status)
		assert.Equal(t, int64(0), f.balance(t, "alice"))
		assert.Equal(t, int64(1980), f.balance(t, "bob"))
		assert.Equal(t, int64(20), f.balance(t, "admin"))

		records, err := f.ledger().ListTransactions(f.ctx, persistence.TransactionFilter{
			Username: "bob",
			Type:     entity.TypeWinnings,
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(1980), records[0].Amount)
		require.NotNil(t, records[0].ChallengeID)
		assert.Equal(t, challenge.ID, *records[0].ChallengeID)
		ledgertest.AssertBalanced(t, f.store, "alice", "bob", "admin")
	})

	t.Run("A stale copy cannot settle twice", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.accepted(t, 1000, "g1")
		stale := *challenge

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").
			Return(entity.GameResult{Status: entity.GameFinished, Winner: entity.ColorWhite}, nil).Twice()

		require.NoError(t, f.worker.SettleChallenge(f.ctx, challenge))
		require.NoError(t, f.worker.SettleChallenge(f.ctx, &stale))

		assert.Equal(t, entity.ChallengeCompleted, stale.Status)
		assert.Equal(t, int64(1980), f.balance(t, "alice"))
		assert.Equal(t, int64(20), f.balance(t, "admin"))
		ledgertest.AssertBalanced(t, f.store, "alice", "bob", "admin")
	})

	t.Run("Tiny stakes skip the zero fee", func(t *testing.T) {
		f := newFixture(t)
		challenge := f.accepted(t, 10, "g1")

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").
			Return(entity.GameResult{Status: entity.GameFinished}, nil).Once()

		require.NoError(t, f.worker.SettleChallenge(f.ctx, challenge))
		assert.Equal(t, int64(10), f.balance(t, "alice"))
		assert.Equal(t, int64(10), f.balance(t, "bob"))

		fees, err := f.ledger().ListTransactions(f.ctx, persistence.TransactionFilter{Type: entity.TypeFee})
		require.NoError(t, err)
		assert.Empty(t, fees)
		ledgertest.AssertBalanced(t, f.store, "alice", "bob")
	})

	t.Run("Non-accepted challenges are ignored", func(t *testing.T) {
		f := newFixture(t)
		challenge := &entity.Challenge{ID: 5, Status: entity.ChallengeWaitingForAcceptance}
		assert.NoError(t, f.worker.SettleChallenge(f.ctx, challenge))
	})

	t.Run("Sweep settles each finished game of the user", func(t *testing.T) {
		f := newFixture(t)
		f.accepted(t, 100, "g1")
		f.accepted(t, 200, "g2")

		f.games.EXPECT().GetGameResult(mock.Anything, "g1").
			Return(entity.GameResult{Status: entity.GameStarted}, nil).Once()
		f.games.EXPECT().GetGameResult(mock.Anything, "g2").
			Return(entity.GameResult{Status: entity.GameFinished, Winner: entity.ColorWhite}, nil).Once()

		require.NoError(t, f.worker.SweepSettlements(f.ctx, "bob"))
		assert.Equal(t, int64(396), f.balance(t, "alice"))

		accepted, err := f.store.GetChallengeRepository(f.ctx).ListByStatus(f.ctx, entity.ChallengeAccepted, "")
		require.NoError(t, err)
		assert.Len(t, accepted, 1)
	})
}

func TestReconcileTransaction(t *testing.T) {
	t.Run("Other users' records are not found", func(t *testing.T) {
		f := newFixture(t)
		record := f.invoice(t, "bob", "addr1")

		err := f.worker.ReconcileTransaction(f.ctx, "alice", record.ID)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Resolved records are not looked up", func(t *testing.T) {
		f := newFixture(t)
		entry, err := entity.NewLedgerEntry("alice", entity.TypeFee, 5, "fee", nil, f.clock)
		require.NoError(t, err)
		require.NoError(t, f.ledger().AppendTransaction(f.ctx, entry))

		assert.NoError(t, f.worker.ReconcileTransaction(f.ctx, "alice", entry.ID))
	})

	t.Run("Open withdrawal that succeeded is settled", func(t *testing.T) {
		f := newFixture(t)
		ledgertest.Fund(t, f.store, f.clock, "alice", 1000)
		record := entity.NewWithdrawalRecord("alice", "lnbc1", entity.DecodedPayment{Amount: 300, PaymentHash: "h1"}, f.clock)
		require.NoError(t, f.ledger().AppendTransaction(f.ctx, record))

		f.payments.EXPECT().LookupPayment(mock.Anything, "h1").Return(entity.PaymentSucceeded, nil).Once()

		require.NoError(t, f.worker.ReconcileTransaction(f.ctx, "alice", record.ID))
		assert.Equal(t, entity.StateSettled, f.state(t, record.ID))
		assert.Equal(t, int64(700), f.balance(t, "alice"))
		ledgertest.AssertBalanced(t, f.store, "alice")
	})
}

func TestRunJob(t *testing.T) {
	f := newFixture(t)
	ledgertest.Fund(t, f.store, f.clock, "carol", 1000)

	invoice := f.invoice(t, "alice", "addr1")
	withdrawal := entity.NewWithdrawalRecord("carol", "lnbc1", entity.DecodedPayment{Amount: 300, PaymentHash: "h1"}, f.clock)
	require.NoError(t, f.ledger().AppendTransaction(f.ctx, withdrawal))
	f.accepted(t, 500, "g1")

	// a challenge whose acceptor was debited but which never reached ACCEPTED
	stranded, err := entity.NewChallenge("dave", entity.ChallengeParams{Opponent: "erin", Stake: 50, Color: "black"}, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.store.GetChallengeRepository(f.ctx).Create(f.ctx, stranded))
	strandedID := stranded.ID
	debit, err := entity.NewLedgerEntry("erin", entity.TypeAcceptChallenge, 50, "stake", &strandedID, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.ledger().AppendTransaction(f.ctx, debit))

	f.payments.EXPECT().LookupInvoice(mock.Anything, "addr1").
		Return(entity.InvoiceStatus{State: entity.InvoiceSettled, AmountPaid: 250}, nil).Once()
	f.games.EXPECT().GetGameResult(mock.Anything, "g1").
		Return(entity.GameResult{Status: entity.GameFinished, RawStatus: "stalemate"}, nil).Once()

	// the withdrawal is younger than the grace period
	report, err := f.worker.RunJob(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.InvoicesChecked)
	assert.Equal(t, 1, report.InvoicesSettled)
	assert.Equal(t, 1, report.ChallengesChecked)
	assert.Equal(t, 1, report.ChallengesSettled)
	assert.Equal(t, 0, report.WithdrawalsChecked)
	assert.Equal(t, []int64{stranded.ID}, report.StrandedAcceptDebits)
	assert.False(t, report.Clean())
	assert.Equal(t, entity.StateSettled, f.state(t, invoice.ID))
	assert.Equal(t, int64(250+495), f.balance(t, "alice"))
	assert.Equal(t, int64(495), f.balance(t, "bob"))
	assert.Equal(t, int64(10), f.balance(t, "admin"))

	f.clock.Advance(DefaultWithdrawalGrace + stdtime.Second)
	f.payments.EXPECT().LookupPayment(mock.Anything, "h1").Return(entity.PaymentFailed, nil).Once()

	report, err = f.worker.RunJob(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, report.InvoicesChecked)
	assert.Equal(t, 1, report.WithdrawalsChecked)
	assert.Equal(t, 1, report.WithdrawalsFailed)
	assert.Equal(t, entity.StateFailed, f.state(t, withdrawal.ID))
	assert.Equal(t, int64(1000), f.balance(t, "carol"))
	ledgertest.AssertBalanced(t, f.store, "alice", "bob", "admin", "carol")
}

func TestRunJob_CanceledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(f.ctx)
	cancel()

	_, err := f.worker.RunJob(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
