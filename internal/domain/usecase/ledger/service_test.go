package ledger

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"
	stdtime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger/ledgertest"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/sequencer"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/chess-escrow/mocks/port/core"
	mockexternal "github.com/amirhossein-jamali/chess-escrow/mocks/port/external"
	mockusecase "github.com/amirhossein-jamali/chess-escrow/mocks/port/usecase"
)

var alice = entity.Principal{Username: "alice", AccessToken: "token-alice"}

type fixture struct {
	ctx        context.Context
	clock      *timeadapter.ManualTimeProvider
	store      *memory.Store
	payments   *mockexternal.MockPaymentGateway
	secrets    *mockcore.MockSecretGenerator
	reconciler *mockusecase.MockReconciliationUseCase
	service    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := timeadapter.NewManualTimeProvider(stdtime.Date(2024, 5, 1, 9, 0, 0, 0, stdtime.UTC))
	log := logger.NewNoopLogger()
	store := memory.NewStore(log, clock)
	payments := mockexternal.NewMockPaymentGateway(t)
	secrets := mockcore.NewMockSecretGenerator(t)
	reconciler := mockusecase.NewMockReconciliationUseCase(t)
	seq := sequencer.NewSequencer(log, 0)
	t.Cleanup(seq.Shutdown)

	return &fixture{
		ctx:        context.Background(),
		clock:      clock,
		store:      store,
		payments:   payments,
		secrets:    secrets,
		reconciler: reconciler,
		service:    NewService(store, payments, secrets, reconciler, seq, clock, log, Config{}),
	}
}

func (f *fixture) appendRecord(t *testing.T, record *entity.TransactionRecord) *entity.TransactionRecord {
	t.Helper()
	require.NoError(t, f.store.GetLedgerRepository(f.ctx).AppendTransaction(f.ctx, record))
	return record
}

func (f *fixture) balance(t *testing.T, username string) int64 {
	t.Helper()
	balance, err := f.store.GetLedgerRepository(f.ctx).GetBalance(f.ctx, username)
	require.NoError(t, err)
	return balance
}

func TestService_GetBalance(t *testing.T) {
	t.Run("Reconciles first and subtracts open withdrawals", func(t *testing.T) {
		f := newFixture(t)
		ledgertest.Fund(t, f.store, f.clock, "alice", 1000)
		f.appendRecord(t, entity.NewWithdrawalRecord("alice", "lnbc1",
			entity.DecodedPayment{Amount: 250, PaymentHash: "ab"}, f.clock))

		f.reconciler.EXPECT().ReconcileUser(mock.Anything, "alice").Return(nil).Once()

		balance, err := f.service.GetBalance(f.ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, "alice", balance.Username)
		assert.Equal(t, int64(1000), balance.Amount)
		assert.Equal(t, int64(250), balance.PendingWithdrawals)
		assert.Equal(t, int64(750), balance.Available())
		assert.Equal(t, f.clock.Now(), balance.UpdatedAt)
	})

	t.Run("New users start at zero", func(t *testing.T) {
		f := newFixture(t)
		f.reconciler.EXPECT().ReconcileUser(mock.Anything, "alice").Return(nil).Once()

		balance, err := f.service.GetBalance(f.ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.Amount)
	})

	t.Run("Reconciliation failure is returned", func(t *testing.T) {
		f := newFixture(t)
		dbDown := errors.New("connection refused")
		f.reconciler.EXPECT().ReconcileUser(mock.Anything, "alice").Return(dbDown).Once()

		_, err := f.service.GetBalance(f.ctx, alice)
		assert.ErrorIs(t, err, dbDown)
	})

	t.Run("Requires a principal", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GetBalance(f.ctx, entity.Principal{})
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestService_CreateInvoice(t *testing.T) {
	t.Run("Creates a hold invoice and records it open", func(t *testing.T) {
		f := newFixture(t)
		preimage := bytes.Repeat([]byte{0x07}, 32)
		hash := sha256.Sum256(preimage)

		f.secrets.EXPECT().Preimage().Return(preimage, nil).Once()
		f.payments.EXPECT().CreateHoldInvoice(mock.Anything, int64(2500), "funding account alice on lightningchess.io", hash[:]).
			Return(entity.HoldInvoice{PaymentRequest: "lnbc25u1", PaymentAddr: "YWRkcg=="}, nil).Once()

		record, err := f.service.CreateInvoice(f.ctx, alice, 2500)
		require.NoError(t, err)

		assert.NotZero(t, record.ID)
		assert.Equal(t, entity.TypeInvoice, record.Type)
		assert.Equal(t, entity.StateOpen, record.State)
		assert.Equal(t, int64(0), record.Amount)
		assert.Equal(t, "lnbc25u1", record.PaymentRequest)
		assert.Equal(t, "YWRkcg==", record.PaymentAddr)
		assert.Equal(t, hex.EncodeToString(hash[:]), record.PaymentHash)
		assert.Equal(t, base64.StdEncoding.EncodeToString(preimage), record.Preimage)

		stored, err := f.store.GetLedgerRepository(f.ctx).GetTransaction(f.ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.PaymentAddr, stored.PaymentAddr)
		assert.Equal(t, int64(0), f.balance(t, "alice"))
	})

	t.Run("Rejects non-positive amounts", func(t *testing.T) {
		f := newFixture(t)
		for _, amount := range []int64{0, -5} {
			_, err := f.service.CreateInvoice(f.ctx, alice, amount)
			assert.True(t, errs.IsValidationError(err))
		}
	})

	t.Run("Gateway failure records nothing", func(t *testing.T) {
		f := newFixture(t)
		f.secrets.EXPECT().Preimage().Return(bytes.Repeat([]byte{0x01}, 32), nil).Once()
		f.payments.EXPECT().CreateHoldInvoice(mock.Anything, int64(100), mock.Anything, mock.Anything).
			Return(entity.HoldInvoice{}, errs.NewExternalServiceError("lnd", "add_hold_invoice", errors.New("503"))).Once()

		_, err := f.service.CreateInvoice(f.ctx, alice, 100)
		assert.ErrorIs(t, err, errs.ErrExternalService)

		records, err := f.service.ListTransactions(f.ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestService_GetTransaction(t *testing.T) {
	t.Run("Reconciles and returns the record", func(t *testing.T) {
		f := newFixture(t)
		record := f.appendRecord(t, entity.NewInvoiceRecord("alice", "memo", "cA==", "ff",
			entity.HoldInvoice{PaymentAddr: "YQ=="}, f.clock))

		f.reconciler.EXPECT().ReconcileTransaction(mock.Anything, "alice", record.ID).Return(nil).Once()

		got, err := f.service.GetTransaction(f.ctx, alice, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
	})

	t.Run("Records of other users are hidden", func(t *testing.T) {
		f := newFixture(t)
		record := f.appendRecord(t, entity.NewInvoiceRecord("bob", "memo", "cA==", "ff",
			entity.HoldInvoice{PaymentAddr: "YQ=="}, f.clock))

		f.reconciler.EXPECT().ReconcileTransaction(mock.Anything, "alice", record.ID).
			Return(errs.ErrTransactionNotFound).Once()

		_, err := f.service.GetTransaction(f.ctx, alice, record.ID)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Invalid id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GetTransaction(f.ctx, alice, 0)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestService_ListTransactions(t *testing.T) {
	f := newFixture(t)
	for i := int64(1); i <= 3; i++ {
		entry, err := entity.NewLedgerEntry("alice", entity.TypeWinnings, i*10, "win", nil, f.clock)
		require.NoError(t, err)
		f.appendRecord(t, entry)
	}
	other, err := entity.NewLedgerEntry("bob", entity.TypeFee, 5, "fee", nil, f.clock)
	require.NoError(t, err)
	f.appendRecord(t, other)

	records, err := f.service.ListTransactions(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(30), records[0].Amount)
	for _, r := range records {
		assert.Equal(t, "alice", r.Username)
	}
}
