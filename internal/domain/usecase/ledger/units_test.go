package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger/ledgertest"
)

func TestSettleInvoice(t *testing.T) {
	t.Run("Credits exactly once", func(t *testing.T) {
		f := newFixture(t)
		record := f.appendRecord(t, entity.NewInvoiceRecord("alice", "memo", "cA==", "ff",
			entity.HoldInvoice{PaymentAddr: "YQ=="}, f.clock))
		stale := *record

		changed, err := SettleInvoice(f.ctx, f.store, record, 1500)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, entity.StateSettled, record.State)
		assert.Equal(t, int64(1500), record.Amount)

		changed, err = SettleInvoice(f.ctx, f.store, &stale, 1500)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, entity.StateOpen, stale.State)

		assert.Equal(t, int64(1500), f.balance(t, "alice"))
		ledgertest.AssertBalanced(t, f.store, "alice")
	})

	t.Run("Concurrent settlers credit once", func(t *testing.T) {
		f := newFixture(t)
		record := f.appendRecord(t, entity.NewInvoiceRecord("alice", "memo", "cA==", "ff",
			entity.HoldInvoice{PaymentAddr: "YQ=="}, f.clock))

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			copyOf := *record
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := SettleInvoice(f.ctx, f.store, &copyOf, 700)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(700), f.balance(t, "alice"))
	})

	t.Run("Zero payment settles without credit", func(t *testing.T) {
		f := newFixture(t)
		record := f.appendRecord(t, entity.NewInvoiceRecord("alice", "memo", "cA==", "ff",
			entity.HoldInvoice{PaymentAddr: "YQ=="}, f.clock))

		changed, err := SettleInvoice(f.ctx, f.store, record, 0)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(0), f.balance(t, "alice"))
	})
}

func TestSettleWithdrawal(t *testing.T) {
	t.Run("Debits and settles", func(t *testing.T) {
		f := newFixture(t)
		ledgertest.Fund(t, f.store, f.clock, "alice", 1000)
		record := f.appendRecord(t, entity.NewWithdrawalRecord("alice", "lnbc1",
			entity.DecodedPayment{Amount: 400, PaymentHash: "ab"}, f.clock))

		changed, err := SettleWithdrawal(f.ctx, f.store, record)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(600), f.balance(t, "alice"))

		stored, err := f.store.GetLedgerRepository(f.ctx).GetTransaction(f.ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StateSettled, stored.State)
		assert.Equal(t, int64(-400), stored.Amount)
		ledgertest.AssertBalanced(t, f.store, "alice")

		changed, err = SettleWithdrawal(f.ctx, f.store, stored)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, int64(600), f.balance(t, "alice"))
		ledgertest.AssertBalanced(t, f.store, "alice")
	})

	t.Run("Debit failure rolls the transition back", func(t *testing.T) {
		f := newFixture(t)
		record := f.appendRecord(t, entity.NewWithdrawalRecord("alice", "lnbc1",
			entity.DecodedPayment{Amount: 400, PaymentHash: "ab"}, f.clock))

		_, err := SettleWithdrawal(f.ctx, f.store, record)
		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, entity.StateOpen, record.State)

		stored, err := f.store.GetLedgerRepository(f.ctx).GetTransaction(f.ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StateOpen, stored.State)
	})
}

func TestFailTransaction(t *testing.T) {
	f := newFixture(t)
	record := f.appendRecord(t, entity.NewWithdrawalRecord("alice", "lnbc1",
		entity.DecodedPayment{Amount: 400, PaymentHash: "ab"}, f.clock))

	changed, err := FailTransaction(f.ctx, f.store, record)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, entity.StateFailed, record.State)

	changed, err = FailTransaction(f.ctx, f.store, record)
	require.NoError(t, err)
	assert.False(t, changed)
}
