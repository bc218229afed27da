package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/chess-escrow/mocks/port/core"
)

func TestNewLedgerEntry(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	challengeID := int64(42)

	t.Run("Debit types are stored negative", func(t *testing.T) {
		tx, err := NewLedgerEntry("alice", TypeCreateChallenge, 1000, "stake", &challengeID, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-1000), tx.Amount)
		assert.Equal(t, int64(1000), tx.Magnitude())
		assert.Equal(t, StateSettled, tx.State)
		assert.Equal(t, &challengeID, tx.ChallengeID)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.CountsTowardBalance())
	})

	t.Run("Credit types are stored positive", func(t *testing.T) {
		tx, err := NewLedgerEntry("bob", TypeWinnings, 1980, "winnings", &challengeID, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(1980), tx.Amount)
		assert.Equal(t, TypeWinnings, tx.Type)
	})

	t.Run("Invoice and withdrawal need their own constructors", func(t *testing.T) {
		_, err := NewLedgerEntry("alice", TypeInvoice, 10, "", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewLedgerEntry("alice", TypeWithdrawal, 10, "", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Zero amount", func(t *testing.T) {
		tx, err := NewLedgerEntry("alice", TypeFee, 0, "", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)
	})
}

func TestNewInvoiceAndWithdrawalRecords(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	invoice := NewInvoiceRecord("alice", "funding account alice", "cHJlaW1hZ2U=", "abcd",
		HoldInvoice{PaymentRequest: "lnbc1", PaymentAddr: "YWRkcg=="}, mockTime)
	assert.Equal(t, TypeInvoice, invoice.Type)
	assert.Equal(t, StateOpen, invoice.State)
	assert.Zero(t, invoice.Amount)
	assert.Equal(t, "YWRkcg==", invoice.PaymentAddr)
	assert.False(t, invoice.CountsTowardBalance())
	assert.Equal(t, "payment_hash:abcd", invoice.Reference())

	withdrawal := NewWithdrawalRecord("alice", "lnbc2", DecodedPayment{Amount: 400, PaymentHash: "ff00"}, mockTime)
	assert.Equal(t, TypeWithdrawal, withdrawal.Type)
	assert.Equal(t, StateOpen, withdrawal.State)
	assert.Equal(t, int64(-400), withdrawal.Amount)
	assert.Equal(t, "ff00", withdrawal.PaymentHash)
}

func TestTransactionStateTransitions(t *testing.T) {
	assert.True(t, StateOpen.CanTransitionTo(StateSettled))
	assert.True(t, StateOpen.CanTransitionTo(StateFailed))
	assert.False(t, StateSettled.CanTransitionTo(StateFailed))
	assert.False(t, StateFailed.CanTransitionTo(StateSettled))
	assert.False(t, StateOpen.CanTransitionTo(StateOpen))
}

func TestTransactionRecordReference(t *testing.T) {
	id := int64(9)
	assert.Equal(t, "challenge:9", (&TransactionRecord{ChallengeID: &id}).Reference())
	assert.Equal(t, "transaction:3", (&TransactionRecord{ID: 3}).Reference())
	assert.Equal(t, "payment_addr:xyz", (&TransactionRecord{PaymentAddr: "xyz"}).Reference())
}
