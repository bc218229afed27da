package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if !errors.Is(ErrInvalidAmount, ErrValidation) {
		t.Errorf("ErrInvalidAmount should wrap ErrValidation")
	}
	if !errors.Is(ErrChallengeNotFound, ErrNotFound) {
		t.Errorf("ErrChallengeNotFound should wrap ErrNotFound")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, 4001},
		{"Validation", ErrValidation, 4002},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUsername", ErrInvalidUsername, 4003},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"Unauthorized", ErrUnauthorized, 4030},
		{"ChallengeNotFound", ErrChallengeNotFound, 4041},
		{"TransactionNotFound", ErrTransactionNotFound, 4042},
		{"NotFound", ErrNotFound, 4040},
		{"InvalidState", ErrInvalidState, 4090},
		{"StateConflict", ErrStateConflict, 4091},
		{"ExternalService", ErrExternalService, 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnauthorized), 4030},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("alice", 1000, 250)

	assert.True(t, IsInsufficientFundsError(err))
	assert.Equal(t, "insufficient funds for user alice: required 1000, available 250", err.Error())

	var detailed *InsufficientFundsError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, int64(250), detailed.LogFields()["available"])
	assert.Equal(t, CodeInsufficientFunds, ErrorCode(err))
}

func TestInvalidStateError(t *testing.T) {
	err := NewInvalidStateError(7, "WAITING_FOR_ACCEPTANCE", "ACCEPTED")

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "challenge 7 is ACCEPTED")
	assert.Equal(t, CodeInvalidState, ErrorCode(err))
}

func TestStateConflictError(t *testing.T) {
	err := NewStateConflictError("transaction", 12, "OPEN")

	assert.True(t, IsStateConflictError(err))
	assert.False(t, errors.Is(err, ErrInvalidState))
	assert.Equal(t, "transaction 12 is no longer OPEN", err.Error())
}

func TestExternalServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalServiceError("lnd", "SendPayment", cause)

	assert.ErrorIs(t, err, ErrExternalService)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeExternalService, ErrorCode(err))
	assert.Equal(t, "lnd", LogFieldsOf(err)["service"])
}

func TestPartialCommitGapError(t *testing.T) {
	external := NewExternalServiceError("lichess", "CreateGame", errors.New("502"))
	gap := NewPartialCommitGapError("accept_challenge", "bob", 1000, "challenge:3", external)
	gap.ChallengeID = 3

	var err error = gap
	assert.ErrorIs(t, err, ErrPartialCommitGap)
	assert.ErrorIs(t, err, ErrExternalService)
	assert.Equal(t, CodePartialCommitGap, ErrorCode(err))

	fields := LogFieldsOf(err)
	assert.Equal(t, "bob", fields["username"])
	assert.Equal(t, int64(1000), fields["amount"])
	assert.Equal(t, "challenge:3", fields["external_reference"])
	assert.Equal(t, int64(3), fields["challenge_id"])
	assert.NotContains(t, fields, "transaction_id")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("stake", "must be positive")

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "validation failed on stake: must be positive", err.Error())
	assert.Equal(t, "stake", LogFieldsOf(err)["field"])
}

func TestLogFieldsOfPlainError(t *testing.T) {
	fields := LogFieldsOf(errors.New("boom"))
	assert.Equal(t, map[string]any{"error": "boom"}, fields)
}
