package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

func TestChallenge_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &entity.Challenge{
		ID:                7,
		Username:          "alice",
		OpponentUsername:  "bob",
		Stake:             1000,
		TimeLimit:         300,
		OpponentTimeLimit: 180,
		Increment:         2,
		Color:             entity.ColorBlack,
		Status:            entity.ChallengeAccepted,
		ExternalGameID:    "abcd1234",
		CreatedAt:         now,
		UpdatedAt:         now,
		ExpiresAt:         &now,
	}

	got, err := ChallengeFromEntity(c).ToEntity()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestChallenge_ToEntityRejectsUnknownStatus(t *testing.T) {
	_, err := (&Challenge{ID: 3, Status: "EXPIRED"}).ToEntity()
	assert.ErrorContains(t, err, "challenge 3")
}

func TestTransaction_Conversion(t *testing.T) {
	id := int64(4)
	record := &entity.TransactionRecord{
		ID:          9,
		Username:    "alice",
		Type:        entity.TypeAcceptChallenge,
		Amount:      -500,
		State:       entity.StateSettled,
		ChallengeID: &id,
	}

	m := TransactionFromEntity(record)
	assert.Equal(t, "accept_challenge", m.Type)
	assert.Equal(t, "SETTLED", m.State)
	assert.Equal(t, record, m.ToEntity())
}
