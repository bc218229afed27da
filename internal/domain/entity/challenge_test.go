package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/chess-escrow/mocks/port/core"
)

func intPtr(v int) *int { return &v }

func TestNewChallenge(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid challenge with defaults", func(t *testing.T) {
		c, err := NewChallenge("Alice", ChallengeParams{
			Opponent: "BOB",
			Stake:    1000,
			Color:    "white",
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", c.Username)
		assert.Equal(t, "bob", c.OpponentUsername)
		assert.Equal(t, int64(1000), c.Stake)
		assert.Equal(t, DefaultTimeLimit, c.TimeLimit)
		assert.Equal(t, DefaultTimeLimit, c.OpponentTimeLimit)
		assert.Equal(t, DefaultIncrement, c.Increment)
		assert.Equal(t, ColorWhite, c.Color)
		assert.Equal(t, ChallengeWaitingForAcceptance, c.Status)
		assert.Equal(t, fixedTime, c.CreatedAt)
		assert.Nil(t, c.ExpiresAt)
		assert.Empty(t, c.ExternalGameID)
	})

	t.Run("Custom clock and expiry", func(t *testing.T) {
		c, err := NewChallenge("alice", ChallengeParams{
			Opponent:          "bob",
			Stake:             500,
			TimeLimit:         intPtr(600),
			OpponentTimeLimit: intPtr(300),
			Increment:         intPtr(5),
			Color:             "black",
			ExpireAfter:       intPtr(3600),
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, 600, c.TimeLimit)
		assert.Equal(t, 300, c.OpponentTimeLimit)
		assert.Equal(t, 5, c.Increment)
		require.NotNil(t, c.ExpiresAt)
		assert.Equal(t, fixedTime.Add(time.Hour), *c.ExpiresAt)
	})

	invalid := []struct {
		name   string
		params ChallengeParams
		err    error
	}{
		{"zero stake", ChallengeParams{Opponent: "bob", Stake: 0, Color: "white"}, errs.ErrInvalidAmount},
		{"negative stake", ChallengeParams{Opponent: "bob", Stake: -1, Color: "white"}, errs.ErrInvalidAmount},
		{"random color", ChallengeParams{Opponent: "bob", Stake: 10, Color: "random"}, errs.ErrValidation},
		{"empty color", ChallengeParams{Opponent: "bob", Stake: 10}, errs.ErrValidation},
		{"self challenge", ChallengeParams{Opponent: "ALICE", Stake: 10, Color: "white"}, errs.ErrValidation},
		{"bad opponent", ChallengeParams{Opponent: "b", Stake: 10, Color: "white"}, errs.ErrInvalidUsername},
		{"time limit too long", ChallengeParams{Opponent: "bob", Stake: 10, Color: "white", TimeLimit: intPtr(MaxTimeLimit + 1)}, errs.ErrValidation},
		{"zero time limit", ChallengeParams{Opponent: "bob", Stake: 10, Color: "white", TimeLimit: intPtr(0)}, errs.ErrValidation},
		{"negative increment", ChallengeParams{Opponent: "bob", Stake: 10, Color: "white", Increment: intPtr(-1)}, errs.ErrValidation},
		{"non-positive expiry", ChallengeParams{Opponent: "bob", Stake: 10, Color: "white", ExpireAfter: intPtr(0)}, errs.ErrValidation},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewChallenge("alice", tc.params, mockTime)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, c)
		})
	}
}

func TestChallengeStatusTransitions(t *testing.T) {
	assert.True(t, ChallengeWaitingForAcceptance.CanTransitionTo(ChallengeAccepted))
	assert.True(t, ChallengeAccepted.CanTransitionTo(ChallengeCompleted))

	assert.False(t, ChallengeWaitingForAcceptance.CanTransitionTo(ChallengeCompleted))
	assert.False(t, ChallengeAccepted.CanTransitionTo(ChallengeWaitingForAcceptance))
	assert.False(t, ChallengeCompleted.CanTransitionTo(ChallengeAccepted))
	assert.True(t, ChallengeCompleted.IsTerminal())

	_, err := ParseChallengeStatus("CANCELLED")
	assert.Error(t, err)
	s, err := ParseChallengeStatus("ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, ChallengeAccepted, s)
}

func TestChallengeHelpers(t *testing.T) {
	c := &Challenge{ID: 7, Username: "alice", OpponentUsername: "bob", Stake: 250, Color: ColorBlack, Status: ChallengeAccepted}

	assert.True(t, c.Involves("Alice"))
	assert.True(t, c.Involves("bob"))
	assert.False(t, c.Involves("carol"))

	assert.Equal(t, ColorWhite, c.OpponentColor())
	assert.Equal(t, "alice", c.PlayerWithColor(ColorBlack))
	assert.Equal(t, "bob", c.PlayerWithColor(ColorWhite))
	assert.Equal(t, int64(500), c.Pot())

	assert.NoError(t, c.RequireStatus(ChallengeAccepted))
	err := c.RequireStatus(ChallengeWaitingForAcceptance)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
