package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

func acceptedChallenge(stake int64) *Challenge {
	return &Challenge{
		ID:               1,
		Username:         "alice",
		OpponentUsername: "bob",
		Stake:            stake,
		Color:            ColorWhite,
		Status:           ChallengeAccepted,
		ExternalGameID:   "abcd1234",
	}
}

func TestComputeSettlement(t *testing.T) {
	t.Run("Decisive game pays the winner", func(t *testing.T) {
		s, err := ComputeSettlement(acceptedChallenge(1000), GameResult{Status: GameFinished, Winner: ColorBlack}, "Admin")

		require.NoError(t, err)
		assert.Equal(t, "bob", s.Winner)
		assert.Equal(t, int64(20), s.Fee)
		require.Len(t, s.Payouts, 2)
		assert.Equal(t, Payout{Username: "bob", Type: TypeWinnings, Amount: 1980, Detail: "winnings from challenge 1"}, s.Payouts[0])
		assert.Equal(t, "admin", s.Payouts[1].Username)
		assert.Equal(t, TypeFee, s.Payouts[1].Type)
		assert.Equal(t, int64(20), s.Payouts[1].Amount)
		assert.Equal(t, int64(2000), s.Total())
	})

	t.Run("Draw refunds both players", func(t *testing.T) {
		s, err := ComputeSettlement(acceptedChallenge(1000), GameResult{Status: GameFinished}, "admin")

		require.NoError(t, err)
		assert.Empty(t, s.Winner)
		require.Len(t, s.Payouts, 3)
		assert.Equal(t, int64(990), s.Payouts[0].Amount)
		assert.Equal(t, "alice", s.Payouts[0].Username)
		assert.Equal(t, int64(990), s.Payouts[1].Amount)
		assert.Equal(t, "bob", s.Payouts[1].Username)
		assert.Equal(t, TypeDrawRefund, s.Payouts[1].Type)
		assert.Equal(t, int64(20), s.Payouts[2].Amount)
		assert.Equal(t, int64(2000), s.Total())
	})

	t.Run("Small stake skips the zero fee", func(t *testing.T) {
		s, err := ComputeSettlement(acceptedChallenge(10), GameResult{Status: GameFinished, Winner: ColorWhite}, "admin")

		require.NoError(t, err)
		require.Len(t, s.Payouts, 1)
		assert.Equal(t, "alice", s.Payouts[0].Username)
		assert.Equal(t, int64(20), s.Payouts[0].Amount)
	})

	t.Run("Pot is conserved for odd stakes", func(t *testing.T) {
		for _, stake := range []int64{1, 3, 99, 101, 151, 12_345, 999_999} {
			for _, result := range []GameResult{{Status: GameFinished, Winner: ColorWhite}, {Status: GameFinished}} {
				s, err := ComputeSettlement(acceptedChallenge(stake), result, "admin")
				require.NoError(t, err)
				assert.Equal(t, 2*stake, s.Total(), "stake %d", stake)
			}
		}
	})

	t.Run("Unfinished game is rejected", func(t *testing.T) {
		_, err := ComputeSettlement(acceptedChallenge(1000), GameResult{Status: GameStarted}, "admin")
		assert.Error(t, err)
	})

	t.Run("Only accepted challenges settle", func(t *testing.T) {
		c := acceptedChallenge(1000)
		c.Status = ChallengeCompleted
		_, err := ComputeSettlement(c, GameResult{Status: GameFinished}, "admin")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestBalanceAvailable(t *testing.T) {
	b := Balance{Username: "alice", Amount: 1000, PendingWithdrawals: 300}
	assert.Equal(t, int64(700), b.Available())
}
