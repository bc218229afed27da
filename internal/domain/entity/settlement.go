package entity

import "fmt"

// Payout is one credit produced by settling a challenge
type Payout struct {
	Username string
	Type     TransactionType
	Amount   int64
	Detail   string
}

// Settlement is the full set of payouts for a finished game
type Settlement struct {
	ChallengeID int64
	Winner      string // empty for a draw
	Fee         int64
	Payouts     []Payout
}

// Total returns the sum of all payouts; it always equals the pot
func (s Settlement) Total() int64 {
	var total int64
	for _, p := range s.Payouts {
		total += p.Amount
	}
	return total
}

// ComputeSettlement splits the pot of an accepted challenge according to the game result.
// A decisive game pays the winner twice the stake less the fee; anything else is treated
// as a draw and refunds each player their stake less half the fee. The fee always goes to
// admin. Zero-amount payouts are omitted.
func ComputeSettlement(c *Challenge, result GameResult, admin string) (Settlement, error) {
	if err := c.RequireStatus(ChallengeAccepted); err != nil {
		return Settlement{}, err
	}
	if !result.IsTerminal() {
		return Settlement{}, fmt.Errorf("game %s has not finished", c.ExternalGameID)
	}

	fee := CalculateFee(c.Stake)
	settlement := Settlement{ChallengeID: c.ID, Fee: fee}
	challengeRef := fmt.Sprintf("challenge %d", c.ID)

	if result.IsDecisive() {
		winner := c.PlayerWithColor(result.Winner)
		settlement.Winner = winner
		settlement.add(Payout{
			Username: winner,
			Type:     TypeWinnings,
			Amount:   c.Pot() - fee,
			Detail:   "winnings from " + challengeRef,
		})
	} else {
		refund := c.Stake - fee/2
		settlement.add(Payout{
			Username: c.Username,
			Type:     TypeDrawRefund,
			Amount:   refund,
			Detail:   "draw refund from " + challengeRef,
		})
		settlement.add(Payout{
			Username: c.OpponentUsername,
			Type:     TypeDrawRefund,
			Amount:   refund,
			Detail:   "draw refund from " + challengeRef,
		})
	}

	settlement.add(Payout{
		Username: NormalizeUsername(admin),
		Type:     TypeFee,
		Amount:   fee,
		Detail:   "fee from " + challengeRef,
	})

	return settlement, nil
}

func (s *Settlement) add(p Payout) {
	if p.Amount <= 0 {
		return
	}
	s.Payouts = append(s.Payouts, p)
}
