package escrow

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
)

// CreateChallenge debits the creator's stake and stores the challenge in one unit
func (s *Service) CreateChallenge(ctx context.Context, principal entity.Principal, params entity.ChallengeParams) (*entity.Challenge, error) {
	if err := s.validator.ValidatePrincipal(principal); err != nil {
		return nil, err
	}

	challenge, err := entity.NewChallenge(principal.Username, params, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.sequencer.Run(ctx, challenge.Username, func(ctx context.Context) error {
		return s.uow.Do(ctx, func(txCtx context.Context) error {
			ledgerRepo := s.uow.GetLedgerRepository(txCtx)

			if err := requireAvailable(txCtx, ledgerRepo, challenge.Username, challenge.Stake); err != nil {
				return err
			}

			if err := s.uow.GetChallengeRepository(txCtx).Create(txCtx, challenge); err != nil {
				return fmt.Errorf("failed to create challenge: %w", err)
			}

			return s.debitStake(txCtx, ledgerRepo, challenge, challenge.Username, entity.TypeCreateChallenge)
		})
	})
	if err != nil {
		s.logger.Warn("Challenge creation rejected", mergeFields(errs.LogFieldsOf(err), map[string]any{
			"username": challenge.Username,
			"opponent": challenge.OpponentUsername,
			"stake":    challenge.Stake,
		}))
		return nil, err
	}

	s.logger.Info("Challenge created", map[string]any{
		"challenge_id": challenge.ID,
		"username":     challenge.Username,
		"opponent":     challenge.OpponentUsername,
		"stake":        challenge.Stake,
	})
	s.notifier.Publish(ctx, core.EventChallengeCreated, challengePayload(challenge))

	return challenge, nil
}

// debitStake takes the stake from username and logs the matching ledger record
func (s *Service) debitStake(
	ctx context.Context,
	ledgerRepo persistence.LedgerRepository,
	challenge *entity.Challenge,
	username string,
	txType entity.TransactionType,
) error {
	if _, err := ledgerRepo.Debit(ctx, username, challenge.Stake); err != nil {
		return err
	}

	challengeID := challenge.ID
	record, err := entity.NewLedgerEntry(
		username,
		txType,
		challenge.Stake,
		fmt.Sprintf("stake for challenge %d", challenge.ID),
		&challengeID,
		s.timeProvider,
	)
	if err != nil {
		return err
	}
	return ledgerRepo.AppendTransaction(ctx, record)
}

// requireAvailable fails unless username can cover amount once pending
// withdrawals are set aside
func requireAvailable(ctx context.Context, ledgerRepo persistence.LedgerRepository, username string, amount int64) error {
	balance, err := ledgerRepo.GetBalance(ctx, username)
	if err != nil {
		return err
	}
	pending, err := ledgerRepo.SumOpenWithdrawals(ctx, username)
	if err != nil {
		return err
	}

	available := entity.Balance{Username: username, Amount: balance, PendingWithdrawals: pending}.Available()
	if available < amount {
		return errs.NewInsufficientFundsError(username, amount, available)
	}
	return nil
}

func challengePayload(c *entity.Challenge) map[string]any {
	return map[string]any{
		"challenge_id":     c.ID,
		"username":         c.Username,
		"opponent":         c.OpponentUsername,
		"stake":            c.Stake,
		"status":           string(c.Status),
		"external_game_id": c.ExternalGameID,
	}
}

func mergeFields(base map[string]any, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
