package escrow

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// AcceptChallenge debits the opponent's stake, then creates the game and marks the
// challenge ACCEPTED. The debit commits before the game service is called; if that
// call fails the debit stays and a PartialCommitGapError is returned. A later call by
// the same opponent finds the debit and only retries the game creation.
func (s *Service) AcceptChallenge(ctx context.Context, principal entity.Principal, challengeID int64) (*entity.Challenge, error) {
	if err := s.validator.ValidatePrincipal(principal); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateChallengeID(challengeID); err != nil {
		return nil, err
	}

	var accepted *entity.Challenge
	err := s.sequencer.Run(ctx, principal.Username, func(ctx context.Context) error {
		var err error
		accepted, err = s.acceptChallenge(ctx, principal, challengeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Challenge accepted", map[string]any{
		"challenge_id":     accepted.ID,
		"username":         principal.Username,
		"external_game_id": accepted.ExternalGameID,
	})
	s.notifier.Publish(ctx, core.EventChallengeAccepted, challengePayload(accepted))

	return accepted, nil
}

func (s *Service) acceptChallenge(ctx context.Context, principal entity.Principal, challengeID int64) (*entity.Challenge, error) {
	challenge, err := s.uow.GetChallengeRepository(ctx).GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateOpponent(principal, challenge); err != nil {
		return nil, err
	}
	if err := challenge.RequireStatus(entity.ChallengeWaitingForAcceptance); err != nil {
		return nil, err
	}

	// Step 1: take the opponent's stake, unless an earlier attempt already did
	var retried bool
	err = s.uow.Do(ctx, func(txCtx context.Context) error {
		locked, err := s.uow.GetChallengeRepository(txCtx).GetByIDForUpdate(txCtx, challengeID)
		if err != nil {
			return err
		}
		if err := locked.RequireStatus(entity.ChallengeWaitingForAcceptance); err != nil {
			return err
		}

		ledgerRepo := s.uow.GetLedgerRepository(txCtx)
		_, found, err := s.idempotency.CheckStake(txCtx, ledgerRepo, locked.OpponentUsername, locked.ID, entity.TypeAcceptChallenge)
		if err != nil {
			return err
		}
		if found {
			retried = true
			return nil
		}

		if err := requireAvailable(txCtx, ledgerRepo, locked.OpponentUsername, locked.Stake); err != nil {
			return err
		}
		return s.debitStake(txCtx, ledgerRepo, locked, locked.OpponentUsername, entity.TypeAcceptChallenge)
	})
	if err != nil {
		return nil, err
	}
	if retried {
		s.logger.Info("Retrying game creation for an already debited acceptance", map[string]any{
			"challenge_id": challenge.ID,
			"username":     challenge.OpponentUsername,
		})
	}

	// Step 2: open the game; the opponent plays the colour the creator did not pick
	game, err := s.games.CreateGame(ctx, principal, entity.GameRequest{
		ChallengedUsername: challenge.Username,
		ClockLimit:         challenge.TimeLimit,
		Increment:          challenge.Increment,
		Color:              challenge.OpponentColor(),
	})
	if err != nil {
		return nil, s.acceptGap(ctx, challenge, fmt.Sprintf("challenge:%d", challenge.ID), err)
	}

	// Step 3: record the game
	gameID := game.ID
	err = s.uow.GetChallengeRepository(ctx).UpdateStatus(
		ctx,
		challenge.ID,
		entity.ChallengeWaitingForAcceptance,
		entity.ChallengeAccepted,
		entity.ChallengeUpdate{ExternalGameID: &gameID},
	)
	if err != nil {
		return nil, s.acceptGap(ctx, challenge, "game:"+gameID, err)
	}

	challenge.Status = entity.ChallengeAccepted
	challenge.ExternalGameID = gameID
	challenge.UpdatedAt = s.timeProvider.Now()
	return challenge, nil
}

func (s *Service) acceptGap(ctx context.Context, challenge *entity.Challenge, reference string, cause error) error {
	gap := errs.NewPartialCommitGapError("accept_challenge", challenge.OpponentUsername, challenge.Stake, reference, cause)
	gap.ChallengeID = challenge.ID
	s.notifier.Gap(ctx, gap)
	return gap
}
