package escrow

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

// GetChallenge settles the challenge if its game has ended and returns it
func (s *Service) GetChallenge(ctx context.Context, principal entity.Principal, challengeID int64) (*entity.Challenge, error) {
	if err := s.validator.ValidatePrincipal(principal); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateChallengeID(challengeID); err != nil {
		return nil, err
	}

	challengeRepo := s.uow.GetChallengeRepository(ctx)
	challenge, err := challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateParticipant(principal, challenge); err != nil {
		return nil, err
	}

	if challenge.Status == entity.ChallengeAccepted {
		err := s.sequencer.Run(ctx, principal.Username, func(ctx context.Context) error {
			return s.reconciler.SettleChallenge(ctx, challenge)
		})
		if err != nil {
			return nil, err
		}
	}

	return challenge, nil
}

// ListChallenges settles the principal's finished games and lists their challenges
func (s *Service) ListChallenges(ctx context.Context, principal entity.Principal) ([]*entity.Challenge, error) {
	if err := s.validator.ValidatePrincipal(principal); err != nil {
		return nil, err
	}

	err := s.sequencer.Run(ctx, principal.Username, func(ctx context.Context) error {
		return s.reconciler.SweepSettlements(ctx, principal.Username)
	})
	if err != nil {
		s.logger.Error("Settlement sweep failed", mergeFields(errs.LogFieldsOf(err), map[string]any{
			"username": principal.Username,
		}))
		return nil, err
	}

	return s.uow.GetChallengeRepository(ctx).ListByUser(ctx, principal.Username, s.listLimit)
}
