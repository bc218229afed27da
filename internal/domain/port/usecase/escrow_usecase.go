package usecase

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// EscrowUseCase opens, accepts and reports on challenges
type EscrowUseCase interface {
	// CreateChallenge debits the creator's stake and records a challenge waiting for the opponent
	CreateChallenge(ctx context.Context, principal entity.Principal, params entity.ChallengeParams) (*entity.Challenge, error)

	// AcceptChallenge debits the opponent's stake, creates the game and marks the challenge ACCEPTED.
	// A PartialCommitGapError means the debit committed but the game could not be created;
	// calling again retries game creation without debiting twice.
	AcceptChallenge(ctx context.Context, principal entity.Principal, challengeID int64) (*entity.Challenge, error)

	// GetChallenge returns a challenge the principal takes part in, settling it first if its game ended
	GetChallenge(ctx context.Context, principal entity.Principal, challengeID int64) (*entity.Challenge, error)

	// ListChallenges returns the principal's challenges, newest first, after settling finished games
	ListChallenges(ctx context.Context, principal entity.Principal) ([]*entity.Challenge, error)
}
