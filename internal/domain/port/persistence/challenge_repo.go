package persistence

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// ChallengeRepository stores challenges and guards their status transitions
type ChallengeRepository interface {
	// Create inserts a new challenge and fills in its ID
	Create(ctx context.Context, challenge *entity.Challenge) error

	// GetByID returns a challenge
	//
	// Possible errors:
	// - ErrChallengeNotFound: If no challenge has this ID
	GetByID(ctx context.Context, id int64) (*entity.Challenge, error)

	// GetByIDForUpdate is GetByID that also locks the row for the rest of the unit
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Challenge, error)

	// ListByUser returns challenges where username is creator or opponent, newest first
	ListByUser(ctx context.Context, username string, limit int) ([]*entity.Challenge, error)

	// ListByStatus returns challenges in status, optionally restricted to those
	// involving username (empty means every user), oldest first
	ListByStatus(ctx context.Context, status entity.ChallengeStatus, username string) ([]*entity.Challenge, error)

	// UpdateStatus moves a challenge from expected to next, writing the optional
	// fields of update in the same statement.
	//
	// Possible errors:
	// - StateConflictError: If the stored status is no longer expected
	// - ErrChallengeNotFound: If no challenge has this ID
	UpdateStatus(ctx context.Context, id int64, expected, next entity.ChallengeStatus, update entity.ChallengeUpdate) error
}
