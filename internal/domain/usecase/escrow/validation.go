package escrow

import (
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

// ChallengeValidator checks caller input that the entity constructors do not see
type ChallengeValidator struct{}

// NewChallengeValidator creates a new ChallengeValidator
func NewChallengeValidator() *ChallengeValidator {
	return &ChallengeValidator{}
}

// ValidatePrincipal rejects principals that did not come out of authentication
func (v *ChallengeValidator) ValidatePrincipal(principal entity.Principal) error {
	if principal.AccessToken == "" {
		return errs.ErrUnauthenticated
	}
	if err := entity.ValidateUsername(principal.Username); err != nil {
		return err
	}
	return nil
}

// ValidateChallengeID checks that id can refer to a stored challenge
func (v *ChallengeValidator) ValidateChallengeID(id int64) error {
	if id <= 0 {
		return errs.NewValidationError("challenge_id", fmt.Sprintf("must be positive, got %d", id))
	}
	return nil
}

// ValidateParticipant fails unless principal is part of the challenge
func (v *ChallengeValidator) ValidateParticipant(principal entity.Principal, challenge *entity.Challenge) error {
	if !challenge.Involves(principal.Username) {
		return fmt.Errorf("%w: %s is not part of challenge %d", errs.ErrUnauthorized, principal.Username, challenge.ID)
	}
	return nil
}

// ValidateOpponent fails unless principal is the challenged opponent
func (v *ChallengeValidator) ValidateOpponent(principal entity.Principal, challenge *entity.Challenge) error {
	if challenge.OpponentUsername != entity.NormalizeUsername(principal.Username) {
		return fmt.Errorf("%w: challenge %d was not addressed to %s", errs.ErrUnauthorized, challenge.ID, principal.Username)
	}
	return nil
}
