package external

import (
	"context"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// GameProvider creates games and reports their results
type GameProvider interface {
	// CreateGame challenges req.ChallengedUsername on behalf of the principal
	CreateGame(ctx context.Context, principal entity.Principal, req entity.GameRequest) (entity.GameHandle, error)

	// GetGameResult returns the status of a game; unknown games count as in progress
	GetGameResult(ctx context.Context, gameID string) (entity.GameResult, error)
}

// AccountProvider verifies an access token and returns the principal it belongs to
type AccountProvider interface {
	// Possible errors:
	// - ErrUnauthenticated: If the token is rejected
	// - ExternalServiceError: If the account service cannot be reached
	Authenticate(ctx context.Context, accessToken string) (entity.Principal, error)
}
