package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

// Principal is the verified identity of the caller. It is produced by the
// authentication step and passed explicitly into every coordinator call.
type Principal struct {
	Username    string
	AccessToken string
}

// NewPrincipal builds a principal from an account lookup
func NewPrincipal(username, accessToken string) (Principal, error) {
	normalized := NormalizeUsername(username)
	if err := ValidateUsername(normalized); err != nil {
		return Principal{}, err
	}
	if accessToken == "" {
		return Principal{}, errs.ErrUnauthenticated
	}
	return Principal{Username: normalized, AccessToken: accessToken}, nil
}

// NormalizeUsername lower-cases and trims a username; the game service
// treats usernames case-insensitively
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks a normalized username against the game service rules:
// 2 to 30 characters of letters, digits, '_' or '-'
func ValidateUsername(username string) error {
	if len(username) < 2 || len(username) > 30 {
		return fmt.Errorf("%w: %q must be 2-30 characters", errs.ErrInvalidUsername, username)
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q contains %q", errs.ErrInvalidUsername, username, r)
		}
	}
	return nil
}
