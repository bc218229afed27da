package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// ChallengeStatus is the escrow lifecycle of a challenge
type ChallengeStatus string

// Challenge statuses. WAITING_FOR_ACCEPTANCE -> ACCEPTED -> COMPLETED is the only path.
const (
	ChallengeWaitingForAcceptance ChallengeStatus = "WAITING_FOR_ACCEPTANCE"
	ChallengeAccepted             ChallengeStatus = "ACCEPTED"
	ChallengeCompleted            ChallengeStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses
func (s ChallengeStatus) IsValid() bool {
	switch s {
	case ChallengeWaitingForAcceptance, ChallengeAccepted, ChallengeCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether next directly follows s
func (s ChallengeStatus) CanTransitionTo(next ChallengeStatus) bool {
	switch s {
	case ChallengeWaitingForAcceptance:
		return next == ChallengeAccepted
	case ChallengeAccepted:
		return next == ChallengeCompleted
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ChallengeStatus) IsTerminal() bool {
	return s == ChallengeCompleted
}

// ParseChallengeStatus converts a stored value, rejecting unknown literals
func ParseChallengeStatus(value string) (ChallengeStatus, error) {
	s := ChallengeStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown challenge status %q", value)
	}
	return s, nil
}

// Color is a side of the board
type Color string

// Board colors
const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

// IsValid reports whether c is white or black
func (c Color) IsValid() bool {
	return c == ColorWhite || c == ColorBlack
}

// Opposite returns the other side
func (c Color) Opposite() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// Clock defaults and limits, in seconds
const (
	DefaultTimeLimit = 300
	DefaultIncrement = 0
	MaxTimeLimit     = 10800
	MaxIncrement     = 180
)

// ChallengeParams is the caller input for a new challenge. Pointer fields are optional.
type ChallengeParams struct {
	Opponent          string
	Stake             int64
	TimeLimit         *int
	OpponentTimeLimit *int
	Increment         *int
	Color             string
	ExpireAfter       *int // seconds
}

// Challenge is a wager between its creator and a named opponent
type Challenge struct {
	ID                int64
	Username          string // creator
	OpponentUsername  string
	Stake             int64 // per player, fixed at creation
	TimeLimit         int
	OpponentTimeLimit int
	Increment         int
	Color             Color // creator's color
	Status            ChallengeStatus
	ExternalGameID    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ExpiresAt         *time.Time
}

// NewChallenge validates params and builds a challenge waiting for acceptance
func NewChallenge(creator string, params ChallengeParams, timeProvider coreport.TimeProvider) (*Challenge, error) {
	creator = NormalizeUsername(creator)
	opponent := NormalizeUsername(params.Opponent)

	if err := ValidateUsername(creator); err != nil {
		return nil, err
	}
	if err := ValidateUsername(opponent); err != nil {
		return nil, err
	}
	if creator == opponent {
		return nil, errs.NewValidationError("opponent", "cannot challenge yourself")
	}
	if err := ValidateAmount("stake", params.Stake); err != nil {
		return nil, err
	}

	color := Color(params.Color)
	if !color.IsValid() {
		return nil, errs.NewValidationError("color", fmt.Sprintf("must be %q or %q", ColorWhite, ColorBlack))
	}

	timeLimit, err := clockValue("time_limit", params.TimeLimit, DefaultTimeLimit, 1, MaxTimeLimit)
	if err != nil {
		return nil, err
	}
	opponentTimeLimit, err := clockValue("opponent_time_limit", params.OpponentTimeLimit, timeLimit, 1, MaxTimeLimit)
	if err != nil {
		return nil, err
	}
	increment, err := clockValue("increment", params.Increment, DefaultIncrement, 0, MaxIncrement)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	challenge := &Challenge{
		Username:          creator,
		OpponentUsername:  opponent,
		Stake:             params.Stake,
		TimeLimit:         timeLimit,
		OpponentTimeLimit: opponentTimeLimit,
		Increment:         increment,
		Color:             color,
		Status:            ChallengeWaitingForAcceptance,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if params.ExpireAfter != nil {
		if *params.ExpireAfter <= 0 {
			return nil, errs.NewValidationError("expire_after", "must be positive")
		}
		expiresAt := now.Add(time.Duration(*params.ExpireAfter) * time.Second)
		challenge.ExpiresAt = &expiresAt
	}

	return challenge, nil
}

func clockValue(field string, value *int, def, minimum, maximum int) (int, error) {
	if value == nil {
		return def, nil
	}
	if *value < minimum || *value > maximum {
		return 0, errs.NewValidationError(field, fmt.Sprintf("must be between %d and %d", minimum, maximum))
	}
	return *value, nil
}

// Involves reports whether username is the creator or the opponent
func (c *Challenge) Involves(username string) bool {
	username = NormalizeUsername(username)
	return c.Username == username || c.OpponentUsername == username
}

// OpponentColor is the side played by the accepting opponent
func (c *Challenge) OpponentColor() Color {
	return c.Color.Opposite()
}

// PlayerWithColor returns the participant assigned to color
func (c *Challenge) PlayerWithColor(color Color) string {
	if color == c.Color {
		return c.Username
	}
	return c.OpponentUsername
}

// Pot is the total escrowed once both stakes are in
func (c *Challenge) Pot() int64 {
	return 2 * c.Stake
}

// RequireStatus fails with an InvalidStateError unless the challenge is in expected
func (c *Challenge) RequireStatus(expected ChallengeStatus) error {
	if c.Status != expected {
		return errs.NewInvalidStateError(c.ID, string(expected), string(c.Status))
	}
	return nil
}

// ChallengeUpdate carries the optional fields written along with a status change
type ChallengeUpdate struct {
	ExternalGameID *string
}
