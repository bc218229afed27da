package dto

import (
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// CreateChallengeRequest is the body of POST /api/challenge
type CreateChallengeRequest struct {
	Opponent          string `json:"opp_username" binding:"required"`
	Sats              int64  `json:"sats" binding:"required"`
	TimeLimit         *int   `json:"time_limit"`
	OpponentTimeLimit *int   `json:"opponent_time_limit"`
	Increment         *int   `json:"increment"`
	Color             string `json:"color"`
	ExpireAfter       *int   `json:"expire_after"`
}

// ToParams converts the request into coordinator input
func (r CreateChallengeRequest) ToParams() entity.ChallengeParams {
	return entity.ChallengeParams{
		Opponent:          r.Opponent,
		Stake:             r.Sats,
		TimeLimit:         r.TimeLimit,
		OpponentTimeLimit: r.OpponentTimeLimit,
		Increment:         r.Increment,
		Color:             r.Color,
		ExpireAfter:       r.ExpireAfter,
	}
}

// AcceptChallengeRequest is the body of POST /api/challenge-accept
type AcceptChallengeRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// ChallengeResponse is the public view of a challenge
type ChallengeResponse struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username"`
	OpponentUsername  string     `json:"opp_username"`
	Sats              int64      `json:"sats"`
	TimeLimit         int        `json:"time_limit"`
	OpponentTimeLimit int        `json:"opponent_time_limit"`
	Increment         int        `json:"increment"`
	Color             string     `json:"color"`
	Status            string     `json:"status"`
	GameID            string     `json:"lichess_challenge_id,omitempty"`
	GameURL           string     `json:"lichess_url,omitempty"`
	CreatedAt         time.Time  `json:"created_on"`
	UpdatedAt         time.Time  `json:"updated_on"`
	ExpiresAt         *time.Time `json:"expire_after,omitempty"`
}

// NewChallengeResponse builds the response for one challenge
func NewChallengeResponse(c *entity.Challenge, gameBaseURL string) ChallengeResponse {
	resp := ChallengeResponse{
		ID:                c.ID,
		Username:          c.Username,
		OpponentUsername:  c.OpponentUsername,
		Sats:              c.Stake,
		TimeLimit:         c.TimeLimit,
		OpponentTimeLimit: c.OpponentTimeLimit,
		Increment:         c.Increment,
		Color:             string(c.Color),
		Status:            string(c.Status),
		GameID:            c.ExternalGameID,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		ExpiresAt:         c.ExpiresAt,
	}
	if c.ExternalGameID != "" && gameBaseURL != "" {
		resp.GameURL = gameBaseURL + "/" + c.ExternalGameID
	}
	return resp
}

// NewChallengeListResponse builds the response for a list of challenges
func NewChallengeListResponse(challenges []*entity.Challenge, gameBaseURL string) []ChallengeResponse {
	out := make([]ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		out = append(out, NewChallengeResponse(c, gameBaseURL))
	}
	return out
}
