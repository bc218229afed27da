package model

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// Challenge represents the database model for challenges
type Challenge struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	Username          string    `gorm:"not null;index"`
	OpponentUsername  string    `gorm:"not null;index"`
	Stake             int64     `gorm:"not null"`
	TimeLimit         int       `gorm:"not null"`
	OpponentTimeLimit int       `gorm:"not null"`
	Increment         int       `gorm:"not null"`
	Color             string    `gorm:"not null"`
	Status            string    `gorm:"not null;index"`
	ExternalGameID    string    `gorm:"not null;default:''"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
	ExpiresAt         *time.Time
}

// TableName specifies the table name for Challenge
func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeFromEntity converts a challenge to its database model
func ChallengeFromEntity(c *entity.Challenge) *Challenge {
	return &Challenge{
		ID:                c.ID,
		Username:          c.Username,
		OpponentUsername:  c.OpponentUsername,
		Stake:             c.Stake,
		TimeLimit:         c.TimeLimit,
		OpponentTimeLimit: c.OpponentTimeLimit,
		Increment:         c.Increment,
		Color:             string(c.Color),
		Status:            string(c.Status),
		ExternalGameID:    c.ExternalGameID,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		ExpiresAt:         c.ExpiresAt,
	}
}

// ToEntity converts the model to a challenge, rejecting unknown status values
func (m *Challenge) ToEntity() (*entity.Challenge, error) {
	status, err := entity.ParseChallengeStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("challenge %d: %w", m.ID, err)
	}
	return &entity.Challenge{
		ID:                m.ID,
		Username:          m.Username,
		OpponentUsername:  m.OpponentUsername,
		Stake:             m.Stake,
		TimeLimit:         m.TimeLimit,
		OpponentTimeLimit: m.OpponentTimeLimit,
		Increment:         m.Increment,
		Color:             entity.Color(m.Color),
		Status:            status,
		ExternalGameID:    m.ExternalGameID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		ExpiresAt:         m.ExpiresAt,
	}, nil
}
