package memory

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

type challengeRepository struct {
	store *Store
}

func (r *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	if challenge == nil {
		return fmt.Errorf("%w: nil challenge", errs.ErrInvalidRequest)
	}
	return r.store.with(ctx, func(data *state) error {
		challenge.ID = data.nextChallenge
		data.nextChallenge++
		if challenge.CreatedAt.IsZero() {
			challenge.CreatedAt = r.store.timeProvider.Now()
		}
		if challenge.UpdatedAt.IsZero() {
			challenge.UpdatedAt = challenge.CreatedAt
		}
		data.challenges = append(data.challenges, *challenge)
		return nil
	})
}

func (r *challengeRepository) GetByID(ctx context.Context, id int64) (*entity.Challenge, error) {
	var found *entity.Challenge
	err := r.store.with(ctx, func(data *state) error {
		row := data.find(id)
		if row == nil {
			return errs.ErrChallengeNotFound
		}
		c := *row
		found = &c
		return nil
	})
	return found, err
}

// GetByIDForUpdate is GetByID; an open unit already holds the store lock
func (r *challengeRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Challenge, error) {
	return r.GetByID(ctx, id)
}

func (r *challengeRepository) ListByUser(ctx context.Context, username string, limit int) ([]*entity.Challenge, error) {
	var result []*entity.Challenge
	err := r.store.with(ctx, func(data *state) error {
		for i := len(data.challenges) - 1; i >= 0; i-- {
			if limit > 0 && len(result) == limit {
				break
			}
			c := data.challenges[i]
			if c.Involves(username) {
				result = append(result, &c)
			}
		}
		return nil
	})
	return result, err
}

func (r *challengeRepository) ListByStatus(ctx context.Context, status entity.ChallengeStatus, username string) ([]*entity.Challenge, error) {
	var result []*entity.Challenge
	err := r.store.with(ctx, func(data *state) error {
		for i := range data.challenges {
			c := data.challenges[i]
			if c.Status != status {
				continue
			}
			if username != "" && !c.Involves(username) {
				continue
			}
			result = append(result, &c)
		}
		return nil
	})
	return result, err
}

func (r *challengeRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	expected, next entity.ChallengeStatus,
	update entity.ChallengeUpdate,
) error {
	if !expected.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidState, expected, next)
	}
	return r.store.with(ctx, func(data *state) error {
		row := data.find(id)
		if row == nil {
			return errs.ErrChallengeNotFound
		}
		if row.Status != expected {
			return errs.NewStateConflictError("challenge", id, string(expected))
		}
		row.Status = next
		if update.ExternalGameID != nil {
			row.ExternalGameID = *update.ExternalGameID
		}
		row.UpdatedAt = r.store.timeProvider.Now()
		return nil
	})
}

func (s *state) find(id int64) *entity.Challenge {
	// IDs are dense and assigned in order
	if id < 1 || id > int64(len(s.challenges)) {
		return nil
	}
	row := &s.challenges[id-1]
	if row.ID != id {
		return nil
	}
	return row
}
