package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/model"
)

// ChallengeRepository implements ChallengeRepository interface using GORM
type ChallengeRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewChallengeRepository creates a new ChallengeRepository instance
func NewChallengeRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ChallengeRepository {
	return &ChallengeRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

var _ persistence.ChallengeRepository = (*ChallengeRepository)(nil)

// Create inserts a challenge and assigns its ID
func (r *ChallengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	if challenge == nil {
		return fmt.Errorf("%w: nil challenge", errs.ErrInvalidRequest)
	}
	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = r.timeProvider.Now()
	}
	if challenge.UpdatedAt.IsZero() {
		challenge.UpdatedAt = challenge.CreatedAt
	}

	row := model.ChallengeFromEntity(challenge)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Database error when creating challenge", map[string]any{
			"username": challenge.Username,
			"opponent": challenge.OpponentUsername,
			"error":    err.Error(),
		})
		return r.errorMapper.MapError(err, "creating challenge")
	}

	challenge.ID = row.ID
	return nil
}

// GetByID returns a challenge
func (r *ChallengeRepository) GetByID(ctx context.Context, id int64) (*entity.Challenge, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate returns a challenge and locks its row until the transaction ends
func (r *ChallengeRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Challenge, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *ChallengeRepository) get(db *gorm.DB, id int64) (*entity.Challenge, error) {
	var row model.Challenge
	if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, r.errorMapper.MapEntityNotFoundError(err, EntityTypeChallenge)
	}
	return row.ToEntity()
}

// ListByUser returns challenges involving username, newest first
func (r *ChallengeRepository) ListByUser(ctx context.Context, username string, limit int) ([]*entity.Challenge, error) {
	username = entity.NormalizeUsername(username)
	query := r.db.WithContext(ctx).
		Where("username = ? OR opponent_username = ?", username, username).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find(query, "listing challenges by user")
}

// ListByStatus returns challenges in status, oldest first
func (r *ChallengeRepository) ListByStatus(ctx context.Context, status entity.ChallengeStatus, username string) ([]*entity.Challenge, error) {
	query := r.db.WithContext(ctx).Where("status = ?", string(status))
	if username != "" {
		username = entity.NormalizeUsername(username)
		query = query.Where("(username = ? OR opponent_username = ?)", username, username)
	}
	return r.find(query.Order("id ASC"), "listing challenges by status")
}

func (r *ChallengeRepository) find(query *gorm.DB, operation string) ([]*entity.Challenge, error) {
	var rows []model.Challenge
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{"error": err.Error()})
		return nil, r.errorMapper.MapError(err, operation)
	}

	challenges := make([]*entity.Challenge, 0, len(rows))
	for i := range rows {
		c, err := rows[i].ToEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
		}
		challenges = append(challenges, c)
	}
	return challenges, nil
}

// UpdateStatus moves a challenge from expected to next in a single guarded statement
func (r *ChallengeRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	expected, next entity.ChallengeStatus,
	update entity.ChallengeUpdate,
) error {
	if !expected.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidState, expected, next)
	}

	values := map[string]any{
		"status":     string(next),
		"updated_at": r.timeProvider.Now(),
	}
	if update.ExternalGameID != nil {
		values["external_game_id"] = *update.ExternalGameID
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&model.Challenge{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(values)
	if result.Error != nil {
		r.logger.Error("Database error when updating challenge status", map[string]any{
			"challenge_id": id,
			"error":        result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "updating challenge status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&model.Challenge{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return r.errorMapper.MapError(err, "updating challenge status")
	}
	if count == 0 {
		return errs.ErrChallengeNotFound
	}

	r.logger.Warn("Challenge status changed concurrently", map[string]any{
		"challenge_id": id,
		"expected":     string(expected),
		"next":         string(next),
	})
	return errs.NewStateConflictError("challenge", id, string(expected))
}
