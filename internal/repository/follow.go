package repository

import (
	"context"

	"mingle/internal/models"
	"mingle/internal/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Exists(ctx context.Context, userID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Follow], error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the follow edge. The unique (user_id, following_id) index is
// the authoritative race-breaker behind the service's pre-check.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("already following")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, followingID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListFollowers returns the follow edges pointing at userID, i.e. the users
// following them.
func (r *followRepository) ListFollowers(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Follow], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("following_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(pagination.Window(page, pageSize)).
		Limit(pageSize).
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return pagination.NewPage(follows, count, page, pageSize), nil
}
