package repository

import (
	"context"

	"mingle/internal/cache"
	"mingle/internal/models"
	"mingle/internal/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	ListByPost(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Like], error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like. The unique (post_id, user_id) index is the
// authoritative race-breaker: a concurrent duplicate that slipped past the
// service pre-check fails here and is surfaced as the same validation error.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("already liked")
		}
		return models.NewInternalError(err)
	}
	// The post's like count is computed at read time from this table.
	cache.InvalidatePost(ctx, like.PostID)
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Like], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Offset(pagination.Window(page, pageSize)).
		Limit(pageSize).
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return pagination.NewPage(likes, count, page, pageSize), nil
}
