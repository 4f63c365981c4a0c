package repository

import (
	"context"
	"errors"

	"mingle/internal/cache"
	"mingle/internal/models"
	"mingle/internal/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Comment], error)
	ListByPost(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	// The post's comment count is computed at read time from this table.
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return r.paginated(ctx, r.db.WithContext(ctx).Model(&models.Comment{}), page, pageSize)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return r.paginated(ctx,
		r.db.WithContext(ctx).Model(&models.Comment{}).Where("post_id = ?", postID),
		page, pageSize)
}

func (r *commentRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return r.paginated(ctx,
		r.db.WithContext(ctx).Model(&models.Comment{}).Where("user_id = ?", userID),
		page, pageSize)
}

// paginated runs the filtered query twice: once for the total count, once for
// the requested window in stable reverse-chronological order.
func (r *commentRepository) paginated(_ context.Context, query *gorm.DB, page, pageSize int) (*pagination.Page[models.Comment], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var comments []models.Comment
	if err := query.Session(&gorm.Session{}).
		Preload("User").
		Order("created_at DESC, id DESC").
		Offset(pagination.Window(page, pageSize)).
		Limit(pageSize).
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return pagination.NewPage(comments, count, page, pageSize), nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// The post ID is read first so the post's cached counts can be refreshed.
	var comment models.Comment
	if err := r.db.WithContext(ctx).Select("id", "post_id").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", id)
		}
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Delete(&comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}
