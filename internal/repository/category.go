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

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Category], error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("category name taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	key := cache.CategoryKey(id)

	err := cache.Aside(ctx, key, &category, cache.CategoryTTL, func() error {
		if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Category", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Category], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(pagination.Window(page, pageSize)).
		Limit(pageSize).
		Find(&categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return pagination.NewPage(categories, count, page, pageSize), nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("category name taken")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateCategory(ctx, category.ID)
	return nil
}

// Delete removes the category; its posts (and their comments and likes)
// cascade at the store level. The cascaded post IDs are collected first so
// their cache entries can be dropped along with the category's.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var postIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("category_id = ?", id).
		Pluck("id", &postIDs).Error; err != nil {
		return models.NewInternalError(err)
	}

	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Category", id)
	}
	cache.InvalidateCategory(ctx, id)
	cache.InvalidatePosts(ctx, postIDs)
	return nil
}
