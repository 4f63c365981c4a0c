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

// UserRepository defines persistence operations for users and their profiles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page, pageSize int) (*pagination.Page[models.User], error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and its associated empty profile in one
// transaction. A duplicate email surfaces as a validation error whether it is
// caught by the pre-check in the service or by the unique index here.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("email taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.User], error) {
	page, pageSize = pagination.Normalize(page, pageSize)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(pagination.Window(page, pageSize)).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return pagination.NewPage(users, count, page, pageSize), nil
}

// Delete removes the user; profile, posts, comments, likes, and follow edges
// go with it via store-level cascade. Before deleting, the IDs of the user's
// own posts and of posts they commented on or liked are collected so every
// cached post touched by the cascade is dropped.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var postIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("user_id = ?", id).
		Pluck("id", &postIDs).Error; err != nil {
		return models.NewInternalError(err)
	}

	var touched []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("user_id = ?", id).
		Distinct("post_id").
		Pluck("post_id", &touched).Error; err != nil {
		return models.NewInternalError(err)
	}
	postIDs = append(postIDs, touched...)

	var liked []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ?", id).
		Distinct("post_id").
		Pluck("post_id", &liked).Error; err != nil {
		return models.NewInternalError(err)
	}
	postIDs = append(postIDs, liked...)

	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	cache.InvalidatePosts(ctx, postIDs)
	return nil
}

func (r *userRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, profile.UserID)
	return nil
}
