package repository

import (
	"context"
	"strings"
	"time"

	"mingle/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows the post sub-query of an aggregate search. All set
// fields compose conjunctively.
type PostFilter struct {
	Title        string
	CategoryName string
	Start        *time.Time
	End          *time.Time
}

// Empty reports whether no filter field is set.
func (f PostFilter) Empty() bool {
	return f.Title == "" && f.CategoryName == "" && (f.Start == nil || f.End == nil)
}

// CommentFilter narrows the comment sub-query of an aggregate search.
type CommentFilter struct {
	Text  string
	Start *time.Time
	End   *time.Time
}

// Empty reports whether no filter field is set.
func (f CommentFilter) Empty() bool {
	return f.Text == "" && (f.Start == nil || f.End == nil)
}

// SearchRepository runs the per-entity sub-queries of the aggregate search.
type SearchRepository interface {
	Posts(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Comments(ctx context.Context, filter CommentFilter) ([]models.Comment, error)
	UsersByEmail(ctx context.Context, email string) ([]models.User, error)
	CategoriesByName(ctx context.Context, name string) ([]models.Category, error)
}

type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// containsPattern builds a case-insensitive LIKE pattern. LOWER/LIKE rather
// than ILIKE so the same query runs on PostgreSQL and the sqlite test store.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func (r *searchRepository) Posts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	query := applyPostDetails(r.db.WithContext(ctx).Model(&models.Post{})).
		Preload("User").
		Preload("Category")

	if filter.Title != "" {
		query = query.Where("LOWER(posts.title) LIKE ?", containsPattern(filter.Title))
	}
	if filter.CategoryName != "" {
		query = query.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("LOWER(categories.category_name) LIKE ?", containsPattern(filter.CategoryName))
	}
	if filter.Start != nil && filter.End != nil {
		query = query.Where("posts.created_at >= ? AND posts.created_at < ?",
			*filter.Start, filter.End.AddDate(0, 0, 1))
	}

	var posts []models.Post
	if err := query.Order("posts.created_at DESC, posts.id DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *searchRepository) Comments(ctx context.Context, filter CommentFilter) ([]models.Comment, error) {
	query := r.db.WithContext(ctx).Model(&models.Comment{}).Preload("User")

	if filter.Text != "" {
		query = query.Where("LOWER(comment) LIKE ?", containsPattern(filter.Text))
	}
	if filter.Start != nil && filter.End != nil {
		query = query.Where("created_at >= ? AND created_at < ?",
			*filter.Start, filter.End.AddDate(0, 0, 1))
	}

	var comments []models.Comment
	if err := query.Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *searchRepository) UsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) LIKE ?", containsPattern(email)).
		Order("created_at DESC, id DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *searchRepository) CategoriesByName(ctx context.Context, name string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("LOWER(category_name) LIKE ?", containsPattern(name)).
		Order("created_at DESC, id DESC").
		Find(&categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}
