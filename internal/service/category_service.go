package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"mingle/internal/authz"
	"mingle/internal/models"
	"mingle/internal/pagination"
	"mingle/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CategoryInput struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

const maxCategoryNameLen = 100

func (s *CategoryService) CreateCategory(ctx context.Context, actor authz.Actor, in CategoryInput) (*models.Category, error) {
	if err := authz.Decide(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindCategory}).Err(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.CategoryName)
	if name == "" {
		return nil, models.NewValidationError("category_name is required")
	}
	if len(name) > maxCategoryNameLen {
		return nil, models.NewValidationError("category_name too long (max 100 characters)")
	}

	category := &models.Category{
		CategoryName: name,
		Description:  in.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context, page, pageSize int) (*pagination.Page[models.Category], error) {
	return s.categoryRepo.List(ctx, page, pageSize)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, actor authz.Actor, id uuid.UUID, in CategoryInput) (*models.Category, error) {
	if err := authz.Decide(actor, authz.ActionUpdate, authz.Resource{Kind: authz.KindCategory}).Err(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.CategoryName); name != "" {
		if len(name) > maxCategoryNameLen {
			return nil, models.NewValidationError("category_name too long (max 100 characters)")
		}
		category.CategoryName = name
	}
	if in.Description != "" {
		category.Description = in.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category and, through store-level cascade, every
// post filed under it.
func (s *CategoryService) DeleteCategory(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.Decide(actor, authz.ActionDelete, authz.Resource{Kind: authz.KindCategory}).Err(); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
