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

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url"`
	CategoryID uuid.UUID `json:"category_id"`
}

type UpdatePostInput struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	ImageURL   string     `json:"image_url"`
	CategoryID *uuid.UUID `json:"category_id"`
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{postRepo: postRepo, categoryRepo: categoryRepo}
}

const maxPostTitleLen = 100

// CreatePost files a new post under an existing category. The author is
// always the actor; the payload cannot attribute the post to someone else.
func (s *PostService) CreatePost(ctx context.Context, actor authz.Actor, in CreatePostInput) (*models.Post, error) {
	if err := authz.Decide(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindPost}).Err(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if len(title) > maxPostTitleLen {
		return nil, models.NewValidationError("title too long (max 100 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	if in.CategoryID == uuid.Nil {
		return nil, models.NewValidationError("category_id is required")
	}
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      title,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		CategoryID: in.CategoryID,
		UserID:     actor.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, page, pageSize int) (*pagination.Page[models.Post], error) {
	return s.postRepo.List(ctx, page, pageSize)
}

func (s *PostService) UpdatePost(ctx context.Context, actor authz.Actor, id uuid.UUID, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := authz.Decide(actor, authz.ActionUpdate, authz.Resource{Kind: authz.KindPost, OwnerID: post.UserID})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		if len(title) > maxPostTitleLen {
			return nil, models.NewValidationError("title too long (max 100 characters)")
		}
		post.Title = title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}
	if in.CategoryID != nil && *in.CategoryID != uuid.Nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = *in.CategoryID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	decision := authz.Decide(actor, authz.ActionDelete, authz.Resource{Kind: authz.KindPost, OwnerID: post.UserID})
	if err := decision.Err(); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, id)
}
