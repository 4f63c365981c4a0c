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

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Comment string    `json:"comment"`
	PostID  uuid.UUID `json:"post_id"`
}

type UpdateCommentInput struct {
	Comment string `json:"comment"`
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

const maxCommentLen = 255

// CreateComment attaches a comment to an existing post, authored by the actor.
func (s *CommentService) CreateComment(ctx context.Context, actor authz.Actor, in CreateCommentInput) (*models.Comment, error) {
	if err := authz.Decide(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindComment}).Err(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Comment)
	if text == "" {
		return nil, models.NewValidationError("comment is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("comment too long (max 255 characters)")
	}
	if in.PostID == uuid.Nil {
		return nil, models.NewValidationError("post_id is required")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Comment: text,
		PostID:  in.PostID,
		UserID:  actor.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) ListComments(ctx context.Context, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return s.commentRepo.List(ctx, page, pageSize)
}

// ListPostComments returns the comments on a post, newest first. A missing
// post is reported rather than served as an empty page.
func (s *CommentService) ListPostComments(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, page, pageSize)
}

func (s *CommentService) ListUserComments(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return s.commentRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *CommentService) UpdateComment(ctx context.Context, actor authz.Actor, id uuid.UUID, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := authz.Decide(actor, authz.ActionUpdate, authz.Resource{Kind: authz.KindComment, OwnerID: comment.UserID})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Comment)
	if text == "" {
		return nil, models.NewValidationError("comment is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("comment too long (max 255 characters)")
	}
	comment.Comment = text

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	decision := authz.Decide(actor, authz.ActionDelete, authz.Resource{Kind: authz.KindComment, OwnerID: comment.UserID})
	if err := decision.Err(); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, id)
}
