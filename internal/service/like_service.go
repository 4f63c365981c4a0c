package service

import (
	"context"

	"github.com/google/uuid"

	"mingle/internal/authz"
	"mingle/internal/models"
	"mingle/internal/pagination"
	"mingle/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, postRepo: postRepo}
}

// LikePost records the actor's like on a post. A second like of the same post
// is rejected, never toggled; the pre-check keeps the common path cheap and
// the unique index settles concurrent duplicates.
func (s *LikeService) LikePost(ctx context.Context, actor authz.Actor, postID uuid.UUID) (*models.Like, error) {
	if err := authz.Decide(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindLike}).Err(); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Exists(ctx, postID, actor.ID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewValidationError("already liked")
	}

	like := &models.Like{
		PostID: postID,
		UserID: actor.ID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// ListPostLikes returns the likes on a post, newest first.
func (s *LikeService) ListPostLikes(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Like], error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByPost(ctx, postID, page, pageSize)
}
