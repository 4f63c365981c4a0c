package service

import (
	"context"

	"github.com/google/uuid"

	"mingle/internal/authz"
	"mingle/internal/models"
	"mingle/internal/pagination"
	"mingle/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type FollowInput struct {
	FollowingID uuid.UUID `json:"user_following"`
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates a follow edge from the actor to another user. Self-follows
// are rejected before the duplicate check so the error is stable.
func (s *FollowService) Follow(ctx context.Context, actor authz.Actor, in FollowInput) (*models.Follow, error) {
	if err := authz.Decide(actor, authz.ActionCreate, authz.Resource{Kind: authz.KindFollow}).Err(); err != nil {
		return nil, err
	}

	if in.FollowingID == uuid.Nil {
		return nil, models.NewValidationError("user_following is required")
	}
	if in.FollowingID == actor.ID {
		return nil, models.NewValidationError("cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, in.FollowingID); err != nil {
		return nil, err
	}

	following, err := s.followRepo.Exists(ctx, actor.ID, in.FollowingID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, models.NewValidationError("already following")
	}

	follow := &models.Follow{
		UserID:      actor.ID,
		FollowingID: in.FollowingID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// ListFollowers returns the users following userID, newest edge first.
func (s *FollowService) ListFollowers(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Follow], error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID, page, pageSize)
}
