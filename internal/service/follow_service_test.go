package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"mingle/internal/authz"
	"mingle/internal/models"
)

func TestFollowServiceFollowAnonymous(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), noopUserRepo())
	_, err := svc.Follow(context.Background(), authz.Anonymous, FollowInput{FollowingID: uuid.New()})
	assertAppErrCode(t, err, "UNAUTHORIZED")
}

func TestFollowServiceFollowSelf(t *testing.T) {
	id := uuid.New()
	svc := NewFollowService(noopFollowRepo(), noopUserRepo())
	_, err := svc.Follow(context.Background(), actorFor(id), FollowInput{FollowingID: id})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestFollowServiceFollowMissingUser(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewFollowService(noopFollowRepo(), users)
	_, err := svc.Follow(context.Background(), actorFor(uuid.New()), FollowInput{FollowingID: uuid.New()})
	assertAppErrCode(t, err, "NOT_FOUND")
}

func TestFollowServiceFollowTwice(t *testing.T) {
	follows := noopFollowRepo()
	follows.existsFn = func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return true, nil }

	svc := NewFollowService(follows, noopUserRepo())
	_, err := svc.Follow(context.Background(), actorFor(uuid.New()), FollowInput{FollowingID: uuid.New()})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestFollowServiceFollow(t *testing.T) {
	follower := uuid.New()
	followee := uuid.New()
	var created *models.Follow
	follows := noopFollowRepo()
	follows.createFn = func(_ context.Context, f *models.Follow) error {
		created = f
		return nil
	}

	svc := NewFollowService(follows, noopUserRepo())
	follow, err := svc.Follow(context.Background(), actorFor(follower), FollowInput{FollowingID: followee})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || follow.UserID != follower || follow.FollowingID != followee {
		t.Fatalf("expected edge from actor to followee, got %#v", follow)
	}
}

func TestFollowServiceListFollowersMissingUser(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewFollowService(noopFollowRepo(), users)
	_, err := svc.ListFollowers(context.Background(), uuid.New(), 1, 10)
	assertAppErrCode(t, err, "NOT_FOUND")
}
