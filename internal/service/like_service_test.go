package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"mingle/internal/authz"
	"mingle/internal/models"
)

func TestLikeServiceLikeAnonymous(t *testing.T) {
	svc := NewLikeService(noopLikeRepo(), noopPostRepo())
	_, err := svc.LikePost(context.Background(), authz.Anonymous, uuid.New())
	assertAppErrCode(t, err, "UNAUTHORIZED")
}

func TestLikeServiceLikeMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewLikeService(noopLikeRepo(), posts)
	_, err := svc.LikePost(context.Background(), actorFor(uuid.New()), uuid.New())
	assertAppErrCode(t, err, "NOT_FOUND")
}

func TestLikeServiceLikeTwice(t *testing.T) {
	likes := noopLikeRepo()
	likes.existsFn = func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return true, nil }

	svc := NewLikeService(likes, noopPostRepo())
	_, err := svc.LikePost(context.Background(), actorFor(uuid.New()), uuid.New())
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestLikeServiceLike(t *testing.T) {
	user := uuid.New()
	postID := uuid.New()
	var created *models.Like
	likes := noopLikeRepo()
	likes.createFn = func(_ context.Context, l *models.Like) error {
		created = l
		return nil
	}

	svc := NewLikeService(likes, noopPostRepo())
	like, err := svc.LikePost(context.Background(), actorFor(user), postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || like.UserID != user || like.PostID != postID {
		t.Fatalf("expected like for actor on post, got %#v", like)
	}
}

func TestLikeServiceListLikesMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewLikeService(noopLikeRepo(), posts)
	_, err := svc.ListPostLikes(context.Background(), uuid.New(), 1, 10)
	assertAppErrCode(t, err, "NOT_FOUND")
}
