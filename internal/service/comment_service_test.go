package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"mingle/internal/models"
)

func TestCommentServiceCreateMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewCommentService(noopCommentRepo(), posts)
	_, err := svc.CreateComment(context.Background(), actorFor(uuid.New()), CreateCommentInput{
		Comment: "nice", PostID: uuid.New(),
	})
	assertAppErrCode(t, err, "NOT_FOUND")
}

func TestCommentServiceCreateTooLong(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	_, err := svc.CreateComment(context.Background(), actorFor(uuid.New()), CreateCommentInput{
		Comment: strings.Repeat("x", 256), PostID: uuid.New(),
	})
	assertAppErrCode(t, err, "VALIDATION_ERROR")
}

func TestCommentServiceCreateForcesAuthor(t *testing.T) {
	author := uuid.New()
	var created *models.Comment
	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		created = c
		return nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	_, err := svc.CreateComment(context.Background(), actorFor(author), CreateCommentInput{
		Comment: "nice", PostID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.UserID != author {
		t.Fatalf("expected comment authored by actor, got %#v", created)
	}
}

func TestCommentServiceUpdateNotOwner(t *testing.T) {
	owner := uuid.New()
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: owner}, nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	_, err := svc.UpdateComment(context.Background(), actorFor(uuid.New()), uuid.New(), UpdateCommentInput{Comment: "edited"})
	assertAppErrCode(t, err, "FORBIDDEN")
}

func TestCommentServiceUpdateAsOwner(t *testing.T) {
	owner := uuid.New()
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: owner, Comment: "original"}, nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	comment, err := svc.UpdateComment(context.Background(), actorFor(owner), uuid.New(), UpdateCommentInput{Comment: "edited"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.Comment != "edited" {
		t.Fatalf("expected comment text to change, got %q", comment.Comment)
	}
}

func TestCommentServiceDeleteNotOwner(t *testing.T) {
	owner := uuid.New()
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: owner}, nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	err := svc.DeleteComment(context.Background(), actorFor(uuid.New()), uuid.New())
	assertAppErrCode(t, err, "FORBIDDEN")
}

func TestCommentServiceListPostCommentsMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewCommentService(noopCommentRepo(), posts)
	_, err := svc.ListPostComments(context.Background(), uuid.New(), 1, 10)
	assertAppErrCode(t, err, "NOT_FOUND")
}
