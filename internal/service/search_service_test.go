package service

import (
	"context"
	"errors"
	"testing"

	"mingle/internal/models"
	"mingle/internal/repository"
)

func TestSearchServiceNoParams(t *testing.T) {
	called := false
	repo := noopSearchRepo()
	repo.postsFn = func(context.Context, repository.PostFilter) ([]models.Post, error) {
		called = true
		return nil, nil
	}
	repo.commentsFn = func(context.Context, repository.CommentFilter) ([]models.Comment, error) {
		called = true
		return nil, nil
	}
	repo.usersByEmailFn = func(context.Context, string) ([]models.User, error) {
		called = true
		return nil, nil
	}
	repo.categoriesByNameFn = func(context.Context, string) ([]models.Category, error) {
		called = true
		return nil, nil
	}

	svc := NewSearchService(repo)
	result, err := svc.Search(context.Background(), SearchInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("expected no sub-query without parameters")
	}
	if result.Users == nil || result.Posts == nil || result.Comments == nil || result.Categories == nil {
		t.Fatalf("expected all envelope keys present, got %#v", result)
	}
	if len(result.Users)+len(result.Posts)+len(result.Comments)+len(result.Categories) != 0 {
		t.Fatalf("expected empty envelope, got %#v", result)
	}
}

func TestSearchServiceEnvelope(t *testing.T) {
	repo := noopSearchRepo()
	repo.postsFn = func(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
		if f.Title != "trip" {
			t.Fatalf("expected title filter, got %#v", f)
		}
		return []models.Post{{Title: "Trip"}}, nil
	}
	repo.usersByEmailFn = func(_ context.Context, email string) ([]models.User, error) {
		if email != "a@" {
			t.Fatalf("expected email filter, got %q", email)
		}
		return []models.User{{Email: "a@example.com"}}, nil
	}

	svc := NewSearchService(repo)
	result, err := svc.Search(context.Background(), SearchInput{Title: "trip", Email: "a@"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Posts) != 1 || len(result.Users) != 1 {
		t.Fatalf("expected one post and one user, got %#v", result)
	}
	if len(result.Comments) != 0 || len(result.Categories) != 0 {
		t.Fatalf("expected untouched keys empty, got %#v", result)
	}
}

func TestSearchServiceCategoryParamHitsPostsAndCategories(t *testing.T) {
	repo := noopSearchRepo()
	repo.postsFn = func(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
		if f.CategoryName != "travel" {
			t.Fatalf("expected category filter on posts, got %#v", f)
		}
		return []models.Post{{Title: "Trip"}}, nil
	}
	repo.categoriesByNameFn = func(_ context.Context, name string) ([]models.Category, error) {
		return []models.Category{{CategoryName: "Travel"}}, nil
	}

	svc := NewSearchService(repo)
	result, err := svc.Search(context.Background(), SearchInput{Category: "travel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Posts) != 1 || len(result.Categories) != 1 {
		t.Fatalf("expected posts and categories populated, got %#v", result)
	}
}

func TestSearchServiceMalformedDatesIgnored(t *testing.T) {
	repo := noopSearchRepo()
	repo.postsFn = func(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
		if f.Start != nil || f.End != nil {
			t.Fatalf("expected malformed dates to be dropped, got %#v", f)
		}
		return nil, nil
	}

	svc := NewSearchService(repo)
	_, err := svc.Search(context.Background(), SearchInput{
		Title:     "trip",
		StartDate: "garbage",
		EndDate:   "2024-01-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSearchServiceDateRangeOnly(t *testing.T) {
	postsCalled := false
	commentsCalled := false
	repo := noopSearchRepo()
	repo.postsFn = func(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
		postsCalled = true
		if f.Start == nil || f.End == nil {
			t.Fatalf("expected date range, got %#v", f)
		}
		return nil, nil
	}
	repo.commentsFn = func(_ context.Context, f repository.CommentFilter) ([]models.Comment, error) {
		commentsCalled = true
		return nil, nil
	}

	svc := NewSearchService(repo)
	_, err := svc.Search(context.Background(), SearchInput{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !postsCalled || !commentsCalled {
		t.Fatal("expected date range to drive post and comment sub-queries")
	}
}

func TestSearchServiceSubQueryFailureSoft(t *testing.T) {
	repo := noopSearchRepo()
	repo.postsFn = func(context.Context, repository.PostFilter) ([]models.Post, error) {
		return nil, errors.New("store down")
	}
	repo.usersByEmailFn = func(context.Context, string) ([]models.User, error) {
		return []models.User{{Email: "a@example.com"}}, nil
	}

	svc := NewSearchService(repo)
	result, err := svc.Search(context.Background(), SearchInput{Title: "trip", Email: "a@"})
	if err != nil {
		t.Fatalf("expected soft failure, got %v", err)
	}
	if len(result.Posts) != 0 {
		t.Fatalf("expected failed sub-query to yield empty key, got %#v", result.Posts)
	}
	if len(result.Users) != 1 {
		t.Fatalf("expected healthy sub-query to populate, got %#v", result.Users)
	}
}
