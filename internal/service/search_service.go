package service

import (
	"context"
	"log/slog"
	"time"

	"mingle/internal/models"
	"mingle/internal/repository"
)

type SearchService struct {
	searchRepo repository.SearchRepository
}

// SearchInput carries the raw query parameters of an aggregate search.
// Date strings are YYYY-MM-DD; a malformed or half-open range is ignored.
type SearchInput struct {
	Title     string
	Category  string
	Comment   string
	Email     string
	StartDate string
	EndDate   string
}

// SearchResult is the four-key search envelope. Every key is always present;
// a filter that was not supplied yields an empty list.
type SearchResult struct {
	Users      []models.User     `json:"users"`
	Posts      []models.Post     `json:"posts"`
	Comments   []models.Comment  `json:"comments"`
	Categories []models.Category `json:"category"`
}

func NewSearchService(searchRepo repository.SearchRepository) *SearchService {
	return &SearchService{searchRepo: searchRepo}
}

// parseDateRange returns the inclusive [start, end] day range, or nils when
// either bound is missing or malformed.
func parseDateRange(startStr, endStr string) (*time.Time, *time.Time) {
	if startStr == "" || endStr == "" {
		return nil, nil
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return nil, nil
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return nil, nil
	}
	if end.Before(start) {
		return nil, nil
	}
	return &start, &end
}

// Search fans out to the per-entity sub-queries and assembles the envelope.
// A failing sub-query is logged and leaves its key empty rather than failing
// the whole request.
func (s *SearchService) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	result := &SearchResult{
		Users:      []models.User{},
		Posts:      []models.Post{},
		Comments:   []models.Comment{},
		Categories: []models.Category{},
	}

	start, end := parseDateRange(in.StartDate, in.EndDate)

	postFilter := repository.PostFilter{
		Title:        in.Title,
		CategoryName: in.Category,
		Start:        start,
		End:          end,
	}
	if !postFilter.Empty() {
		posts, err := s.searchRepo.Posts(ctx, postFilter)
		if err != nil {
			slog.ErrorContext(ctx, "search: post sub-query failed", "error", err)
		} else {
			result.Posts = posts
		}
	}

	commentFilter := repository.CommentFilter{
		Text:  in.Comment,
		Start: start,
		End:   end,
	}
	if !commentFilter.Empty() {
		comments, err := s.searchRepo.Comments(ctx, commentFilter)
		if err != nil {
			slog.ErrorContext(ctx, "search: comment sub-query failed", "error", err)
		} else {
			result.Comments = comments
		}
	}

	if in.Email != "" {
		users, err := s.searchRepo.UsersByEmail(ctx, in.Email)
		if err != nil {
			slog.ErrorContext(ctx, "search: user sub-query failed", "error", err)
		} else {
			result.Users = users
		}
	}

	if in.Category != "" {
		categories, err := s.searchRepo.CategoriesByName(ctx, in.Category)
		if err != nil {
			slog.ErrorContext(ctx, "search: category sub-query failed", "error", err)
		} else {
			result.Categories = categories
		}
	}

	return result, nil
}
