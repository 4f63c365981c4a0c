package server

import (
	"mingle/internal/models"
	"mingle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search. Recognized query parameters: title,
// category, comment, email, start_date, end_date. No parameters yields the
// empty envelope, not an error.
func (s *Server) Search(c *fiber.Ctx) error {
	in := service.SearchInput{
		Title:     c.Query("title"),
		Category:  c.Query("category"),
		Comment:   c.Query("comment"),
		Email:     c.Query("email"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	result, err := s.searchService.Search(c.Context(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(result)
}
