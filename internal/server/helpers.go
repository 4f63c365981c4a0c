package server

import (
	"errors"

	"mingle/internal/authz"
	"mingle/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const maxPageSize = 100

// parsePage extracts the page and page_size query parameters.
func (s *Server) parsePage(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("page_size", s.config.PageSize)
	if pageSize <= 0 {
		pageSize = s.config.PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}

// parseUUID extracts a route parameter as a UUID. On failure it writes a 400
// JSON response and returns errResponseWritten; callers return nil then.
func (s *Server) parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return uuid.Nil, errResponseWritten
	}
	return id, nil
}

// actor builds the authorization actor for the authenticated request. The
// user row is fetched (cache-aside) so staff flags are current, not whatever
// the token was minted with.
func (s *Server) actor(c *fiber.Ctx) (authz.Actor, error) {
	userID, ok := c.Locals("userID").(uuid.UUID)
	if !ok {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
		return authz.Anonymous, errResponseWritten
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		// Only a confirmed missing account reads as revoked credentials;
		// store failures keep their own status.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			_ = models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Account no longer exists"))
		} else {
			_ = models.RespondWithAppError(c, err)
		}
		return authz.Anonymous, errResponseWritten
	}

	return authz.ActorForUser(user), nil
}
