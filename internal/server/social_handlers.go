package server

import (
	"mingle/internal/models"
	"mingle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:post_id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseUUID(c, "post_id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.LikePost(c.Context(), actor, postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// GetPostLikes handles GET /api/posts/:post_id/likes
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseUUID(c, "post_id")
	if err != nil {
		return nil
	}

	page, pageSize := s.parsePage(c)
	result, err := s.likeService.ListPostLikes(c.Context(), postID, page, pageSize)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(result)
}

// Follow handles POST /api/follow
func (s *Server) Follow(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	var req service.FollowInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	follow, err := s.followService.Follow(c.Context(), actor, req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// GetUserFollowers handles GET /api/users/:user_id/followers
func (s *Server) GetUserFollowers(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "user_id")
	if err != nil {
		return nil
	}

	page, pageSize := s.parsePage(c)
	result, err := s.followService.ListFollowers(c.Context(), userID, page, pageSize)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(result)
}
