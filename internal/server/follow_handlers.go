package server

import (
	"flare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFollowers handles GET /users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"followers": followers})
}

// GetFollowing handles GET /users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Following(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// FollowUser handles POST /users/:id/followers. The path id is the user being
// followed; the follower id comes from the body. Following an already-followed
// user succeeds with a distinct message instead of erroring.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		FollowerID uint `json:"follower_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.FollowerID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Follower user ID is required."))
	}

	result, err := s.followService.Follow(c.Context(), req.FollowerID, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	if result.AlreadyFollowing {
		return c.JSON(fiber.Map{"message": "You are already following this user."})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User followed successfully."})
}

// UnfollowUser handles DELETE /users/:id/followers/:followerId
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID, err := s.parseID(c, "followerId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), followerID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "User unfollowed successfully."})
}
