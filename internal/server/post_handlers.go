package server

import (
	"context"
	"time"

	"flare/internal/models"
	"flare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	page := parsePagination(c, 50)

	posts, err := s.postService.ListPosts(ctx, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		UserID   uint   `json:"user_id"`
		PromptID *uint  `json:"prompt_id"`
		PostText string `json:"post_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   req.UserID,
		PromptID: req.PromptID,
		PostText: req.PostText,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPostByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(post)
}

// GetTrendingPosts handles GET /posts/trending
func (s *Server) GetTrendingPosts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	limit := c.QueryInt("limit", 20)

	posts, err := s.postService.ListTrending(ctx, limit)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(posts)
}

// VotePost handles POST /posts/:voteType/:id
func (s *Server) VotePost(c *fiber.Ctx) error {
	kind := models.VoteKind(c.Params("voteType"))
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Vote(c.Context(), id, kind)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(post)
}
