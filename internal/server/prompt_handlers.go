package server

import (
	"context"
	"time"

	"flare/internal/models"
	"flare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPrompts handles GET /prompts
func (s *Server) GetPrompts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	prompts, err := s.promptService.ListPrompts(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(prompts)
}

// CreatePrompt handles POST /prompts
func (s *Server) CreatePrompt(c *fiber.Ctx) error {
	var req struct {
		PromptText string `json:"prompt_text"`
		Category   string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prompt, err := s.promptService.CreatePrompt(c.Context(), service.CreatePromptInput{
		PromptText: req.PromptText,
		Category:   req.Category,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(prompt)
}

// GetPrompt handles GET /prompts/:id
func (s *Server) GetPrompt(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	prompt, err := s.promptService.GetPromptByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(prompt)
}

// GetPromptsByCategory handles GET /prompts/category/:category
func (s *Server) GetPromptsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	prompts, err := s.promptService.ListPromptsByCategory(c.Context(), category)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(prompts)
}

// GetDailyPrompt handles GET /prompts/daily
func (s *Server) GetDailyPrompt(c *fiber.Ctx) error {
	prompt, err := s.promptService.DailyPrompt(c.Context())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(prompt)
}

// DeletePrompt handles DELETE /prompts/:id. Posts referencing the prompt keep
// running with a null prompt reference.
func (s *Server) DeletePrompt(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.promptService.DeletePrompt(c.Context(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Prompt deleted successfully."})
}
