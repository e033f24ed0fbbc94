package server

import (
	"flare/internal/models"
	"flare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReplies handles GET /posts/:id/replies
func (s *Server) GetReplies(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.replyService.ListReplies(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"replies": replies})
}

// CreateReply handles POST /posts/:id/replies. The agreement flag is
// tri-state; leaving it out of the body keeps it unset.
func (s *Server) CreateReply(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID    uint   `json:"user_id"`
		ReplyText string `json:"reply_text"`
		IsAgree   *bool  `json:"is_agree"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.replyService.CreateReply(c.Context(), service.CreateReplyInput{
		PostID:    postID,
		UserID:    req.UserID,
		ReplyText: req.ReplyText,
		IsAgree:   req.IsAgree,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}
