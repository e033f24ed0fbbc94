package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flare/internal/models"
	"flare/internal/repository"
)

type PromptService struct {
	promptRepo repository.PromptRepository
	now        func() time.Time
}

type CreatePromptInput struct {
	PromptText string
	Category   string
}

func NewPromptService(promptRepo repository.PromptRepository) *PromptService {
	return &PromptService{promptRepo: promptRepo, now: time.Now}
}

func (s *PromptService) CreatePrompt(ctx context.Context, in CreatePromptInput) (*models.Prompt, error) {
	in.PromptText = strings.TrimSpace(in.PromptText)
	in.Category = strings.TrimSpace(in.Category)

	if in.PromptText == "" {
		return nil, models.NewValidationError("prompt_text is required")
	}
	if in.Category == "" {
		return nil, models.NewValidationError("category is required")
	}

	prompt := &models.Prompt{
		PromptText: in.PromptText,
		Category:   in.Category,
	}
	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *PromptService) GetPromptByID(ctx context.Context, id uint) (*models.Prompt, error) {
	return s.promptRepo.GetByID(ctx, id)
}

func (s *PromptService) ListPrompts(ctx context.Context) ([]models.Prompt, error) {
	return s.promptRepo.List(ctx)
}

// ListPromptsByCategory returns prompts in the category. A category with no
// prompts is reported as not found rather than an empty list.
func (s *PromptService) ListPromptsByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	prompts, err := s.promptRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(prompts) == 0 {
		return nil, models.NewNotFoundMessage(fmt.Sprintf("No prompts found in category '%s'", category))
	}
	return prompts, nil
}

// DailyPrompt deterministically rotates through all prompts, one per day.
// Every caller sees the same prompt on the same UTC day.
func (s *PromptService) DailyPrompt(ctx context.Context) (*models.Prompt, error) {
	count, err := s.promptRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, models.NewNotFoundMessage("No prompts available")
	}

	day := s.now().UTC().Unix() / 86400
	offset := int(day % count)
	return s.promptRepo.GetByOffset(ctx, offset)
}

func (s *PromptService) DeletePrompt(ctx context.Context, id uint) error {
	return s.promptRepo.Delete(ctx, id)
}
