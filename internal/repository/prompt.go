package repository

import (
	"context"
	"errors"

	"flare/internal/cache"
	"flare/internal/models"

	"gorm.io/gorm"
)

// PromptRepository defines persistence operations for prompts.
type PromptRepository interface {
	Create(ctx context.Context, prompt *models.Prompt) error
	GetByID(ctx context.Context, id uint) (*models.Prompt, error)
	List(ctx context.Context) ([]models.Prompt, error)
	ListByCategory(ctx context.Context, category string) ([]models.Prompt, error)
	Count(ctx context.Context) (int64, error)
	GetByOffset(ctx context.Context, offset int) (*models.Prompt, error)
	Delete(ctx context.Context, id uint) error
}

type promptRepository struct {
	db *gorm.DB
}

// NewPromptRepository returns a new PromptRepository implementation.
func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	if err := r.db.WithContext(ctx).Create(prompt).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *promptRepository) GetByID(ctx context.Context, id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	key := cache.PromptKey(id)

	err := cache.Aside(ctx, key, &prompt, cache.PromptTTL, func() error {
		if err := r.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Prompt", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) List(ctx context.Context) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := r.db.WithContext(ctx).Find(&prompts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return prompts, nil
}

func (r *promptRepository) ListByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&prompts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return prompts, nil
}

func (r *promptRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Prompt{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// GetByOffset fetches a single prompt at a stable position in id order.
// Used by the prompt-of-the-day selection.
func (r *promptRepository) GetByOffset(ctx context.Context, offset int) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		First(&prompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundMessage("No prompts available")
		}
		return nil, models.NewInternalError(err)
	}
	return &prompt, nil
}

func (r *promptRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Prompt{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Prompt", id)
	}
	cache.InvalidatePrompt(ctx, id)
	return nil
}
