package repository

import (
	"context"
	"errors"

	"flare/internal/cache"
	"flare/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Post, error)
	ListTrending(ctx context.Context, limit int) ([]models.Post, error)
	IncrementVote(ctx context.Context, id uint, kind models.VoteKind) error
	TotalVotesByUser(ctx context.Context, userID uint) (*models.VoteTotals, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListTrending orders posts by net score. Ties fall back to recency.
func (r *postRepository) ListTrending(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Order("(upvote_count - downvote_count) DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// IncrementVote bumps a vote counter with a single SQL-side increment so
// concurrent votes on the same post are never lost.
func (r *postRepository) IncrementVote(ctx context.Context, id uint, kind models.VoteKind) error {
	var column string
	switch kind {
	case models.VoteUpvote:
		column = "upvote_count"
	case models.VoteDownvote:
		column = "downvote_count"
	default:
		return models.NewValidationError("Invalid vote type. Use 'upvote' or 'downvote'.")
	}

	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// TotalVotesByUser sums vote counters across all of a user's posts. A user
// with no posts gets zero totals, not an error.
func (r *postRepository) TotalVotesByUser(ctx context.Context, userID uint) (*models.VoteTotals, error) {
	totals := models.VoteTotals{UserID: userID}
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("COALESCE(SUM(upvote_count), 0) AS total_upvotes, COALESCE(SUM(downvote_count), 0) AS total_downvotes").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &totals, nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
