package service

import (
	"context"
	"strings"

	"flare/internal/models"
	"flare/internal/repository"
)

type PostService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	promptRepo repository.PromptRepository
}

type CreatePostInput struct {
	UserID   uint
	PromptID *uint
	PostText string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, promptRepo repository.PromptRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, promptRepo: promptRepo}
}

// CreatePost validates references before inserting. A missing author is a
// validation error because the client supplied a bad user id, not a lookup
// miss on the resource being requested.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	in.PostText = strings.TrimSpace(in.PostText)
	if in.PostText == "" {
		return nil, models.NewValidationError("post_text is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	exists, err := s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewValidationError("The specified user does not exist")
	}

	if in.PromptID != nil {
		if _, err := s.promptRepo.GetByID(ctx, *in.PromptID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		UserID:   in.UserID,
		PromptID: in.PromptID,
		PostText: in.PostText,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

// ListPostsByUser does not require the user to exist; an unknown user simply
// has no posts.
func (s *PostService) ListPostsByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

func (s *PostService) ListTrending(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.ListTrending(ctx, limit)
}

// Vote applies a single upvote or downvote to a post.
func (s *PostService) Vote(ctx context.Context, postID uint, kind models.VoteKind) (*models.Post, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Invalid vote type. Use 'upvote' or 'downvote'.")
	}
	if err := s.postRepo.IncrementVote(ctx, postID, kind); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// TotalVotes aggregates vote counters over a user's posts. The user must
// exist; a user with no posts gets zero totals.
func (s *PostService) TotalVotes(ctx context.Context, userID uint) (*models.VoteTotals, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}
	return s.postRepo.TotalVotesByUser(ctx, userID)
}
