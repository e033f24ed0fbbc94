package service

import (
	"context"
	"strings"

	"flare/internal/models"
	"flare/internal/repository"
)

// replyPointAward is credited to a user each time they reply to a post.
const replyPointAward = 1

type ReplyService struct {
	replyRepo repository.ReplyRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
}

type CreateReplyInput struct {
	PostID    uint
	UserID    uint
	ReplyText string
	IsAgree   *bool
}

func NewReplyService(replyRepo repository.ReplyRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *ReplyService {
	return &ReplyService{replyRepo: replyRepo, postRepo: postRepo, userRepo: userRepo}
}

// CreateReply adds a reply to a post and awards a reply point to the author.
// IsAgree stays nil when the client takes no stance.
func (s *ReplyService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Reply, error) {
	in.ReplyText = strings.TrimSpace(in.ReplyText)
	if in.ReplyText == "" {
		return nil, models.NewValidationError("reply_text is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	exists, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	userExists, err := s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, models.NewValidationError("The specified user does not exist")
	}

	reply := &models.Reply{
		PostID:    in.PostID,
		UserID:    in.UserID,
		ReplyText: in.ReplyText,
		IsAgree:   in.IsAgree,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	if err := s.userRepo.AddReplyPoints(ctx, in.UserID, replyPointAward); err != nil {
		return nil, err
	}

	return reply, nil
}

// ListReplies returns all replies on a post in chronological order. The post
// must exist.
func (s *ReplyService) ListReplies(ctx context.Context, postID uint) ([]models.Reply, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.replyRepo.ListByPost(ctx, postID)
}
