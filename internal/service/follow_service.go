package service

import (
	"context"

	"flare/internal/models"
	"flare/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowResult reports whether a follow call created a new relationship or
// found an existing one.
type FollowResult struct {
	AlreadyFollowing bool
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowService) requireUser(ctx context.Context, id uint) error {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("User", id)
	}
	return nil
}

// Follow creates the relationship if absent. Following an already-followed
// user is not an error; the result tells the caller which case it was.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint) (*FollowResult, error) {
	if followerID == followeeID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}
	if err := s.requireUser(ctx, followeeID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, followerID); err != nil {
		return nil, err
	}

	created, err := s.followRepo.Create(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{AlreadyFollowing: !created}, nil
}

// Unfollow removes the relationship. Unfollowing a user who was never
// followed is a validation error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if err := s.requireUser(ctx, followeeID); err != nil {
		return err
	}
	if err := s.requireUser(ctx, followerID); err != nil {
		return err
	}

	deleted, err := s.followRepo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewValidationError("You are not following this user")
	}
	return nil
}

// Followers returns the ids of users following userID.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]uint, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.FollowerIDs(ctx, userID)
}

// Following returns the ids of users that userID follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]uint, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.FolloweeIDs(ctx, userID)
}
