package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_Follow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("self follow rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		_, err := svc.Follow(ctx, 1, 1)
		assertValidationError(t, err)
	})

	t.Run("unknown followee is not found", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.existsFn = func(_ context.Context, id uint) (bool, error) {
			return id != 2, nil
		}
		svc := NewFollowService(noopFollowRepo(), userRepo)
		_, err := svc.Follow(ctx, 1, 2)
		assertNotFoundError(t, err)
	})

	t.Run("new relationship", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		result, err := svc.Follow(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, result.AlreadyFollowing)
	})

	t.Run("repeat follow is reported, not an error", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		followRepo.createFn = func(_ context.Context, _, _ uint) (bool, error) {
			return false, nil
		}
		svc := NewFollowService(followRepo, noopUserRepo())
		result, err := svc.Follow(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, result.AlreadyFollowing)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes existing relationship", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		require.NoError(t, svc.Unfollow(ctx, 1, 2))
	})

	t.Run("not following is a validation error", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		followRepo.deleteFn = func(_ context.Context, _, _ uint) (bool, error) {
			return false, nil
		}
		svc := NewFollowService(followRepo, noopUserRepo())
		err := svc.Unfollow(ctx, 1, 2)
		assertValidationError(t, err)
	})
}

func TestFollowService_Followers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown user is not found", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
		svc := NewFollowService(noopFollowRepo(), userRepo)
		_, err := svc.Followers(ctx, 99)
		assertNotFoundError(t, err)
	})

	t.Run("user without followers gets an empty list", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		followers, err := svc.Followers(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, followers)
		assert.Empty(t, followers)
	})
}
