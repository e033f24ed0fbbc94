package service

import (
	"context"
	"testing"

	"flare/internal/models"

	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn         func(context.Context, *models.User) error
	getByIDFn        func(context.Context, uint) (*models.User, error)
	getByUsernameFn  func(context.Context, string) (*models.User, error)
	listFn           func(context.Context, int, int) ([]models.User, error)
	existsFn         func(context.Context, uint) (bool, error)
	deleteFn         func(context.Context, uint) error
	addReplyPointsFn func(context.Context, uint, int) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) AddReplyPoints(ctx context.Context, id uint, delta int) error {
	return s.addReplyPointsFn(ctx, id, delta)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:         func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:        func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:  func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		listFn:           func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		existsFn:         func(_ context.Context, _ uint) (bool, error) { return true, nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		addReplyPointsFn: func(_ context.Context, _ uint, _ int) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn           func(context.Context, *models.Post) error
	getByIDFn          func(context.Context, uint) (*models.Post, error)
	listFn             func(context.Context, int, int) ([]models.Post, error)
	listByUserFn       func(context.Context, uint) ([]models.Post, error)
	listTrendingFn     func(context.Context, int) ([]models.Post, error)
	incrementVoteFn    func(context.Context, uint, models.VoteKind) error
	totalVotesByUserFn func(context.Context, uint) (*models.VoteTotals, error)
	existsFn           func(context.Context, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *postRepoStub) ListTrending(ctx context.Context, limit int) ([]models.Post, error) {
	return s.listTrendingFn(ctx, limit)
}
func (s *postRepoStub) IncrementVote(ctx context.Context, id uint, kind models.VoteKind) error {
	return s.incrementVoteFn(ctx, id, kind)
}
func (s *postRepoStub) TotalVotesByUser(ctx context.Context, userID uint) (*models.VoteTotals, error) {
	return s.totalVotesByUserFn(ctx, userID)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:      func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:         func(_ context.Context, _, _ int) ([]models.Post, error) { return nil, nil },
		listByUserFn:   func(_ context.Context, _ uint) ([]models.Post, error) { return nil, nil },
		listTrendingFn: func(_ context.Context, _ int) ([]models.Post, error) { return nil, nil },
		incrementVoteFn: func(_ context.Context, _ uint, _ models.VoteKind) error {
			return nil
		},
		totalVotesByUserFn: func(_ context.Context, userID uint) (*models.VoteTotals, error) {
			return &models.VoteTotals{UserID: userID}, nil
		},
		existsFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

// promptRepoStub is a stub for repository.PromptRepository.
type promptRepoStub struct {
	createFn         func(context.Context, *models.Prompt) error
	getByIDFn        func(context.Context, uint) (*models.Prompt, error)
	listFn           func(context.Context) ([]models.Prompt, error)
	listByCategoryFn func(context.Context, string) ([]models.Prompt, error)
	countFn          func(context.Context) (int64, error)
	getByOffsetFn    func(context.Context, int) (*models.Prompt, error)
	deleteFn         func(context.Context, uint) error
}

func (s *promptRepoStub) Create(ctx context.Context, prompt *models.Prompt) error {
	return s.createFn(ctx, prompt)
}
func (s *promptRepoStub) GetByID(ctx context.Context, id uint) (*models.Prompt, error) {
	return s.getByIDFn(ctx, id)
}
func (s *promptRepoStub) List(ctx context.Context) ([]models.Prompt, error) {
	return s.listFn(ctx)
}
func (s *promptRepoStub) ListByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	return s.listByCategoryFn(ctx, category)
}
func (s *promptRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *promptRepoStub) GetByOffset(ctx context.Context, offset int) (*models.Prompt, error) {
	return s.getByOffsetFn(ctx, offset)
}
func (s *promptRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPromptRepo() *promptRepoStub {
	return &promptRepoStub{
		createFn:         func(_ context.Context, _ *models.Prompt) error { return nil },
		getByIDFn:        func(_ context.Context, _ uint) (*models.Prompt, error) { return &models.Prompt{}, nil },
		listFn:           func(_ context.Context) ([]models.Prompt, error) { return nil, nil },
		listByCategoryFn: func(_ context.Context, _ string) ([]models.Prompt, error) { return nil, nil },
		countFn:          func(_ context.Context) (int64, error) { return 0, nil },
		getByOffsetFn:    func(_ context.Context, _ int) (*models.Prompt, error) { return &models.Prompt{}, nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// replyRepoStub is a stub for repository.ReplyRepository.
type replyRepoStub struct {
	createFn     func(context.Context, *models.Reply) error
	listByPostFn func(context.Context, uint) ([]models.Reply, error)
}

func (s *replyRepoStub) Create(ctx context.Context, reply *models.Reply) error {
	return s.createFn(ctx, reply)
}
func (s *replyRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Reply, error) {
	return s.listByPostFn(ctx, postID)
}

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		createFn:     func(_ context.Context, _ *models.Reply) error { return nil },
		listByPostFn: func(_ context.Context, _ uint) ([]models.Reply, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn      func(context.Context, uint, uint) (bool, error)
	deleteFn      func(context.Context, uint, uint) (bool, error)
	existsFn      func(context.Context, uint, uint) (bool, error)
	followerIDsFn func(context.Context, uint) ([]uint, error)
	followeeIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followerIDsFn(ctx, userID)
}
func (s *followRepoStub) FolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followeeIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:      func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		deleteFn:      func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		existsFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followerIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return []uint{}, nil },
		followeeIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return []uint{}, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "NOT_FOUND")
}
