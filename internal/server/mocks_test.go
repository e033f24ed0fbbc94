package server

import (
	"context"

	"flare/internal/config"
	"flare/internal/models"
	"flare/internal/repository"
	"flare/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) AddReplyPoints(ctx context.Context, id uint, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockPromptRepository is a mock of the PromptRepository interface
type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) GetByID(ctx context.Context, id uint) (*models.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) List(ctx context.Context) ([]models.Prompt, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) ListByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromptRepository) GetByOffset(ctx context.Context, offset int) (*models.Prompt, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListTrending(ctx context.Context, limit int) ([]models.Post, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) IncrementVote(ctx context.Context, id uint, kind models.VoteKind) error {
	args := m.Called(ctx, id, kind)
	return args.Error(0)
}

func (m *MockPostRepository) TotalVotesByUser(ctx context.Context, userID uint) (*models.VoteTotals, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteTotals), args.Error(1)
}

func (m *MockPostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockReplyRepository is a mock of the ReplyRepository interface
type MockReplyRepository struct {
	mock.Mock
}

func (m *MockReplyRepository) Create(ctx context.Context, reply *models.Reply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *MockReplyRepository) ListByPost(ctx context.Context, postID uint) ([]models.Reply, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.Reply), args.Error(1)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFollowRepository) FolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uint), args.Error(1)
}

type testRepos struct {
	users   *MockUserRepository
	prompts *MockPromptRepository
	posts   *MockPostRepository
	replies *MockReplyRepository
	follows *MockFollowRepository
}

// newTestServer wires a Server over mock repositories with real services.
func newTestServer() (*Server, *testRepos) {
	repos := &testRepos{
		users:   new(MockUserRepository),
		prompts: new(MockPromptRepository),
		posts:   new(MockPostRepository),
		replies: new(MockReplyRepository),
		follows: new(MockFollowRepository),
	}

	var (
		userRepo   repository.UserRepository   = repos.users
		promptRepo repository.PromptRepository = repos.prompts
		postRepo   repository.PostRepository   = repos.posts
		replyRepo  repository.ReplyRepository  = repos.replies
		followRepo repository.FollowRepository = repos.follows
	)

	s := &Server{
		config: &config.Config{
			JWTSecret: "test-secret-for-handlers-0123456789",
			Env:       "test",
		},
		userRepo:   userRepo,
		promptRepo: promptRepo,
		postRepo:   postRepo,
		replyRepo:  replyRepo,
		followRepo: followRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.promptService = service.NewPromptService(promptRepo)
	s.postService = service.NewPostService(postRepo, userRepo, promptRepo)
	s.replyService = service.NewReplyService(replyRepo, postRepo, userRepo)
	s.followService = service.NewFollowService(followRepo, userRepo)
	return s, repos
}
