package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/core/services"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/ecovault/eco_finance_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID int64, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "greta",
		Name:     "Greta T",
		Email:    "greta@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "greta").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "greta" && user.PasswordHash != "" && user.PasswordHash != "password123"
	})).Return(int64(42), nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(42), created.UserID)
	suite.Equal("greta", created.Username)
	suite.True(utils.CheckPasswordHash("password123", created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "greta",
		Name:     "Greta T",
		Email:    "greta@example.com",
		Password: "password123",
	}

	existing := &domain.User{UserID: 7, Username: "greta"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "greta").Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "flaky",
		Name:     "Flaky User",
		Email:    "flaky@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "flaky").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("domain.User")).Return(int64(0), assert.AnError).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: 1, Username: "greta", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "greta").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "greta", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(int64(1), got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: 1, Username: "greta", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "greta").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "greta", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.User{UserID: 5, Username: "greta", Name: "Old Name", Email: "old@example.com"}
	newName := "New Name"

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == newName && user.Email == "old@example.com"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, 5, dto.UpdateUserRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("old@example.com", updated.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateUser(ctx, 99, dto.UpdateUserRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers Tests ---
func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	users := []domain.User{
		{UserID: 1, Username: "greta"},
		{UserID: 2, Username: "david"},
	}

	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(users, nil).Once()

	got, err := suite.service.ListUsers(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal("greta", got[0].Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---
func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("ClearRefreshToken", ctx, int64(5)).Return(nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, int64(5), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, 5)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("ClearRefreshToken", ctx, int64(99)).Return(nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, int64(99), mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
