package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/ecovault/eco_finance_app/internal/middleware"
	"github.com/ecovault/eco_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockUserService
	jwtSecret   string
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockUserService)

	v1 := suite.router.Group("/api/v1")
	registerUserRoutes(v1, suite.mockService)
}

func (suite *UserHandlerTestSuite) generateTestToken(userID int64) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "efa-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *UserHandlerTestSuite) TestListUsers_Success() {
	users := []domain.User{
		{UserID: 1, Username: "greta", Name: "Greta T", Email: "greta@example.com"},
		{UserID: 2, Username: "david", Name: "David A", Email: "david@example.com"},
	}

	suite.mockService.On("ListUsers", mock.Anything, 20, 0).Return(users, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(1))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Users, 2)
	suite.Equal("greta", resp.Users[0].Username)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteMe_Success() {
	suite.mockService.On("DeleteUser", mock.Anything, int64(42)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(42))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteMe_NoAuth() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteUser")
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
