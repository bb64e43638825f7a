package auth_test

import (
	"testing"

	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/config"
	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUsers   *mocks.MockUserRepositoryInterface
	authService *auth.AuthService
	cfg         *config.Config
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.cfg = &config.Config{
		JWTSecret:          "test-secret",
		AccessTokenMinutes: 15,
		RefreshTokenHours:  24,
	}
	suite.authService = auth.NewAuthService(suite.cfg, suite.mockUsers)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) testUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)

	orgID := uuid.New()
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: &orgID,
		Email:          "jane.doe@example.com",
		PasswordHash:   string(hash),
		FirstName:      "Jane",
		LastName:       "Doe",
		IsActive:       true,
	}
}

// TestLoginSuccess tests logging in with valid credentials
func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	user := suite.testUser("password123")

	suite.mockUsers.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.Equal(suite.T(), "bearer", response.TokenType)
	assert.Equal(suite.T(), user.Email, response.Profile.Email)

	// The issued access token must validate and carry the user identity
	claims, err := suite.authService.ValidateJWT(response.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), user.Email, claims.Email)
	assert.False(suite.T(), claims.IsSuperAdmin)
}

// TestLoginWrongPassword tests that a wrong password is rejected
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.testUser("password123")

	suite.mockUsers.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "not-the-password",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that unknown emails get the same error as wrong passwords
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUsers.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginInactiveUser tests that deactivated accounts cannot log in
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	user := suite.testUser("password123")
	user.IsActive = false

	suite.mockUsers.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
}

// TestRefreshRotatesToken tests that a refresh token can be used exactly once
func (suite *AuthServiceTestSuite) TestRefreshRotatesToken() {
	user := suite.testUser("password123")

	suite.mockUsers.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	login, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})
	suite.Require().NoError(err)

	suite.mockUsers.EXPECT().
		GetByIDWithRoles(user.ID).
		Return(user, nil).
		Times(1)

	refreshed, err := suite.authService.Refresh(login.RefreshToken)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), refreshed)
	assert.NotEqual(suite.T(), login.RefreshToken, refreshed.RefreshToken)

	// The old token was rotated out and must no longer work
	again, err := suite.authService.Refresh(login.RefreshToken)
	assert.Nil(suite.T(), again)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestRefreshUnknownToken tests refreshing with a token that was never issued
func (suite *AuthServiceTestSuite) TestRefreshUnknownToken() {
	response, err := suite.authService.Refresh("never-issued")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestLogoutInvalidatesRefreshToken tests that logout revokes the refresh token
func (suite *AuthServiceTestSuite) TestLogoutInvalidatesRefreshToken() {
	user := suite.testUser("password123")

	suite.mockUsers.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	login, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})
	suite.Require().NoError(err)

	suite.authService.Logout(login.RefreshToken)

	response, err := suite.authService.Refresh(login.RefreshToken)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestValidateJWTRejectsTamperedToken tests token validation against a wrong secret
func (suite *AuthServiceTestSuite) TestValidateJWTRejectsTamperedToken() {
	user := suite.testUser("password123")

	suite.mockUsers.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	login, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})
	suite.Require().NoError(err)

	otherService := auth.NewAuthService(&config.Config{
		JWTSecret:          "a-different-secret",
		AccessTokenMinutes: 15,
		RefreshTokenHours:  24,
	}, suite.mockUsers)

	claims, err := otherService.ValidateJWT(login.AccessToken)
	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
