package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"business-suite-backend/internal/config"
	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserProvider defines the user lookups the auth service needs
type UserProvider interface {
	GetByEmail(email string) (*models.User, error)
	GetByIDWithRoles(id uuid.UUID) (*models.User, error)
}

// RefreshTokenData stores information about an issued refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id"`
	Email                string    `json:"email" example:"jane.doe@example.com"`
	IsSuperAdmin         bool      `json:"is_super_admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService provides authentication functionality
type AuthService struct {
	cfg           *config.Config
	users         UserProvider
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	tokenMutex    sync.RWMutex                 // Protect the refresh token store
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, users UserProvider) *AuthService {
	return &AuthService{
		cfg:           cfg,
		users:         users,
		refreshTokens: make(map[string]*RefreshTokenData),
	}
}

// LoginRequest represents the credentials for password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the slimmed-down user view returned by auth endpoints
type UserProfile struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	IsSuperAdmin   bool       `json:"is_super_admin"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken"`
	Profile      UserProfile `json:"profile"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Login verifies email/password credentials and issues a token pair
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		// Same error for unknown email and wrong password
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	accessToken, expiresIn, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.issueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    expiresIn,
		RefreshToken: refreshToken,
		Profile:      toProfile(user),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The used
// refresh token is rotated out of the store.
func (s *AuthService) Refresh(refreshToken string) (*LoginResponse, error) {
	s.tokenMutex.Lock()
	data, exists := s.refreshTokens[refreshToken]
	if exists {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(data.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.users.GetByIDWithRoles(data.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	accessToken, expiresIn, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, err := s.issueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    expiresIn,
		RefreshToken: newRefreshToken,
		Profile:      toProfile(user),
	}, nil
}

// Logout invalidates a refresh token. Access tokens stay valid until expiry.
func (s *AuthService) Logout(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// ValidateJWT parses and validates an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, int64, error) {
	ttl := s.cfg.AccessTokenTTL()
	now := time.Now()

	claims := &AuthClaims{
		UserID:       user.ID,
		Email:        user.Email,
		IsSuperAdmin: user.IsSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "business-suite-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int64(ttl.Seconds()), nil
}

func (s *AuthService) issueRefreshToken(user *models.User) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(raw)

	s.tokenMutex.Lock()
	s.refreshTokens[token] = &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL()),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return token, nil
}

func toProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		OrganizationID: user.OrganizationID,
		IsSuperAdmin:   user.IsSuperAdmin,
	}
}
