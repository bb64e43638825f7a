package service

import (
	"errors"
	"fmt"

	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users within an organization
type UserService struct {
	repo      repository.UserRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, roleRepo repository.RoleRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		roleRepo:  roleRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	IsActive       bool       `json:"is_active"`
	IsSuperAdmin   bool       `json:"is_super_admin"`
	Roles          []string   `json:"roles,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new user in the given organization. The super-admin flag
// is never settable through this path.
func (s *UserService) Create(orgID uuid.UUID, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		OrganizationID: &orgID,
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		IsActive:       true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID scoped to an organization
func (s *UserService) GetByID(orgID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByOrganization retrieves users of an organization with pagination
func (s *UserService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a user scoped to an organization
func (s *UserService) Update(orgID, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// Delete deletes a user scoped to an organization
func (s *UserService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// AssignRole assigns a role to a user. Both records must belong to the same
// organization; a role from another tenant surfaces as role-not-found.
func (s *UserService) AssignRole(orgID, userID, roleID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByIDForOrg(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	role, err := s.roleRepo.GetByIDForOrg(orgID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	for i := range user.Roles {
		if user.Roles[i].ID == role.ID {
			return nil, apperrors.ErrRoleAssigned
		}
	}

	if err := s.repo.AssignRole(user, role); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	user.Roles = append(user.Roles, *role)
	return s.toResponse(user), nil
}

// UnassignRole removes a role from a user
func (s *UserService) UnassignRole(orgID, userID, roleID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByIDForOrg(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	role, err := s.roleRepo.GetByIDForOrg(orgID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	assigned := false
	remaining := make([]models.Role, 0, len(user.Roles))
	for i := range user.Roles {
		if user.Roles[i].ID == role.ID {
			assigned = true
			continue
		}
		remaining = append(remaining, user.Roles[i])
	}
	if !assigned {
		return nil, apperrors.ErrRoleNotAssigned
	}

	if err := s.repo.UnassignRole(user, role); err != nil {
		return nil, fmt.Errorf("failed to unassign role: %w", err)
	}

	user.Roles = remaining
	return s.toResponse(user), nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	roles := make([]string, len(user.Roles))
	for i := range user.Roles {
		roles[i] = user.Roles[i].Name
	}

	return &UserResponse{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		IsActive:       user.IsActive,
		IsSuperAdmin:   user.IsSuperAdmin,
		Roles:          roles,
		CreatedAt:      user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
