package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles business logic for roles
type RoleService struct {
	repo      repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(repo repository.RoleRepositoryInterface, validator *validator.Validate) *RoleService {
	return &RoleService{
		repo:      repo,
		validator: validator,
	}
}

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description,omitempty" validate:"max=200"`
	Permissions []string `json:"permissions" validate:"required"`
}

// UpdateRoleRequest represents the request to update a role
type UpdateRoleRequest struct {
	Description string   `json:"description,omitempty" validate:"max=200"`
	Permissions []string `json:"permissions" validate:"required"`
}

// RoleResponse represents the response for role operations
type RoleResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Permissions    []string  `json:"permissions"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// RoleListResponse represents a paginated list of roles
type RoleListResponse struct {
	Roles    []RoleResponse `json:"roles"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new role in the given organization
func (s *RoleService) Create(orgID uuid.UUID, req *CreateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(orgID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing role by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRoleExists
	}

	perms, err := json.Marshal(req.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions: %w", err)
	}

	role := &models.Role{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		Name:        req.Name,
		Description: req.Description,
		Permissions: perms,
	}

	if err := s.repo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return s.toResponse(role)
}

// GetByID retrieves a role by ID scoped to an organization
func (s *RoleService) GetByID(orgID, id uuid.UUID) (*RoleResponse, error) {
	role, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return s.toResponse(role)
}

// GetByOrganization retrieves roles of an organization with pagination
func (s *RoleService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*RoleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	roles, total, err := s.repo.GetByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		resp, err := s.toResponse(&roles[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &RoleListResponse{
		Roles:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a role scoped to an organization
func (s *RoleService) Update(orgID, id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}

	role, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	perms, err := json.Marshal(req.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions: %w", err)
	}

	role.Description = req.Description
	role.Permissions = perms

	if err := s.repo.Update(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return s.toResponse(role)
}

// Delete deletes a role scoped to an organization
func (s *RoleService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

// Catalog returns the known permission strings grouped by module
func (s *RoleService) Catalog() map[string][]string {
	return models.PermissionCatalog()
}

// validatePermissions rejects permission strings outside the catalog
func validatePermissions(perms []string) error {
	known := make(map[string]struct{})
	for _, p := range models.AllPermissions() {
		known[p] = struct{}{}
	}
	for _, p := range perms {
		if _, ok := known[p]; !ok {
			return apperrors.NewValidationError("permissions", fmt.Sprintf("unknown permission %q", p))
		}
	}
	return nil
}

// toResponse converts a role model to response
func (s *RoleService) toResponse(role *models.Role) (*RoleResponse, error) {
	perms, err := role.PermissionList()
	if err != nil {
		return nil, fmt.Errorf("failed to parse permissions of role %q: %w", role.Name, err)
	}
	if perms == nil {
		perms = []string{}
	}

	return &RoleResponse{
		ID:             role.ID,
		OrganizationID: role.OrganizationID,
		Name:           role.Name,
		Description:    role.Description,
		Permissions:    perms,
		CreatedAt:      role.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      role.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
