package service

import (
	"errors"
	"fmt"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorService handles business logic for vendors
type VendorService struct {
	repo      repository.VendorRepositoryInterface
	validator *validator.Validate
}

// NewVendorService creates a new vendor service
func NewVendorService(repo repository.VendorRepositoryInterface, validator *validator.Validate) *VendorService {
	return &VendorService{
		repo:      repo,
		validator: validator,
	}
}

// CreateVendorRequest represents the request to create a vendor
type CreateVendorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactName string `json:"contact_name,omitempty" validate:"max=200"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone,omitempty" validate:"max=30"`
	City        string `json:"city,omitempty" validate:"max=100"`
	TaxNumber   string `json:"tax_number,omitempty" validate:"max=50"`
}

// UpdateVendorRequest represents the request to update a vendor
type UpdateVendorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactName string `json:"contact_name,omitempty" validate:"max=200"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone,omitempty" validate:"max=30"`
	City        string `json:"city,omitempty" validate:"max=100"`
	TaxNumber   string `json:"tax_number,omitempty" validate:"max=50"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// VendorResponse represents the response for vendor operations
type VendorResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	ContactName    string    `json:"contact_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	City           string    `json:"city"`
	TaxNumber      string    `json:"tax_number"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// VendorListResponse represents a paginated list of vendors
type VendorListResponse struct {
	Vendors  []VendorResponse `json:"vendors"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new vendor in the given organization
func (s *VendorService) Create(orgID uuid.UUID, req *CreateVendorRequest) (*VendorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(orgID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing vendor by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrVendorExists
	}

	vendor := &models.Vendor{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		City:        req.City,
		TaxNumber:   req.TaxNumber,
		IsActive:    true,
	}

	if err := s.repo.Create(vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return s.toResponse(vendor), nil
}

// GetByID retrieves a vendor by ID scoped to an organization
func (s *VendorService) GetByID(orgID, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	return s.toResponse(vendor), nil
}

// GetByOrganization retrieves vendors of an organization with pagination
func (s *VendorService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*VendorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	vendors, total, err := s.repo.GetByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendors: %w", err)
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = *s.toResponse(&vendors[i])
	}

	return &VendorListResponse{
		Vendors:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a vendor scoped to an organization
func (s *VendorService) Update(orgID, id uuid.UUID, req *UpdateVendorRequest) (*VendorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vendor, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	vendor.Name = req.Name
	vendor.ContactName = req.ContactName
	vendor.Email = req.Email
	vendor.Phone = req.Phone
	vendor.City = req.City
	vendor.TaxNumber = req.TaxNumber
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := s.repo.Update(vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return s.toResponse(vendor), nil
}

// Delete deletes a vendor scoped to an organization
func (s *VendorService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

// toResponse converts a vendor model to response
func (s *VendorService) toResponse(vendor *models.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:             vendor.ID,
		OrganizationID: vendor.OrganizationID,
		Name:           vendor.Name,
		ContactName:    vendor.ContactName,
		Email:          vendor.Email,
		Phone:          vendor.Phone,
		City:           vendor.City,
		TaxNumber:      vendor.TaxNumber,
		IsActive:       vendor.IsActive,
		CreatedAt:      vendor.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      vendor.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
