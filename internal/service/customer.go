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

// CustomerService handles business logic for CRM customers
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	validator *validator.Validate
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repository.CustomerRepositoryInterface, validator *validator.Validate) *CustomerService {
	return &CustomerService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCustomerRequest represents the request to create a customer
type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactName  string `json:"contact_name,omitempty" validate:"max=200"`
	Email        string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone,omitempty" validate:"max=30"`
	BillingCity  string `json:"billing_city,omitempty" validate:"max=100"`
	BillingState string `json:"billing_state,omitempty" validate:"max=100"`
	TaxNumber    string `json:"tax_number,omitempty" validate:"max=50"`
}

// UpdateCustomerRequest represents the request to update a customer
type UpdateCustomerRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactName  string `json:"contact_name,omitempty" validate:"max=200"`
	Email        string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone,omitempty" validate:"max=30"`
	BillingCity  string `json:"billing_city,omitempty" validate:"max=100"`
	BillingState string `json:"billing_state,omitempty" validate:"max=100"`
	TaxNumber    string `json:"tax_number,omitempty" validate:"max=50"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// CustomerResponse represents the response for customer operations
type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	ContactName    string    `json:"contact_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BillingCity    string    `json:"billing_city"`
	BillingState   string    `json:"billing_state"`
	TaxNumber      string    `json:"tax_number"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// CustomerListResponse represents a paginated list of customers
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new customer in the given organization
func (s *CustomerService) Create(orgID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(orgID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing customer by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCustomerExists
	}

	customer := &models.Customer{
		TenantModel:  models.TenantModel{OrganizationID: orgID},
		Name:         req.Name,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		BillingCity:  req.BillingCity,
		BillingState: req.BillingState,
		TaxNumber:    req.TaxNumber,
		IsActive:     true,
	}

	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return s.toResponse(customer), nil
}

// GetByID retrieves a customer by ID scoped to an organization. A foreign
// organization's customer ID behaves exactly like a missing one.
func (s *CustomerService) GetByID(orgID, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return s.toResponse(customer), nil
}

// GetByOrganization retrieves customers of an organization with pagination
func (s *CustomerService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	customers, total, err := s.repo.GetByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return s.toListResponse(customers, total, page, pageSize), nil
}

// Search retrieves customers matching a free-text query
func (s *CustomerService) Search(orgID uuid.UUID, query string, page, pageSize int) (*CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	customers, total, err := s.repo.Search(orgID, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return s.toListResponse(customers, total, page, pageSize), nil
}

// Update updates a customer scoped to an organization
func (s *CustomerService) Update(orgID, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer.Name = req.Name
	customer.ContactName = req.ContactName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.BillingCity = req.BillingCity
	customer.BillingState = req.BillingState
	customer.TaxNumber = req.TaxNumber
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return s.toResponse(customer), nil
}

// Delete deletes a customer scoped to an organization
func (s *CustomerService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) toListResponse(customers []models.Customer, total int64, page, pageSize int) *CustomerListResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *s.toResponse(&customers[i])
	}

	return &CustomerListResponse{
		Customers: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
}

// toResponse converts a customer model to response
func (s *CustomerService) toResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             customer.ID,
		OrganizationID: customer.OrganizationID,
		Name:           customer.Name,
		ContactName:    customer.ContactName,
		Email:          customer.Email,
		Phone:          customer.Phone,
		BillingCity:    customer.BillingCity,
		BillingState:   customer.BillingState,
		TaxNumber:      customer.TaxNumber,
		IsActive:       customer.IsActive,
		CreatedAt:      customer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      customer.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
