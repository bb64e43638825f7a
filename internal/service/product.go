package service

import (
	"errors"
	"fmt"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService handles business logic for products
type ProductService struct {
	repo      repository.ProductRepositoryInterface
	validator *validator.Validate
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepositoryInterface, validator *validator.Validate) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	SKU       string          `json:"sku,omitempty" validate:"max=100"`
	Unit      string          `json:"unit,omitempty" validate:"max=20"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest represents the request to update a product
type UpdateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	SKU       string          `json:"sku,omitempty" validate:"max=100"`
	Unit      string          `json:"unit,omitempty" validate:"max=20"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IsActive  *bool           `json:"is_active,omitempty"`
}

// AdjustStockRequest represents a stock level adjustment
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// ProductResponse represents the response for product operations
type ProductResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	StockQuantity  decimal.Decimal `json:"stock_quantity"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// ProductListResponse represents a paginated list of products
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new product in the given organization
func (s *ProductService) Create(orgID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidationError("unit_price", "must not be negative")
	}

	if req.SKU != "" {
		existing, err := s.repo.GetBySKU(orgID, req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing product by sku: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrProductExists
		}
	}

	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := &models.Product{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		Name:        req.Name,
		SKU:         req.SKU,
		Unit:        unit,
		UnitPrice:   req.UnitPrice,
		IsActive:    true,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.toResponse(product), nil
}

// GetByID retrieves a product by ID scoped to an organization
func (s *ProductService) GetByID(orgID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return s.toResponse(product), nil
}

// GetByOrganization retrieves products of an organization with pagination
func (s *ProductService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	products, total, err := s.repo.GetByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *s.toResponse(&products[i])
	}

	return &ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a product scoped to an organization
func (s *ProductService) Update(orgID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidationError("unit_price", "must not be negative")
	}

	product, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.SKU != "" && req.SKU != product.SKU {
		existing, err := s.repo.GetBySKU(orgID, req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing product by sku: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrProductExists
		}
	}

	product.Name = req.Name
	product.SKU = req.SKU
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	product.UnitPrice = req.UnitPrice
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.toResponse(product), nil
}

// AdjustStock applies a signed delta to a product's stock quantity
func (s *ProductService) AdjustStock(orgID, id uuid.UUID, req *AdjustStockRequest) (*ProductResponse, error) {
	if req.Delta.IsZero() {
		return nil, apperrors.NewValidationError("delta", "must not be zero")
	}

	if err := s.repo.AdjustStock(orgID, id, req.Delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return s.GetByID(orgID, id)
}

// Delete deletes a product scoped to an organization
func (s *ProductService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// toResponse converts a product model to response
func (s *ProductService) toResponse(product *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:             product.ID,
		OrganizationID: product.OrganizationID,
		Name:           product.Name,
		SKU:            product.SKU,
		Unit:           product.Unit,
		UnitPrice:      product.UnitPrice,
		StockQuantity:  product.StockQuantity,
		IsActive:       product.IsActive,
		CreatedAt:      product.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      product.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
