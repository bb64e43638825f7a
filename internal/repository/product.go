package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByIDForOrg retrieves a product by ID scoped to an organization
func (r *ProductRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetBySKU retrieves a product by SKU within an organization
func (r *ProductRepository) GetBySKU(orgID uuid.UUID, sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "organization_id = ? AND sku = ?", orgID, sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByOrganization retrieves products of an organization with pagination
func (r *ProductRepository) GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	base := r.db.Model(&models.Product{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("name").Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Update updates a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// AdjustStock applies a signed stock delta to a product
func (r *ProductRepository) AdjustStock(orgID, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a product scoped to an organization
func (r *ProductRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Product{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
