package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByIDForOrg retrieves a customer by ID scoped to an organization.
// A cross-tenant ID surfaces as gorm.ErrRecordNotFound.
func (r *CustomerRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByName retrieves a customer by name within an organization
func (r *CustomerRepository) GetByName(orgID uuid.UUID, name string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByOrganization retrieves customers of an organization with pagination
func (r *CustomerRepository) GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	base := r.db.Model(&models.Customer{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("name").Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Search retrieves customers matching a query on name or contact fields
func (r *CustomerRepository) Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	pattern := "%" + query + "%"
	base := r.db.Model(&models.Customer{}).
		Where("organization_id = ? AND (name ILIKE ? OR contact_name ILIKE ? OR email ILIKE ?)",
			orgID, pattern, pattern, pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Order("name").Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Update updates a customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete deletes a customer scoped to an organization
func (r *CustomerRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Customer{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
