package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorRepository handles database operations for vendors
type VendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create creates a new vendor
func (r *VendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// GetByIDForOrg retrieves a vendor by ID scoped to an organization
func (r *VendorRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetByName retrieves a vendor by name within an organization
func (r *VendorRepository) GetByName(orgID uuid.UUID, name string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetByOrganization retrieves vendors of an organization with pagination
func (r *VendorRepository) GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	var total int64

	base := r.db.Model(&models.Vendor{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("name").Find(&vendors).Error
	if err != nil {
		return nil, 0, err
	}

	return vendors, total, nil
}

// Update updates a vendor
func (r *VendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

// Delete deletes a vendor scoped to an organization
func (r *VendorRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Vendor{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
