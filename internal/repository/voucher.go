package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoucherRepository handles database operations for vouchers
type VoucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

// Create creates a voucher with its line items in one transaction
func (r *VoucherRepository) Create(voucher *models.Voucher) error {
	return r.db.Create(voucher).Error
}

// GetByIDForOrg retrieves a voucher with items scoped to an organization
func (r *VoucherRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.Preload("Items").
		First(&voucher, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// VoucherFilter narrows voucher listings
type VoucherFilter struct {
	VoucherType models.VoucherType
	Status      models.VoucherStatus
	CustomerID  *uuid.UUID
	VendorID    *uuid.UUID
}

// GetByOrganization retrieves vouchers of an organization, filtered and paginated
func (r *VoucherRepository) GetByOrganization(orgID uuid.UUID, filter VoucherFilter, limit, offset int) ([]models.Voucher, int64, error) {
	var vouchers []models.Voucher
	var total int64

	base := r.db.Model(&models.Voucher{}).Where("organization_id = ?", orgID)
	if filter.VoucherType != "" {
		base = base.Where("voucher_type = ?", filter.VoucherType)
	}
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != nil {
		base = base.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.VendorID != nil {
		base = base.Where("vendor_id = ?", *filter.VendorID)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Preload("Items").
		Limit(limit).Offset(offset).Order("date DESC, created_at DESC").Find(&vouchers).Error
	if err != nil {
		return nil, 0, err
	}

	return vouchers, total, nil
}

// Update updates a voucher header
func (r *VoucherRepository) Update(voucher *models.Voucher) error {
	return r.db.Save(voucher).Error
}

// ReplaceItems saves the voucher header and swaps the full set of line items
// in one transaction, so the header and its items always change together.
func (r *VoucherRepository) ReplaceItems(voucher *models.Voucher, items []models.VoucherItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(voucher).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.VoucherItem{}, "voucher_id = ?", voucher.ID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].VoucherID = voucher.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		voucher.Items = items
		return nil
	})
}

// Delete deletes a voucher scoped to an organization; items cascade
func (r *VoucherRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Voucher{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
