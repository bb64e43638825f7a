package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// GetByIDForOrg retrieves a role by ID scoped to an organization
func (r *RoleRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByName retrieves a role by name within an organization
func (r *RoleRepository) GetByName(orgID uuid.UUID, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByOrganization retrieves roles of an organization with pagination
func (r *RoleRepository) GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Role, int64, error) {
	var roles []models.Role
	var total int64

	base := r.db.Model(&models.Role{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("name").Find(&roles).Error
	if err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}

// Update updates a role
func (r *RoleRepository) Update(role *models.Role) error {
	return r.db.Save(role).Error
}

// Delete deletes a role scoped to an organization. Join table rows are
// removed by the FK cascade.
func (r *RoleRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Role{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
