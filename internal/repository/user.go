package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByEmail retrieves a user by email. Email is globally unique, so this
// lookup is deliberately not tenant-scoped; it backs the login flow.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDWithRoles retrieves a user by ID with roles preloaded
func (r *UserRepository) GetByIDWithRoles(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDForOrg retrieves a user by ID scoped to an organization
func (r *UserRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByOrganization retrieves users of an organization with pagination
func (r *UserRepository) GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	base := r.db.Model(&models.User{}).Where("organization_id = ?", orgID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("email").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user scoped to an organization
func (r *UserRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.User{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignRole adds a role to a user via the user_roles join table
func (r *UserRepository) AssignRole(user *models.User, role *models.Role) error {
	return r.db.Model(user).Association("Roles").Append(role)
}

// UnassignRole removes a role from a user
func (r *UserRepository) UnassignRole(user *models.User, role *models.Role) error {
	return r.db.Model(user).Association("Roles").Delete(role)
}
