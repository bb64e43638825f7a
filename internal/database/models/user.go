package models

import (
	"github.com/google/uuid"
)

// User represents an authenticated account within an organization.
// Super-admins are platform operators and may have no organization.
type User struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string     `json:"-" gorm:"not null;size:255"`
	FirstName      string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`
	IsSuperAdmin   bool       `json:"is_super_admin" gorm:"not null;default:false"`

	// Relationships
	Roles []Role `json:"roles,omitempty" gorm:"many2many:user_roles;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
