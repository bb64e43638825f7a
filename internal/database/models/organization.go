package models

import (
	"encoding/json"
)

// OrganizationStatus represents the lifecycle state of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
	OrganizationStatusTrial     OrganizationStatus = "trial"
)

// Organization represents the root entity for multi-tenancy. Every business
// record in the suite carries an organization_id foreign key pointing here.
type Organization struct {
	BaseModel
	Name        string             `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string             `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Subdomain   string             `json:"subdomain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Status      OrganizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Plan        string             `json:"plan" gorm:"size:50;default:'standard'"`
	Metadata    json.RawMessage    `json:"metadata,omitempty" gorm:"type:jsonb"`

	// Relationships
	Users     []User     `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Roles     []Role     `json:"roles,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Customers []Customer `json:"customers,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Vendors   []Vendor   `json:"vendors,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Products  []Product  `json:"products,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Vouchers  []Voucher  `json:"vouchers,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
