package models

import (
	"encoding/json"
)

// Role is a named, per-organization set of permission strings. Permission
// strings take the form "{module}_{action}", e.g. "customer_read".
type Role struct {
	TenantModel
	Name        string          `json:"name" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`
	Description string          `json:"description" gorm:"size:200" validate:"max=200"`
	Permissions json.RawMessage `json:"permissions" gorm:"type:jsonb;not null;default:'[]'"`

	Users []User `json:"users,omitempty" gorm:"many2many:user_roles"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// PermissionList unmarshals the jsonb permission array
func (r *Role) PermissionList() ([]string, error) {
	if len(r.Permissions) == 0 {
		return nil, nil
	}
	var perms []string
	if err := json.Unmarshal(r.Permissions, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}
