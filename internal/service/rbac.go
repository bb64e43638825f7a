package service

import (
	"fmt"

	"business-suite-backend/internal/database/models"
)

// RBACService derives permission sets from a user's assigned roles. A
// permission is the string "{module}_{action}"; roles carry a jsonb array of
// them. Super-admins bypass the check entirely.
type RBACService struct{}

// NewRBACService creates a new RBAC service
func NewRBACService() *RBACService {
	return &RBACService{}
}

// PermissionsFor computes the union of permission strings across the user's
// roles. Expects Roles to be preloaded on the user.
func (s *RBACService) PermissionsFor(user *models.User) (map[string]struct{}, error) {
	perms := make(map[string]struct{})
	for i := range user.Roles {
		list, err := user.Roles[i].PermissionList()
		if err != nil {
			return nil, fmt.Errorf("failed to parse permissions of role %q: %w", user.Roles[i].Name, err)
		}
		for _, p := range list {
			perms[p] = struct{}{}
		}
	}
	return perms, nil
}

// HasPermission reports whether the user holds "{module}_{action}".
// Super-admins always pass.
func (s *RBACService) HasPermission(user *models.User, module, action string) (bool, error) {
	if user.IsSuperAdmin {
		return true, nil
	}

	perms, err := s.PermissionsFor(user)
	if err != nil {
		return false, err
	}

	_, ok := perms[models.PermissionString(module, action)]
	return ok, nil
}
