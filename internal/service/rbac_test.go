package service_test

import (
	"encoding/json"
	"testing"

	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func roleWithPermissions(perms []string) models.Role {
	raw, _ := json.Marshal(perms)
	return models.Role{
		Name:        "test-role",
		Permissions: raw,
	}
}

func TestPermissionsForUnionsRoles(t *testing.T) {
	rbac := service.NewRBACService()
	user := &models.User{
		Roles: []models.Role{
			roleWithPermissions([]string{"customer_read", "customer_create"}),
			roleWithPermissions([]string{"customer_read", "voucher_approve"}),
		},
	}

	perms, err := rbac.PermissionsFor(user)

	assert.NoError(t, err)
	assert.Len(t, perms, 3)
	assert.Contains(t, perms, "customer_read")
	assert.Contains(t, perms, "customer_create")
	assert.Contains(t, perms, "voucher_approve")
}

func TestPermissionsForNoRoles(t *testing.T) {
	rbac := service.NewRBACService()

	perms, err := rbac.PermissionsFor(&models.User{})

	assert.NoError(t, err)
	assert.Empty(t, perms)
}

func TestPermissionsForMalformedRole(t *testing.T) {
	rbac := service.NewRBACService()
	user := &models.User{
		Roles: []models.Role{
			{Name: "broken", Permissions: json.RawMessage(`{"not":"a list"}`)},
		},
	}

	perms, err := rbac.PermissionsFor(user)

	assert.Error(t, err)
	assert.Nil(t, perms)
	assert.Contains(t, err.Error(), "broken")
}

func TestHasPermission(t *testing.T) {
	rbac := service.NewRBACService()
	user := &models.User{
		Roles: []models.Role{
			roleWithPermissions([]string{"voucher_read", "voucher_create"}),
		},
	}

	allowed, err := rbac.HasPermission(user, models.ModuleVoucher, models.ActionRead)
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = rbac.HasPermission(user, models.ModuleVoucher, models.ActionApprove)
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = rbac.HasPermission(user, models.ModuleCustomer, models.ActionRead)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestHasPermissionSuperAdminBypass(t *testing.T) {
	rbac := service.NewRBACService()
	admin := &models.User{IsSuperAdmin: true}

	allowed, err := rbac.HasPermission(admin, models.ModuleOrganization, models.ActionDelete)

	assert.NoError(t, err)
	assert.True(t, allowed)
}
