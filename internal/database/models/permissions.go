package models

import "fmt"

// Permission modules. A permission string is "{module}_{action}".
const (
	ModuleOrganization = "organization"
	ModuleUser         = "user"
	ModuleRole         = "role"
	ModuleCustomer     = "customer"
	ModuleVendor       = "vendor"
	ModuleProduct      = "product"
	ModuleVoucher      = "voucher"
	ModuleTask         = "task"
	ModuleCalendar     = "calendar"
	ModuleTicket       = "ticket"
	ModuleAnalytics    = "analytics"
)

// Permission actions
const (
	ActionCreate  = "create"
	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionAssign  = "assign"
)

// PermissionString builds the canonical "{module}_{action}" form
func PermissionString(module, action string) string {
	return fmt.Sprintf("%s_%s", module, action)
}

// crudActions are the actions available on plain CRUD modules
var crudActions = []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

// PermissionCatalog returns every known permission string, grouped by module.
// This is the source of truth served by the permission catalog endpoint and
// used when seeding default roles.
func PermissionCatalog() map[string][]string {
	catalog := make(map[string][]string)
	for _, module := range []string{
		ModuleOrganization, ModuleUser, ModuleRole, ModuleCustomer,
		ModuleVendor, ModuleProduct, ModuleTask, ModuleCalendar,
	} {
		catalog[module] = permsFor(module, crudActions)
	}
	catalog[ModuleVoucher] = permsFor(ModuleVoucher, append(crudActions, ActionApprove))
	catalog[ModuleTicket] = permsFor(ModuleTicket, append(crudActions, ActionAssign))
	catalog[ModuleRole] = permsFor(ModuleRole, append(crudActions, ActionAssign))
	catalog[ModuleAnalytics] = permsFor(ModuleAnalytics, []string{ActionRead})
	return catalog
}

// AllPermissions returns the flattened permission catalog
func AllPermissions() []string {
	var all []string
	for _, perms := range PermissionCatalog() {
		all = append(all, perms...)
	}
	return all
}

func permsFor(module string, actions []string) []string {
	perms := make([]string, len(actions))
	for i, action := range actions {
		perms[i] = PermissionString(module, action)
	}
	return perms
}
