package repository

import (
	"time"

	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetBySubdomain(subdomain string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByIDWithRoles(id uuid.UUID) (*models.User, error)
	GetByIDForOrg(orgID, id uuid.UUID) (*models.User, error)
	GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(orgID, id uuid.UUID) error
	AssignRole(user *models.User, role *models.Role) error
	UnassignRole(user *models.User, role *models.Role) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Role, error)
	GetByName(orgID uuid.UUID, name string) (*models.Role, error)
	GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Role, int64, error)
	Update(role *models.Role) error
	Delete(orgID, id uuid.UUID) error
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Customer, error)
	GetByName(orgID uuid.UUID, name string) (*models.Customer, error)
	GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Customer, int64, error)
	Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	Delete(orgID, id uuid.UUID) error
}

// VendorRepositoryInterface defines the interface for vendor repository operations
type VendorRepositoryInterface interface {
	Create(vendor *models.Vendor) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Vendor, error)
	GetByName(orgID uuid.UUID, name string) (*models.Vendor, error)
	GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Vendor, int64, error)
	Update(vendor *models.Vendor) error
	Delete(orgID, id uuid.UUID) error
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Product, error)
	GetBySKU(orgID uuid.UUID, sku string) (*models.Product, error)
	GetByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Product, int64, error)
	Update(product *models.Product) error
	AdjustStock(orgID, id uuid.UUID, delta decimal.Decimal) error
	Delete(orgID, id uuid.UUID) error
}

// VoucherRepositoryInterface defines the interface for voucher repository operations
type VoucherRepositoryInterface interface {
	Create(voucher *models.Voucher) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Voucher, error)
	GetByOrganization(orgID uuid.UUID, filter VoucherFilter, limit, offset int) ([]models.Voucher, int64, error)
	Update(voucher *models.Voucher) error
	ReplaceItems(voucher *models.Voucher, items []models.VoucherItem) error
	Delete(orgID, id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Task, error)
	GetByOrganization(orgID uuid.UUID, filter TaskFilter, limit, offset int) ([]models.Task, int64, error)
	Update(task *models.Task) error
	Delete(orgID, id uuid.UUID) error
}

// CalendarEventRepositoryInterface defines the interface for calendar event repository operations
type CalendarEventRepositoryInterface interface {
	Create(event *models.CalendarEvent) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.CalendarEvent, error)
	GetByOrganizationInRange(orgID uuid.UUID, from, to time.Time, limit, offset int) ([]models.CalendarEvent, int64, error)
	Update(event *models.CalendarEvent) error
	Delete(orgID, id uuid.UUID) error
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ticket *models.Ticket) error
	GetByIDForOrg(orgID, id uuid.UUID) (*models.Ticket, error)
	GetByOrganization(orgID uuid.UUID, filter TicketFilter, limit, offset int) ([]models.Ticket, int64, error)
	Update(ticket *models.Ticket) error
	Delete(orgID, id uuid.UUID) error
}

// AnalyticsRepositoryInterface defines the interface for analytics repository operations
type AnalyticsRepositoryInterface interface {
	VoucherTotalsByType(orgID uuid.UUID) ([]VoucherTypeTotal, error)
	MonthlyVoucherTotals(orgID uuid.UUID, voucherType models.VoucherType, months int) ([]MonthlyTotal, error)
	TicketCountsByStatus(orgID uuid.UUID) ([]TicketStatusCount, error)
	CountEntities(orgID uuid.UUID) (*EntityCounts, error)
}
