package service

import (
	"time"

	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateUserRequest) (*UserResponse, error)
	GetByID(orgID, id uuid.UUID) (*UserResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(orgID, id uuid.UUID) error
	AssignRole(orgID, userID, roleID uuid.UUID) (*UserResponse, error)
	UnassignRole(orgID, userID, roleID uuid.UUID) (*UserResponse, error)
}

// RoleServiceInterface defines the interface for role service
type RoleServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateRoleRequest) (*RoleResponse, error)
	GetByID(orgID, id uuid.UUID) (*RoleResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*RoleListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error)
	Delete(orgID, id uuid.UUID) error
	Catalog() map[string][]string
}

// RBACServiceInterface defines the interface for permission checks
type RBACServiceInterface interface {
	PermissionsFor(user *models.User) (map[string]struct{}, error)
	HasPermission(user *models.User, module, action string) (bool, error)
}

// CustomerServiceInterface defines the interface for customer service
type CustomerServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error)
	GetByID(orgID, id uuid.UUID) (*CustomerResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*CustomerListResponse, error)
	Search(orgID uuid.UUID, query string, page, pageSize int) (*CustomerListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// VendorServiceInterface defines the interface for vendor service
type VendorServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateVendorRequest) (*VendorResponse, error)
	GetByID(orgID, id uuid.UUID) (*VendorResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*VendorListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateVendorRequest) (*VendorResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// ProductServiceInterface defines the interface for product service
type ProductServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error)
	GetByID(orgID, id uuid.UUID) (*ProductResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*ProductListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error)
	AdjustStock(orgID, id uuid.UUID, req *AdjustStockRequest) (*ProductResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// VoucherServiceInterface defines the interface for voucher service
type VoucherServiceInterface interface {
	Create(orgID, createdByID uuid.UUID, req *CreateVoucherRequest) (*VoucherResponse, error)
	GetByID(orgID, id uuid.UUID) (*VoucherResponse, error)
	GetByOrganization(orgID uuid.UUID, filter repository.VoucherFilter, page, pageSize int) (*VoucherListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateVoucherRequest) (*VoucherResponse, error)
	Submit(orgID, id uuid.UUID) (*VoucherResponse, error)
	Approve(orgID, id uuid.UUID) (*VoucherResponse, error)
	Cancel(orgID, id uuid.UUID) (*VoucherResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error)
	GetByID(orgID, id uuid.UUID) (*TaskResponse, error)
	GetByOrganization(orgID uuid.UUID, filter repository.TaskFilter, page, pageSize int) (*TaskListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// CalendarServiceInterface defines the interface for calendar service
type CalendarServiceInterface interface {
	Create(orgID, ownerID uuid.UUID, req *CreateEventRequest) (*EventResponse, error)
	GetByID(orgID, id uuid.UUID) (*EventResponse, error)
	GetInRange(orgID uuid.UUID, from, to time.Time, page, pageSize int) (*EventListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	Create(orgID, requesterID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error)
	GetByID(orgID, id uuid.UUID) (*TicketResponse, error)
	GetByOrganization(orgID uuid.UUID, filter repository.TicketFilter, page, pageSize int) (*TicketListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error)
	Assign(orgID, id uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	Dashboard(orgID uuid.UUID) (*DashboardResponse, error)
	MonthlyTotals(orgID uuid.UUID, voucherType string, months int) (*MonthlyTotalsResponse, error)
}
