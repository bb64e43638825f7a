package testutils

import (
	"encoding/json"
	"time"

	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		Subdomain:   "test-" + id.String()[:8],
		Status:      models.OrganizationStatusActive,
		Plan:        "standard",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// WithStatus sets the lifecycle status for the organization
func (f *OrganizationFactory) WithStatus(status models.OrganizationStatus) *models.Organization {
	org := f.Create()
	org.Status = status
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	orgID := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: &orgID,
		Email:          "user-" + id.String()[:8] + "@test.com",
		PasswordHash:   string(hash),
		FirstName:      "Jane",
		LastName:       "Doe",
		IsActive:       true,
		IsSuperAdmin:   false,
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// SuperAdmin creates a platform operator without an organization
func (f *UserFactory) SuperAdmin() *models.User {
	user := f.Create()
	user.OrganizationID = nil
	user.IsSuperAdmin = true
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	id := uuid.New()
	perms, _ := json.Marshal([]string{"customer_read", "customer_create"})
	return &models.Role{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Name:        "role-" + id.String()[:8],
		Description: "A test role",
		Permissions: perms,
	}
}

// WithOrganization sets the organization ID for the role
func (f *RoleFactory) WithOrganization(orgID uuid.UUID) *models.Role {
	role := f.Create()
	role.OrganizationID = orgID
	return role
}

// WithPermissions sets an explicit permission list on the role
func (f *RoleFactory) WithPermissions(perms []string) *models.Role {
	role := f.Create()
	raw, _ := json.Marshal(perms)
	role.Permissions = raw
	return role
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create() *models.Customer {
	id := uuid.New()
	return &models.Customer{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Name:        "Acme Corp " + id.String()[:8],
		ContactName: "John Smith",
		Email:       "billing-" + id.String()[:8] + "@acme.test",
		Phone:       "+1-555-0100",
		BillingCity: "Springfield",
		IsActive:    true,
	}
}

// WithOrganization sets the organization ID for the customer
func (f *CustomerFactory) WithOrganization(orgID uuid.UUID) *models.Customer {
	customer := f.Create()
	customer.OrganizationID = orgID
	return customer
}

// WithName sets a custom name for the customer
func (f *CustomerFactory) WithName(name string) *models.Customer {
	customer := f.Create()
	customer.Name = name
	return customer
}

// VendorFactory provides methods to create test Vendor data
type VendorFactory struct{}

// NewVendorFactory creates a new VendorFactory
func NewVendorFactory() *VendorFactory {
	return &VendorFactory{}
}

// Create creates a test Vendor with default values
func (f *VendorFactory) Create() *models.Vendor {
	id := uuid.New()
	return &models.Vendor{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Name:        "Supplies Inc " + id.String()[:8],
		ContactName: "Mary Jones",
		Email:       "sales-" + id.String()[:8] + "@supplies.test",
		IsActive:    true,
	}
}

// WithOrganization sets the organization ID for the vendor
func (f *VendorFactory) WithOrganization(orgID uuid.UUID) *models.Vendor {
	vendor := f.Create()
	vendor.OrganizationID = orgID
	return vendor
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product with default values
func (f *ProductFactory) Create() *models.Product {
	id := uuid.New()
	return &models.Product{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Name:          "Widget " + id.String()[:8],
		SKU:           "SKU-" + id.String()[:8],
		Unit:          "pcs",
		UnitPrice:     decimal.NewFromFloat(9.99),
		StockQuantity: decimal.NewFromInt(100),
		IsActive:      true,
	}
}

// WithOrganization sets the organization ID for the product
func (f *ProductFactory) WithOrganization(orgID uuid.UUID) *models.Product {
	product := f.Create()
	product.OrganizationID = orgID
	return product
}

// WithSKU sets a custom SKU for the product
func (f *ProductFactory) WithSKU(sku string) *models.Product {
	product := f.Create()
	product.SKU = sku
	return product
}

// VoucherFactory provides methods to create test Voucher data
type VoucherFactory struct{}

// NewVoucherFactory creates a new VoucherFactory
func NewVoucherFactory() *VoucherFactory {
	return &VoucherFactory{}
}

// Create creates a draft sales voucher with one item
func (f *VoucherFactory) Create() *models.Voucher {
	id := uuid.New()
	customerID := uuid.New()
	return &models.Voucher{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		VoucherType: models.VoucherTypeSales,
		Status:      models.VoucherStatusDraft,
		Date:        time.Now().Truncate(24 * time.Hour),
		Reference:   "INV-" + id.String()[:8],
		CustomerID:  &customerID,
		Total:       decimal.NewFromFloat(19.98),
		CreatedByID: uuid.New(),
		Items: []models.VoucherItem{
			{
				Description: "Widget",
				Quantity:    decimal.NewFromInt(2),
				Rate:        decimal.NewFromFloat(9.99),
				Amount:      decimal.NewFromFloat(19.98),
			},
		},
	}
}

// WithOrganization sets the organization ID for the voucher
func (f *VoucherFactory) WithOrganization(orgID uuid.UUID) *models.Voucher {
	voucher := f.Create()
	voucher.OrganizationID = orgID
	return voucher
}

// WithCustomer sets the customer party on the voucher
func (f *VoucherFactory) WithCustomer(customerID uuid.UUID) *models.Voucher {
	voucher := f.Create()
	voucher.CustomerID = &customerID
	return voucher
}

// Purchase creates a draft purchase voucher bound to a vendor
func (f *VoucherFactory) Purchase(vendorID uuid.UUID) *models.Voucher {
	voucher := f.Create()
	voucher.VoucherType = models.VoucherTypePurchase
	voucher.CustomerID = nil
	voucher.VendorID = &vendorID
	return voucher
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	id := uuid.New()
	return &models.Task{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Title:    "Task " + id.String()[:8],
		Status:   models.TaskStatusOpen,
		Priority: models.TaskPriorityMedium,
	}
}

// WithOrganization sets the organization ID for the task
func (f *TaskFactory) WithOrganization(orgID uuid.UUID) *models.Task {
	task := f.Create()
	task.OrganizationID = orgID
	return task
}

// WithAssignee sets the assignee for the task
func (f *TaskFactory) WithAssignee(userID uuid.UUID) *models.Task {
	task := f.Create()
	task.AssigneeID = &userID
	return task
}

// CalendarEventFactory provides methods to create test CalendarEvent data
type CalendarEventFactory struct{}

// NewCalendarEventFactory creates a new CalendarEventFactory
func NewCalendarEventFactory() *CalendarEventFactory {
	return &CalendarEventFactory{}
}

// Create creates a one-hour event starting an hour from now
func (f *CalendarEventFactory) Create() *models.CalendarEvent {
	id := uuid.New()
	start := time.Now().Add(time.Hour).Truncate(time.Minute)
	return &models.CalendarEvent{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Title:     "Meeting " + id.String()[:8],
		Location:  "Room 1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		OwnerID:   uuid.New(),
	}
}

// WithOrganization sets the organization ID for the event
func (f *CalendarEventFactory) WithOrganization(orgID uuid.UUID) *models.CalendarEvent {
	event := f.Create()
	event.OrganizationID = orgID
	return event
}

// WithTimes sets explicit start and end times for the event
func (f *CalendarEventFactory) WithTimes(start, end time.Time) *models.CalendarEvent {
	event := f.Create()
	event.StartTime = start
	event.EndTime = end
	return event
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket with default values
func (f *TicketFactory) Create() *models.Ticket {
	id := uuid.New()
	return &models.Ticket{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Subject:     "Ticket " + id.String()[:8],
		Description: "Something is broken",
		Status:      models.TicketStatusOpen,
		Priority:    models.TicketPriorityMedium,
		RequesterID: uuid.New(),
	}
}

// WithOrganization sets the organization ID for the ticket
func (f *TicketFactory) WithOrganization(orgID uuid.UUID) *models.Ticket {
	ticket := f.Create()
	ticket.OrganizationID = orgID
	return ticket
}

// WithRequester sets the requesting user for the ticket
func (f *TicketFactory) WithRequester(userID uuid.UUID) *models.Ticket {
	ticket := f.Create()
	ticket.RequesterID = userID
	return ticket
}

// FactorySet bundles all factories for convenient use in tests
type FactorySet struct {
	Organization  *OrganizationFactory
	User          *UserFactory
	Role          *RoleFactory
	Customer      *CustomerFactory
	Vendor        *VendorFactory
	Product       *ProductFactory
	Voucher       *VoucherFactory
	Task          *TaskFactory
	CalendarEvent *CalendarEventFactory
	Ticket        *TicketFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:  NewOrganizationFactory(),
		User:          NewUserFactory(),
		Role:          NewRoleFactory(),
		Customer:      NewCustomerFactory(),
		Vendor:        NewVendorFactory(),
		Product:       NewProductFactory(),
		Voucher:       NewVoucherFactory(),
		Task:          NewTaskFactory(),
		CalendarEvent: NewCalendarEventFactory(),
		Ticket:        NewTicketFactory(),
	}
}

// CreateTenant creates a persisted-ready organization with an admin-style
// role and a member user, all wired to the same tenant.
func (fs *FactorySet) CreateTenant() (*models.Organization, *models.User, *models.Role) {
	org := fs.Organization.Create()
	user := fs.User.WithOrganization(org.ID)
	role := fs.Role.WithOrganization(org.ID)
	return org, user, role
}
