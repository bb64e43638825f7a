package models

// Customer represents a CRM customer record
type Customer struct {
	TenantModel
	Name         string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" gorm:"size:200" validate:"max=200"`
	Email        string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone" gorm:"size:30" validate:"max=30"`
	BillingCity  string `json:"billing_city" gorm:"size:100" validate:"max=100"`
	BillingState string `json:"billing_state" gorm:"size:100" validate:"max=100"`
	TaxNumber    string `json:"tax_number" gorm:"size:50" validate:"max=50"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
