package models

// Vendor represents a supplier in the purchasing side of the ERP
type Vendor struct {
	TenantModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ContactName string `json:"contact_name" gorm:"size:200" validate:"max=200"`
	Email       string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone" gorm:"size:30" validate:"max=30"`
	City        string `json:"city" gorm:"size:100" validate:"max=100"`
	TaxNumber   string `json:"tax_number" gorm:"size:50" validate:"max=50"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}
