package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherType classifies the business document
type VoucherType string

const (
	VoucherTypePurchase             VoucherType = "purchase"
	VoucherTypeSales                VoucherType = "sales"
	VoucherTypePayment              VoucherType = "payment"
	VoucherTypeReceipt              VoucherType = "receipt"
	VoucherTypeManufacturingJournal VoucherType = "manufacturing_journal"
)

// VoucherStatus is the document lifecycle state
type VoucherStatus string

const (
	VoucherStatusDraft     VoucherStatus = "draft"
	VoucherStatusSubmitted VoucherStatus = "submitted"
	VoucherStatusApproved  VoucherStatus = "approved"
	VoucherStatusCancelled VoucherStatus = "cancelled"
)

// VoucherItemDirection distinguishes consumed vs produced lines on
// manufacturing journals. Trade vouchers leave it empty.
type VoucherItemDirection string

const (
	ItemDirectionConsumed VoucherItemDirection = "consumed"
	ItemDirectionProduced VoucherItemDirection = "produced"
)

// Voucher is the core transactional record of the ERP domain: purchase,
// sales, payment, receipt and manufacturing journal documents.
type Voucher struct {
	TenantModel
	VoucherType VoucherType     `json:"voucher_type" gorm:"type:varchar(30);not null;index" validate:"required"`
	Status      VoucherStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Date        time.Time       `json:"date" gorm:"not null"`
	Reference   string          `json:"reference" gorm:"size:100" validate:"max=100"`
	CustomerID  *uuid.UUID      `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	VendorID    *uuid.UUID      `json:"vendor_id,omitempty" gorm:"type:uuid;index"`
	Total       decimal.Decimal `json:"total" gorm:"type:numeric(14,2);not null;default:0"`
	Notes       string          `json:"notes" gorm:"type:text"`
	CreatedByID uuid.UUID       `json:"created_by_id" gorm:"type:uuid"`

	// Relationships
	Customer *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Vendor   *Vendor       `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Items    []VoucherItem `json:"items,omitempty" gorm:"foreignKey:VoucherID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Voucher
func (Voucher) TableName() string {
	return "vouchers"
}

// VoucherItem is a single line on a voucher
type VoucherItem struct {
	BaseModel
	VoucherID   uuid.UUID            `json:"voucher_id" gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID           `json:"product_id,omitempty" gorm:"type:uuid;index"`
	Description string               `json:"description" gorm:"size:200" validate:"max=200"`
	Quantity    decimal.Decimal      `json:"quantity" gorm:"type:numeric(14,3);not null;default:1"`
	Rate        decimal.Decimal      `json:"rate" gorm:"type:numeric(14,2);not null;default:0"`
	Amount      decimal.Decimal      `json:"amount" gorm:"type:numeric(14,2);not null;default:0"`
	Direction   VoucherItemDirection `json:"direction,omitempty" gorm:"type:varchar(10)"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for VoucherItem
func (VoucherItem) TableName() string {
	return "voucher_items"
}
