package models

import (
	"github.com/shopspring/decimal"
)

// Product represents an inventory item that voucher lines reference
type Product struct {
	TenantModel
	Name          string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	SKU           string          `json:"sku" gorm:"size:100;index" validate:"max=100"`
	Unit          string          `json:"unit" gorm:"not null;size:20;default:'pcs'" validate:"max=20"`
	UnitPrice     decimal.Decimal `json:"unit_price" gorm:"type:numeric(14,2);not null;default:0"`
	StockQuantity decimal.Decimal `json:"stock_quantity" gorm:"type:numeric(14,3);not null;default:0"`
	IsActive      bool            `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
