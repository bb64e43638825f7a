package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AnalyticsRepository runs aggregate queries scoped to an organization
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// VoucherTypeTotal is an aggregate row grouped by voucher type and status
type VoucherTypeTotal struct {
	VoucherType models.VoucherType   `json:"voucher_type"`
	Status      models.VoucherStatus `json:"status"`
	Count       int64                `json:"count"`
	Total       decimal.Decimal      `json:"total"`
}

// VoucherTotalsByType sums voucher counts and amounts grouped by type and status
func (r *AnalyticsRepository) VoucherTotalsByType(orgID uuid.UUID) ([]VoucherTypeTotal, error) {
	var rows []VoucherTypeTotal
	err := r.db.Model(&models.Voucher{}).
		Select("voucher_type, status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("organization_id = ?", orgID).
		Group("voucher_type, status").
		Order("voucher_type, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyTotal is an aggregate row grouped by calendar month
type MonthlyTotal struct {
	Month string          `json:"month"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyVoucherTotals sums approved voucher amounts per month for one voucher type
func (r *AnalyticsRepository) MonthlyVoucherTotals(orgID uuid.UUID, voucherType models.VoucherType, months int) ([]MonthlyTotal, error) {
	var rows []MonthlyTotal
	err := r.db.Model(&models.Voucher{}).
		Select("to_char(date_trunc('month', date), 'YYYY-MM') AS month, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("organization_id = ? AND voucher_type = ? AND status = ?", orgID, voucherType, models.VoucherStatusApproved).
		Where("date >= date_trunc('month', now()) - make_interval(months => ?)", months).
		Group("month").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TicketStatusCount is an aggregate row grouped by ticket status
type TicketStatusCount struct {
	Status models.TicketStatus `json:"status"`
	Count  int64               `json:"count"`
}

// TicketCountsByStatus counts tickets grouped by status
func (r *AnalyticsRepository) TicketCountsByStatus(orgID uuid.UUID) ([]TicketStatusCount, error) {
	var rows []TicketStatusCount
	err := r.db.Model(&models.Ticket{}).
		Select("status, COUNT(*) AS count").
		Where("organization_id = ?", orgID).
		Group("status").
		Order("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// EntityCounts is the per-organization record census
type EntityCounts struct {
	Customers int64 `json:"customers"`
	Vendors   int64 `json:"vendors"`
	Products  int64 `json:"products"`
	Vouchers  int64 `json:"vouchers"`
	OpenTasks int64 `json:"open_tasks"`
}

// CountEntities counts the main record types for an organization
func (r *AnalyticsRepository) CountEntities(orgID uuid.UUID) (*EntityCounts, error) {
	var counts EntityCounts

	if err := r.db.Model(&models.Customer{}).Where("organization_id = ?", orgID).Count(&counts.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Vendor{}).Where("organization_id = ?", orgID).Count(&counts.Vendors).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Product{}).Where("organization_id = ?", orgID).Count(&counts.Products).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Voucher{}).Where("organization_id = ?", orgID).Count(&counts.Vouchers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Task{}).
		Where("organization_id = ? AND status <> ?", orgID, models.TaskStatusDone).
		Count(&counts.OpenTasks).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}
