package service

import (
	"fmt"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/repository"

	"github.com/google/uuid"
)

// AnalyticsService aggregates per-organization figures for dashboards
type AnalyticsService struct {
	repo repository.AnalyticsRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.AnalyticsRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// DashboardResponse is the combined dashboard payload
type DashboardResponse struct {
	Counts        *repository.EntityCounts       `json:"counts"`
	VoucherTotals []repository.VoucherTypeTotal  `json:"voucher_totals"`
	TicketCounts  []repository.TicketStatusCount `json:"ticket_counts"`
}

// MonthlyTotalsResponse wraps a monthly trend series for one voucher type
type MonthlyTotalsResponse struct {
	VoucherType string                   `json:"voucher_type"`
	Months      int                      `json:"months"`
	Series      []repository.MonthlyTotal `json:"series"`
}

var validMonthlyTypes = map[models.VoucherType]bool{
	models.VoucherTypePurchase:             true,
	models.VoucherTypeSales:                true,
	models.VoucherTypePayment:              true,
	models.VoucherTypeReceipt:              true,
	models.VoucherTypeManufacturingJournal: true,
}

// Dashboard assembles the organization dashboard aggregates
func (s *AnalyticsService) Dashboard(orgID uuid.UUID) (*DashboardResponse, error) {
	counts, err := s.repo.CountEntities(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	voucherTotals, err := s.repo.VoucherTotalsByType(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate voucher totals: %w", err)
	}

	ticketCounts, err := s.repo.TicketCountsByStatus(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ticket counts: %w", err)
	}

	return &DashboardResponse{
		Counts:        counts,
		VoucherTotals: voucherTotals,
		TicketCounts:  ticketCounts,
	}, nil
}

// MonthlyTotals returns the approved voucher trend for one voucher type over
// the trailing months window
func (s *AnalyticsService) MonthlyTotals(orgID uuid.UUID, voucherType string, months int) (*MonthlyTotalsResponse, error) {
	vt := models.VoucherType(voucherType)
	if !validMonthlyTypes[vt] {
		return nil, apperrors.NewValidationError("voucher_type", "unknown voucher type")
	}
	if months < 1 || months > 36 {
		months = 12
	}

	series, err := s.repo.MonthlyVoucherTotals(orgID, vt, months)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly totals: %w", err)
	}

	return &MonthlyTotalsResponse{
		VoucherType: voucherType,
		Months:      months,
		Series:      series,
	}, nil
}
