package service

import (
	"errors"
	"fmt"
	"time"

	"business-suite-backend/internal/database/models"
	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// validTransitions lists the allowed voucher status moves. Approved and
// cancelled are terminal.
var validTransitions = map[models.VoucherStatus][]models.VoucherStatus{
	models.VoucherStatusDraft:     {models.VoucherStatusSubmitted, models.VoucherStatusCancelled},
	models.VoucherStatusSubmitted: {models.VoucherStatusApproved, models.VoucherStatusCancelled},
}

// VoucherService handles business logic for vouchers
type VoucherService struct {
	repo      repository.VoucherRepositoryInterface
	validator *validator.Validate
}

// NewVoucherService creates a new voucher service
func NewVoucherService(repo repository.VoucherRepositoryInterface, validator *validator.Validate) *VoucherService {
	return &VoucherService{
		repo:      repo,
		validator: validator,
	}
}

// VoucherItemRequest represents one line item on a voucher request
type VoucherItemRequest struct {
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty" validate:"max=200"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction,omitempty" validate:"omitempty,oneof=consumed produced"`
}

// CreateVoucherRequest represents the request to create a voucher
type CreateVoucherRequest struct {
	VoucherType string               `json:"voucher_type" validate:"required,oneof=purchase sales payment receipt manufacturing_journal"`
	Date        time.Time            `json:"date" validate:"required"`
	Reference   string               `json:"reference,omitempty" validate:"max=100"`
	CustomerID  *uuid.UUID           `json:"customer_id,omitempty"`
	VendorID    *uuid.UUID           `json:"vendor_id,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Items       []VoucherItemRequest `json:"items" validate:"dive"`
}

// UpdateVoucherRequest represents the request to update a draft voucher
type UpdateVoucherRequest struct {
	Date       time.Time            `json:"date" validate:"required"`
	Reference  string               `json:"reference,omitempty" validate:"max=100"`
	CustomerID *uuid.UUID           `json:"customer_id,omitempty"`
	VendorID   *uuid.UUID           `json:"vendor_id,omitempty"`
	Notes      string               `json:"notes,omitempty"`
	Items      []VoucherItemRequest `json:"items" validate:"dive"`
}

// VoucherItemResponse represents one line item in a voucher response
type VoucherItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction,omitempty"`
}

// VoucherResponse represents the response for voucher operations
type VoucherResponse struct {
	ID             uuid.UUID             `json:"id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	VoucherType    string                `json:"voucher_type"`
	Status         string                `json:"status"`
	Date           string                `json:"date"`
	Reference      string                `json:"reference"`
	CustomerID     *uuid.UUID            `json:"customer_id,omitempty"`
	VendorID       *uuid.UUID            `json:"vendor_id,omitempty"`
	Total          decimal.Decimal       `json:"total"`
	Notes          string                `json:"notes"`
	CreatedByID    uuid.UUID             `json:"created_by_id"`
	Items          []VoucherItemResponse `json:"items"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// VoucherListResponse represents a paginated list of vouchers
type VoucherListResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new draft voucher with its line items
func (s *VoucherService) Create(orgID, createdByID uuid.UUID, req *CreateVoucherRequest) (*VoucherResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	voucherType := models.VoucherType(req.VoucherType)
	if err := validateParty(voucherType, req.CustomerID, req.VendorID); err != nil {
		return nil, err
	}

	items, total, err := buildItems(voucherType, req.Items)
	if err != nil {
		return nil, err
	}

	voucher := &models.Voucher{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		VoucherType: voucherType,
		Status:      models.VoucherStatusDraft,
		Date:        req.Date,
		Reference:   req.Reference,
		CustomerID:  req.CustomerID,
		VendorID:    req.VendorID,
		Total:       total,
		Notes:       req.Notes,
		CreatedByID: createdByID,
		Items:       items,
	}

	if err := s.repo.Create(voucher); err != nil {
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	return s.toResponse(voucher), nil
}

// GetByID retrieves a voucher with items scoped to an organization
func (s *VoucherService) GetByID(orgID, id uuid.UUID) (*VoucherResponse, error) {
	voucher, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}

	return s.toResponse(voucher), nil
}

// GetByOrganization retrieves vouchers of an organization, filtered and paginated
func (s *VoucherService) GetByOrganization(orgID uuid.UUID, filter repository.VoucherFilter, page, pageSize int) (*VoucherListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	vouchers, total, err := s.repo.GetByOrganization(orgID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get vouchers: %w", err)
	}

	responses := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = *s.toResponse(&vouchers[i])
	}

	return &VoucherListResponse{
		Vouchers: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update replaces the header fields and line items of a draft voucher.
// Submitted, approved and cancelled vouchers are immutable.
func (s *VoucherService) Update(orgID, id uuid.UUID, req *UpdateVoucherRequest) (*VoucherResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	voucher, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}

	if voucher.Status != models.VoucherStatusDraft {
		return nil, apperrors.ErrVoucherNotEditable
	}

	if err := validateParty(voucher.VoucherType, req.CustomerID, req.VendorID); err != nil {
		return nil, err
	}

	items, total, err := buildItems(voucher.VoucherType, req.Items)
	if err != nil {
		return nil, err
	}

	voucher.Date = req.Date
	voucher.Reference = req.Reference
	voucher.CustomerID = req.CustomerID
	voucher.VendorID = req.VendorID
	voucher.Notes = req.Notes
	voucher.Total = total
	voucher.Items = nil

	// ReplaceItems writes the header and its line items in one transaction.
	if err := s.repo.ReplaceItems(voucher, items); err != nil {
		return nil, fmt.Errorf("failed to update voucher: %w", err)
	}

	return s.GetByID(orgID, id)
}

// Submit moves a draft voucher to submitted
func (s *VoucherService) Submit(orgID, id uuid.UUID) (*VoucherResponse, error) {
	return s.transition(orgID, id, models.VoucherStatusSubmitted)
}

// Approve moves a submitted voucher to approved
func (s *VoucherService) Approve(orgID, id uuid.UUID) (*VoucherResponse, error) {
	return s.transition(orgID, id, models.VoucherStatusApproved)
}

// Cancel moves a draft or submitted voucher to cancelled
func (s *VoucherService) Cancel(orgID, id uuid.UUID) (*VoucherResponse, error) {
	return s.transition(orgID, id, models.VoucherStatusCancelled)
}

func (s *VoucherService) transition(orgID, id uuid.UUID, target models.VoucherStatus) (*VoucherResponse, error) {
	voucher, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}

	allowed := false
	for _, next := range validTransitions[voucher.Status] {
		if next == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, voucher.Status, target)
	}

	// Submission is the point where a document must be complete.
	if target == models.VoucherStatusSubmitted && len(voucher.Items) == 0 {
		return nil, apperrors.ErrVoucherItemsMissing
	}

	voucher.Status = target
	if err := s.repo.Update(voucher); err != nil {
		return nil, fmt.Errorf("failed to update voucher status: %w", err)
	}

	return s.toResponse(voucher), nil
}

// Delete deletes a draft voucher scoped to an organization
func (s *VoucherService) Delete(orgID, id uuid.UUID) error {
	voucher, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVoucherNotFound
		}
		return fmt.Errorf("failed to get voucher: %w", err)
	}

	if voucher.Status != models.VoucherStatusDraft {
		return apperrors.ErrVoucherNotEditable
	}

	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVoucherNotFound
		}
		return fmt.Errorf("failed to delete voucher: %w", err)
	}
	return nil
}

// validateParty enforces which party a voucher type must carry. Sales and
// receipt vouchers reference a customer, purchase and payment vouchers a
// vendor. Manufacturing journals are internal and carry neither.
func validateParty(voucherType models.VoucherType, customerID, vendorID *uuid.UUID) error {
	switch voucherType {
	case models.VoucherTypeSales, models.VoucherTypeReceipt:
		if customerID == nil {
			return apperrors.ErrVoucherPartyMissing
		}
	case models.VoucherTypePurchase, models.VoucherTypePayment:
		if vendorID == nil {
			return apperrors.ErrVoucherPartyMissing
		}
	case models.VoucherTypeManufacturingJournal:
		if customerID != nil || vendorID != nil {
			return apperrors.NewValidationError("voucher", "manufacturing journals do not reference a customer or vendor")
		}
	}
	return nil
}

// buildItems converts item requests into models, computing per-line amounts
// and the voucher total. A missing amount defaults to quantity times rate.
// Manufacturing journal lines must carry a direction; the total only counts
// produced lines since consumed lines are inputs, not output value.
func buildItems(voucherType models.VoucherType, reqs []VoucherItemRequest) ([]models.VoucherItem, decimal.Decimal, error) {
	if len(reqs) == 0 {
		return nil, decimal.Zero, apperrors.ErrVoucherItemsMissing
	}

	isManufacturing := voucherType == models.VoucherTypeManufacturingJournal
	items := make([]models.VoucherItem, 0, len(reqs))
	total := decimal.Zero

	for _, req := range reqs {
		if req.Quantity.Sign() <= 0 {
			return nil, decimal.Zero, apperrors.NewValidationError("quantity", "must be positive")
		}
		if req.Rate.IsNegative() {
			return nil, decimal.Zero, apperrors.NewValidationError("rate", "must not be negative")
		}

		direction := models.VoucherItemDirection(req.Direction)
		if isManufacturing {
			if direction != models.ItemDirectionConsumed && direction != models.ItemDirectionProduced {
				return nil, decimal.Zero, apperrors.ErrManufacturingDirections
			}
		} else if direction != "" {
			return nil, decimal.Zero, apperrors.NewValidationError("direction", "only allowed on manufacturing journal items")
		}

		amount := req.Amount
		if amount.IsZero() {
			amount = req.Quantity.Mul(req.Rate).Round(2)
		}
		if amount.IsNegative() {
			return nil, decimal.Zero, apperrors.NewValidationError("amount", "must not be negative")
		}

		items = append(items, models.VoucherItem{
			ProductID:   req.ProductID,
			Description: req.Description,
			Quantity:    req.Quantity,
			Rate:        req.Rate,
			Amount:      amount,
			Direction:   direction,
		})

		if !isManufacturing || direction == models.ItemDirectionProduced {
			total = total.Add(amount)
		}
	}

	return items, total, nil
}

// toResponse converts a voucher model to response
func (s *VoucherService) toResponse(voucher *models.Voucher) *VoucherResponse {
	items := make([]VoucherItemResponse, len(voucher.Items))
	for i, item := range voucher.Items {
		items[i] = VoucherItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			Direction:   string(item.Direction),
		}
	}

	return &VoucherResponse{
		ID:             voucher.ID,
		OrganizationID: voucher.OrganizationID,
		VoucherType:    string(voucher.VoucherType),
		Status:         string(voucher.Status),
		Date:           voucher.Date.Format("2006-01-02"),
		Reference:      voucher.Reference,
		CustomerID:     voucher.CustomerID,
		VendorID:       voucher.VendorID,
		Total:          voucher.Total,
		Notes:          voucher.Notes,
		CreatedByID:    voucher.CreatedByID,
		Items:          items,
		CreatedAt:      voucher.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      voucher.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
