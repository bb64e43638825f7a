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
	"gorm.io/gorm"
)

// TicketService handles business logic for service desk tickets
type TicketService struct {
	repo      repository.TicketRepositoryInterface
	validator *validator.Validate
}

// NewTicketService creates a new ticket service
func NewTicketService(repo repository.TicketRepositoryInterface, validator *validator.Validate) *TicketService {
	return &TicketService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTicketRequest represents the request to create a ticket
type CreateTicketRequest struct {
	Subject     string     `json:"subject" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"`
}

// UpdateTicketRequest represents the request to update a ticket
type UpdateTicketRequest struct {
	Subject     string     `json:"subject" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"`
}

// AssignTicketRequest represents the request to assign a ticket to a user
type AssignTicketRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

// TicketResponse represents the response for ticket operations
type TicketResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Subject        string     `json:"subject"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	RequesterID    uuid.UUID  `json:"requester_id"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	CustomerID     *uuid.UUID `json:"customer_id,omitempty"`
	ResolvedAt     *string    `json:"resolved_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// TicketListResponse represents a paginated list of tickets
type TicketListResponse struct {
	Tickets  []TicketResponse `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new ticket raised by the acting user
func (s *TicketService) Create(orgID, requesterID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := models.TicketPriority(req.Priority)
	if priority == "" {
		priority = models.TicketPriorityMedium
	}

	ticket := &models.Ticket{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		Subject:     req.Subject,
		Description: req.Description,
		Status:      models.TicketStatusOpen,
		Priority:    priority,
		RequesterID: requesterID,
		CustomerID:  req.CustomerID,
	}

	if err := s.repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return s.toResponse(ticket), nil
}

// GetByID retrieves a ticket by ID scoped to an organization
func (s *TicketService) GetByID(orgID, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return s.toResponse(ticket), nil
}

// GetByOrganization retrieves tickets of an organization, filtered and paginated
func (s *TicketService) GetByOrganization(orgID uuid.UUID, filter repository.TicketFilter, page, pageSize int) (*TicketListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tickets, total, err := s.repo.GetByOrganization(orgID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	responses := make([]TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = *s.toResponse(&tickets[i])
	}

	return &TicketListResponse{
		Tickets:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a ticket scoped to an organization. Moving to resolved
// stamps ResolvedAt; reopening clears it.
func (s *TicketService) Update(orgID, id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	ticket.Subject = req.Subject
	ticket.Description = req.Description
	if req.Priority != "" {
		ticket.Priority = models.TicketPriority(req.Priority)
	}
	ticket.CustomerID = req.CustomerID

	if req.Status != "" {
		newStatus := models.TicketStatus(req.Status)
		if newStatus != ticket.Status {
			s.applyStatus(ticket, newStatus)
		}
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return s.toResponse(ticket), nil
}

// Assign sets or clears the ticket assignee. Assigning an open ticket moves
// it to in_progress.
func (s *TicketService) Assign(orgID, id uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error) {
	ticket, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	ticket.AssigneeID = req.AssigneeID
	if req.AssigneeID != nil && ticket.Status == models.TicketStatusOpen {
		ticket.Status = models.TicketStatusInProgress
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}

	return s.toResponse(ticket), nil
}

// Delete deletes a ticket scoped to an organization
func (s *TicketService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTicketNotFound
		}
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (s *TicketService) applyStatus(ticket *models.Ticket, status models.TicketStatus) {
	ticket.Status = status
	switch status {
	case models.TicketStatusResolved:
		now := time.Now().UTC()
		ticket.ResolvedAt = &now
	case models.TicketStatusOpen, models.TicketStatusInProgress:
		ticket.ResolvedAt = nil
	}
}

// toResponse converts a ticket model to response
func (s *TicketService) toResponse(ticket *models.Ticket) *TicketResponse {
	var resolvedAt *string
	if ticket.ResolvedAt != nil {
		formatted := ticket.ResolvedAt.Format("2006-01-02T15:04:05Z07:00")
		resolvedAt = &formatted
	}

	return &TicketResponse{
		ID:             ticket.ID,
		OrganizationID: ticket.OrganizationID,
		Subject:        ticket.Subject,
		Description:    ticket.Description,
		Status:         string(ticket.Status),
		Priority:       string(ticket.Priority),
		RequesterID:    ticket.RequesterID,
		AssigneeID:     ticket.AssigneeID,
		CustomerID:     ticket.CustomerID,
		ResolvedAt:     resolvedAt,
		CreatedAt:      ticket.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      ticket.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
