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

// CalendarService handles business logic for calendar events
type CalendarService struct {
	repo      repository.CalendarEventRepositoryInterface
	validator *validator.Validate
}

// NewCalendarService creates a new calendar service
func NewCalendarService(repo repository.CalendarEventRepositoryInterface, validator *validator.Validate) *CalendarService {
	return &CalendarService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEventRequest represents the request to create a calendar event
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty" validate:"max=200"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	AllDay      bool      `json:"all_day"`
}

// UpdateEventRequest represents the request to update a calendar event
type UpdateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty" validate:"max=200"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	AllDay      bool      `json:"all_day"`
}

// EventResponse represents the response for calendar event operations
type EventResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	AllDay         bool      `json:"all_day"`
	OwnerID        uuid.UUID `json:"owner_id"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// EventListResponse represents a paginated list of calendar events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new calendar event owned by the acting user
func (s *CalendarService) Create(orgID, ownerID uuid.UUID, req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	event := &models.CalendarEvent{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AllDay:      req.AllDay,
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetByID retrieves a calendar event by ID scoped to an organization
func (s *CalendarService) GetByID(orgID, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetInRange retrieves events of an organization overlapping a time window
func (s *CalendarService) GetInRange(orgID uuid.UUID, from, to time.Time, page, pageSize int) (*EventListResponse, error) {
	if !to.After(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	events, total, err := s.repo.GetByOrganizationInRange(orgID, from, to, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = *s.toResponse(&events[i])
	}

	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a calendar event scoped to an organization
func (s *CalendarService) Update(orgID, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	event, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.AllDay = req.AllDay

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	return s.toResponse(event), nil
}

// Delete deletes a calendar event scoped to an organization
func (s *CalendarService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCalendarEventNotFound
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// toResponse converts a calendar event model to response
func (s *CalendarService) toResponse(event *models.CalendarEvent) *EventResponse {
	return &EventResponse{
		ID:             event.ID,
		OrganizationID: event.OrganizationID,
		Title:          event.Title,
		Description:    event.Description,
		Location:       event.Location,
		StartTime:      event.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		EndTime:        event.EndTime.Format("2006-01-02T15:04:05Z07:00"),
		AllDay:         event.AllDay,
		OwnerID:        event.OwnerID,
		CreatedAt:      event.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      event.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
