package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for service-desk tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// GetByIDForOrg retrieves a ticket by ID scoped to an organization
func (r *TicketRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Assignee").Preload("Requester").
		First(&ticket, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// TicketFilter narrows ticket listings
type TicketFilter struct {
	Status     models.TicketStatus
	Priority   models.TicketPriority
	AssigneeID *uuid.UUID
}

// GetByOrganization retrieves tickets of an organization, filtered and paginated
func (r *TicketRepository) GetByOrganization(orgID uuid.UUID, filter TicketFilter, limit, offset int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	base := r.db.Model(&models.Ticket{}).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		base = base.Where("priority = ?", filter.Priority)
	}
	if filter.AssigneeID != nil {
		base = base.Where("assignee_id = ?", *filter.AssigneeID)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// Delete deletes a ticket scoped to an organization
func (r *TicketRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Ticket{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
