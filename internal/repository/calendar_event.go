package repository

import (
	"time"

	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEventRepository handles database operations for calendar events
type CalendarEventRepository struct {
	db *gorm.DB
}

// NewCalendarEventRepository creates a new calendar event repository
func NewCalendarEventRepository(db *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{db: db}
}

// Create creates a new calendar event
func (r *CalendarEventRepository) Create(event *models.CalendarEvent) error {
	return r.db.Create(event).Error
}

// GetByIDForOrg retrieves an event by ID scoped to an organization
func (r *CalendarEventRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := r.db.First(&event, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByOrganizationInRange retrieves events overlapping [from, to)
func (r *CalendarEventRepository) GetByOrganizationInRange(orgID uuid.UUID, from, to time.Time, limit, offset int) ([]models.CalendarEvent, int64, error) {
	var events []models.CalendarEvent
	var total int64

	base := r.db.Model(&models.CalendarEvent{}).
		Where("organization_id = ? AND start_time < ? AND end_time > ?", orgID, to, from)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Order("start_time").Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Update updates a calendar event
func (r *CalendarEventRepository) Update(event *models.CalendarEvent) error {
	return r.db.Save(event).Error
}

// Delete deletes a calendar event scoped to an organization
func (r *CalendarEventRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.CalendarEvent{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
