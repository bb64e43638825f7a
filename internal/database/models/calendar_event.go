package models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a per-organization calendar entry
type CalendarEvent struct {
	TenantModel
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"size:200" validate:"max=200"`
	StartTime   time.Time `json:"start_time" gorm:"not null;index"`
	EndTime     time.Time `json:"end_time" gorm:"not null"`
	AllDay      bool      `json:"all_day" gorm:"not null;default:false"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;index"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// TableName returns the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
