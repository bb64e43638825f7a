package models

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the service-desk ticket lifecycle state
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority orders the queue
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// Ticket is a service-desk request raised within an organization
type Ticket struct {
	TenantModel
	Subject     string         `json:"subject" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string         `json:"description" gorm:"type:text"`
	Status      TicketStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	Priority    TicketPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	RequesterID uuid.UUID      `json:"requester_id" gorm:"type:uuid;index"`
	AssigneeID  *uuid.UUID     `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	CustomerID  *uuid.UUID     `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`

	Requester *User     `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	Assignee  *User     `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Customer  *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
