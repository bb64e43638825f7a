package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority orders tasks in list views
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is a simple per-organization work item with an optional assignee
type Task struct {
	TenantModel
	Title       string       `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string       `json:"description" gorm:"type:text"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	AssigneeID  *uuid.UUID   `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	DueDate     *time.Time   `json:"due_date,omitempty"`

	Assignee *User `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
