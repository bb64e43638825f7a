package repository

import (
	"business-suite-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByIDForOrg retrieves a task by ID scoped to an organization
func (r *TaskRepository) GetByIDForOrg(orgID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Assignee").First(&task, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskFilter narrows task listings
type TaskFilter struct {
	Status     models.TaskStatus
	AssigneeID *uuid.UUID
}

// GetByOrganization retrieves tasks of an organization, filtered and paginated
func (r *TaskRepository) GetByOrganization(orgID uuid.UUID, filter TaskFilter, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	base := r.db.Model(&models.Task{}).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != nil {
		base = base.Where("assignee_id = ?", *filter.AssigneeID)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).
		Order("due_date ASC NULLS LAST, created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task scoped to an organization
func (r *TaskRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Task{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
