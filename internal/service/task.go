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

// TaskService handles business logic for tasks
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=open in_progress done"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new task in the given organization
func (s *TaskService) Create(orgID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := models.TaskPriority(req.Priority)
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		TenantModel: models.TenantModel{OrganizationID: orgID},
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusOpen,
		Priority:    priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.toResponse(task), nil
}

// GetByID retrieves a task by ID scoped to an organization
func (s *TaskService) GetByID(orgID, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return s.toResponse(task), nil
}

// GetByOrganization retrieves tasks of an organization, filtered and paginated
func (s *TaskService) GetByOrganization(orgID uuid.UUID, filter repository.TaskFilter, page, pageSize int) (*TaskListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tasks, total, err := s.repo.GetByOrganization(orgID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *s.toResponse(&tasks[i])
	}

	return &TaskListResponse{
		Tasks:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a task scoped to an organization
func (s *TaskService) Update(orgID, id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	task, err := s.repo.GetByIDForOrg(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	task.Title = req.Title
	task.Description = req.Description
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}
	task.AssigneeID = req.AssigneeID
	task.DueDate = req.DueDate

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.toResponse(task), nil
}

// Delete deletes a task scoped to an organization
func (s *TaskService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// toResponse converts a task model to response
func (s *TaskService) toResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:             task.ID,
		OrganizationID: task.OrganizationID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		AssigneeID:     task.AssigneeID,
		DueDate:        task.DueDate,
		CreatedAt:      task.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      task.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
