package handlers

import (
	"net/http"

	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/repository"
	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	service service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask handles POST /api/v1/tasks
// @Summary Create a new task
// @Description Create a task in the caller's organization
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.Create(access.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /api/v1/tasks/:id
// @Summary Get task by ID
// @Description Get a task within the caller's organization
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks handles GET /api/v1/tasks
// @Summary List tasks
// @Description Get tasks of the caller's organization, filtered by status or assignee
// @Tags tasks
// @Accept json
// @Produce json
// @Param status query string false "Task status" Enums(open, in_progress, done)
// @Param assignee_id query string false "Assignee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TaskListResponse "Successfully retrieved tasks"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	filter := repository.TaskFilter{
		Status: models.TaskStatus(c.Query("status")),
	}
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignee_id: invalid UUID format"})
			return
		}
		filter.AssigneeID = &id
	}

	tasks, err := h.service.GetByOrganization(access.OrganizationID, filter, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask handles PUT /api/v1/tasks/:id
// @Summary Update a task
// @Description Update a task within the caller's organization
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Task data"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/tasks/:id
// @Summary Delete a task
// @Description Delete a task within the caller's organization
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Successfully deleted task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}
