package handlers

import (
	"net/http"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser handles POST /api/v1/users
// @Summary Create a new user
// @Description Create a new user in the caller's organization
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Create(access.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Description Get a user within the caller's organization
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/v1/users
// @Summary List users
// @Description Get users of the caller's organization with pagination
// @Tags users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.UserListResponse "Successfully retrieved users"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	users, err := h.service.GetByOrganization(access.OrganizationID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /api/v1/users/:id
// @Summary Update a user
// @Description Update a user within the caller's organization
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "User data"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete a user
// @Description Delete a user within the caller's organization
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 204 "Successfully deleted user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignRole handles POST /api/v1/users/:id/roles/:roleId
// @Summary Assign a role to a user
// @Description Assign a role to a user; both must belong to the caller's organization
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param roleId path string true "Role ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully assigned role"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "User or role not found"
// @Failure 409 {object} map[string]interface{} "Role already assigned"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id}/roles/{roleId} [post]
func (h *UserHandler) AssignRole(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseUUIDParam(c, "roleId")
	if !ok {
		return
	}

	user, err := h.service.AssignRole(access.OrganizationID, userID, roleID)
	if err != nil {
		respondServiceError(c, err, "Failed to assign role")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UnassignRole handles DELETE /api/v1/users/:id/roles/:roleId
// @Summary Remove a role from a user
// @Description Remove a role assignment; both must belong to the caller's organization
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param roleId path string true "Role ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully removed role"
// @Failure 400 {object} map[string]interface{} "Invalid ID or role not assigned"
// @Failure 404 {object} map[string]interface{} "User or role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id}/roles/{roleId} [delete]
func (h *UserHandler) UnassignRole(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseUUIDParam(c, "roleId")
	if !ok {
		return
	}

	user, err := h.service.UnassignRole(access.OrganizationID, userID, roleID)
	if err != nil {
		respondServiceError(c, err, "Failed to unassign role")
		return
	}

	c.JSON(http.StatusOK, user)
}
