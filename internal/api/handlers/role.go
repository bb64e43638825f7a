package handlers

import (
	"net/http"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleHandler handles HTTP requests for roles
type RoleHandler struct {
	service service.RoleServiceInterface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(service service.RoleServiceInterface) *RoleHandler {
	return &RoleHandler{service: service}
}

// CreateRole handles POST /api/v1/roles
// @Summary Create a new role
// @Description Create a role with a set of permission strings
// @Tags roles
// @Accept json
// @Produce json
// @Param role body service.CreateRoleRequest true "Role data"
// @Success 201 {object} service.RoleResponse "Successfully created role"
// @Failure 400 {object} map[string]interface{} "Invalid request body or unknown permission"
// @Failure 409 {object} map[string]interface{} "Role already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Create(access.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create role")
		return
	}

	c.JSON(http.StatusCreated, role)
}

// GetRole handles GET /api/v1/roles/:id
// @Summary Get role by ID
// @Description Get a role within the caller's organization
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Success 200 {object} service.RoleResponse "Successfully retrieved role"
// @Failure 400 {object} map[string]interface{} "Invalid role ID"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get role")
		return
	}

	c.JSON(http.StatusOK, role)
}

// ListRoles handles GET /api/v1/roles
// @Summary List roles
// @Description Get roles of the caller's organization with pagination
// @Tags roles
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.RoleListResponse "Successfully retrieved roles"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	roles, err := h.service.GetByOrganization(access.OrganizationID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list roles")
		return
	}

	c.JSON(http.StatusOK, roles)
}

// UpdateRole handles PUT /api/v1/roles/:id
// @Summary Update a role
// @Description Update a role's name, description or permissions
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Param role body service.UpdateRoleRequest true "Role data"
// @Success 200 {object} service.RoleResponse "Successfully updated role"
// @Failure 400 {object} map[string]interface{} "Invalid request body or unknown permission"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, role)
}

// DeleteRole handles DELETE /api/v1/roles/:id
// @Summary Delete a role
// @Description Delete a role within the caller's organization
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Success 204 "Successfully deleted role"
// @Failure 400 {object} map[string]interface{} "Invalid role ID"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete role")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPermissionCatalog handles GET /api/v1/roles/permissions
// @Summary List available permissions
// @Description Get the full catalog of permission strings grouped by module
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]string "Permission catalog"
// @Security BearerAuth
// @Router /roles/permissions [get]
func (h *RoleHandler) GetPermissionCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Catalog())
}
