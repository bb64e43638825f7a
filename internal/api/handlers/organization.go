package handlers

import (
	"net/http"

	apperrors "business-suite-backend/internal/errors"
	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create a new tenant organization (super-admin only)
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	// Non-super-admins only ever see their own organization; a foreign id
	// looks exactly like a missing one.
	if !access.IsSuperAdmin() && id != access.OrganizationID {
		respondServiceError(c, apperrors.ErrOrganizationNotFound, "Failed to get organization")
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List organizations
// @Description List organizations; tenant users see only their own organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.OrganizationListResponse "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	// A tenant user's listing holds exactly their own organization.
	if !access.IsSuperAdmin() {
		org, err := h.service.GetByID(access.OrganizationID)
		if err != nil {
			respondServiceError(c, err, "Failed to list organizations")
			return
		}
		c.JSON(http.StatusOK, &service.OrganizationListResponse{
			Organizations: []service.OrganizationResponse{*org},
			Total:         1,
			Page:          1,
			PageSize:      1,
		})
		return
	}

	page, pageSize := parsePagination(c)

	orgs, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update an organization
// @Description Update an organization's details, status or plan
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Organization name already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if !access.IsSuperAdmin() && id != access.OrganizationID {
		respondServiceError(c, apperrors.ErrOrganizationNotFound, "Failed to update organization")
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete an organization
// @Description Delete an organization and all its records (super-admin only)
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}
