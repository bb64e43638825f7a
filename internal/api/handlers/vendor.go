package handlers

import (
	"net/http"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VendorHandler handles HTTP requests for vendors
type VendorHandler struct {
	service service.VendorServiceInterface
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(service service.VendorServiceInterface) *VendorHandler {
	return &VendorHandler{service: service}
}

// CreateVendor handles POST /api/v1/vendors
// @Summary Create a new vendor
// @Description Create a vendor in the caller's organization
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body service.CreateVendorRequest true "Vendor data"
// @Success 201 {object} service.VendorResponse "Successfully created vendor"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Vendor already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vendor, err := h.service.Create(access.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create vendor")
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetVendor handles GET /api/v1/vendors/:id
// @Summary Get vendor by ID
// @Description Get a vendor within the caller's organization
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 200 {object} service.VendorResponse "Successfully retrieved vendor"
// @Failure 400 {object} map[string]interface{} "Invalid vendor ID"
// @Failure 404 {object} map[string]interface{} "Vendor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// ListVendors handles GET /api/v1/vendors
// @Summary List vendors
// @Description Get vendors of the caller's organization with pagination
// @Tags vendors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.VendorListResponse "Successfully retrieved vendors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	vendors, err := h.service.GetByOrganization(access.OrganizationID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list vendors")
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// UpdateVendor handles PUT /api/v1/vendors/:id
// @Summary Update a vendor
// @Description Update a vendor within the caller's organization
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Param vendor body service.UpdateVendorRequest true "Vendor data"
// @Success 200 {object} service.VendorResponse "Successfully updated vendor"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Vendor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vendor, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor handles DELETE /api/v1/vendors/:id
// @Summary Delete a vendor
// @Description Delete a vendor within the caller's organization
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 204 "Successfully deleted vendor"
// @Failure 400 {object} map[string]interface{} "Invalid vendor ID"
// @Failure 404 {object} map[string]interface{} "Vendor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete vendor")
		return
	}

	c.Status(http.StatusNoContent)
}
