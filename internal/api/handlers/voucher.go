package handlers

import (
	"net/http"

	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/repository"
	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VoucherHandler handles HTTP requests for vouchers
type VoucherHandler struct {
	service service.VoucherServiceInterface
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(service service.VoucherServiceInterface) *VoucherHandler {
	return &VoucherHandler{service: service}
}

// CreateVoucher handles POST /api/v1/vouchers
// @Summary Create a new voucher
// @Description Create a draft voucher with line items in the caller's organization
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body service.CreateVoucherRequest true "Voucher data"
// @Success 201 {object} service.VoucherResponse "Successfully created voucher"
// @Failure 400 {object} map[string]interface{} "Invalid request body or missing party/items"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	voucher, err := h.service.Create(access.OrganizationID, access.User.ID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create voucher")
		return
	}

	c.JSON(http.StatusCreated, voucher)
}

// GetVoucher handles GET /api/v1/vouchers/:id
// @Summary Get voucher by ID
// @Description Get a voucher with its line items within the caller's organization
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID (UUID)"
// @Success 200 {object} service.VoucherResponse "Successfully retrieved voucher"
// @Failure 400 {object} map[string]interface{} "Invalid voucher ID"
// @Failure 404 {object} map[string]interface{} "Voucher not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	voucher, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get voucher")
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// ListVouchers handles GET /api/v1/vouchers
// @Summary List vouchers
// @Description Get vouchers of the caller's organization, filtered by type, status or party
// @Tags vouchers
// @Accept json
// @Produce json
// @Param type query string false "Voucher type" Enums(purchase, sales, payment, receipt, manufacturing_journal)
// @Param status query string false "Voucher status" Enums(draft, submitted, approved, cancelled)
// @Param customer_id query string false "Customer ID (UUID)"
// @Param vendor_id query string false "Vendor ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.VoucherListResponse "Successfully retrieved vouchers"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	filter := repository.VoucherFilter{
		VoucherType: models.VoucherType(c.Query("type")),
		Status:      models.VoucherStatus(c.Query("status")),
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id: invalid UUID format"})
			return
		}
		filter.CustomerID = &id
	}
	if raw := c.Query("vendor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor_id: invalid UUID format"})
			return
		}
		filter.VendorID = &id
	}

	vouchers, err := h.service.GetByOrganization(access.OrganizationID, filter, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list vouchers")
		return
	}

	c.JSON(http.StatusOK, vouchers)
}

// UpdateVoucher handles PUT /api/v1/vouchers/:id
// @Summary Update a draft voucher
// @Description Replace the header fields and line items of a draft voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID (UUID)"
// @Param voucher body service.UpdateVoucherRequest true "Voucher data"
// @Success 200 {object} service.VoucherResponse "Successfully updated voucher"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Voucher not found"
// @Failure 409 {object} map[string]interface{} "Voucher is not editable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers/{id} [put]
func (h *VoucherHandler) UpdateVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	voucher, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update voucher")
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// SubmitVoucher handles POST /api/v1/vouchers/:id/submit
// @Summary Submit a voucher
// @Description Move a draft voucher to submitted
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID (UUID)"
// @Success 200 {object} service.VoucherResponse "Successfully submitted voucher"
// @Failure 400 {object} map[string]interface{} "Voucher has no line items"
// @Failure 404 {object} map[string]interface{} "Voucher not found"
// @Failure 409 {object} map[string]interface{} "Invalid status transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers/{id}/submit [post]
func (h *VoucherHandler) SubmitVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	voucher, err := h.service.Submit(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to submit voucher")
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// ApproveVoucher handles POST /api/v1/vouchers/:id/approve
// @Summary Approve a voucher
// @Description Move a submitted voucher to approved
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID (UUID)"
// @Success 200 {object} service.VoucherResponse "Successfully approved voucher"
// @Failure 404 {object} map[string]interface{} "Voucher not found"
// @Failure 409 {object} map[string]interface{} "Invalid status transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers/{id}/approve [post]
func (h *VoucherHandler) ApproveVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	voucher, err := h.service.Approve(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to approve voucher")
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// CancelVoucher handles POST /api/v1/vouchers/:id/cancel
// @Summary Cancel a voucher
// @Description Move a draft or submitted voucher to cancelled
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID (UUID)"
// @Success 200 {object} service.VoucherResponse "Successfully cancelled voucher"
// @Failure 404 {object} map[string]interface{} "Voucher not found"
// @Failure 409 {object} map[string]interface{} "Invalid status transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers/{id}/cancel [post]
func (h *VoucherHandler) CancelVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	voucher, err := h.service.Cancel(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to cancel voucher")
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// DeleteVoucher handles DELETE /api/v1/vouchers/:id
// @Summary Delete a draft voucher
// @Description Delete a draft voucher and its line items
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID (UUID)"
// @Success 204 "Successfully deleted voucher"
// @Failure 400 {object} map[string]interface{} "Invalid voucher ID"
// @Failure 404 {object} map[string]interface{} "Voucher not found"
// @Failure 409 {object} map[string]interface{} "Voucher is not editable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vouchers/{id} [delete]
func (h *VoucherHandler) DeleteVoucher(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete voucher")
		return
	}

	c.Status(http.StatusNoContent)
}
