package handlers

import (
	"net/http"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	service service.CustomerServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service service.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// CreateCustomer handles POST /api/v1/customers
// @Summary Create a new customer
// @Description Create a customer in the caller's organization
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body service.CreateCustomerRequest true "Customer data"
// @Success 201 {object} service.CustomerResponse "Successfully created customer"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Customer already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.service.Create(access.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /api/v1/customers/:id
// @Summary Get customer by ID
// @Description Get a customer within the caller's organization
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} service.CustomerResponse "Successfully retrieved customer"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /api/v1/customers
// @Summary List customers
// @Description Get customers of the caller's organization, optionally filtered by a search query
// @Tags customers
// @Accept json
// @Produce json
// @Param q query string false "Search query matching name, contact or email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CustomerListResponse "Successfully retrieved customers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	var (
		customers *service.CustomerListResponse
		err       error
	)
	if query := c.Query("q"); query != "" {
		customers, err = h.service.Search(access.OrganizationID, query, page, pageSize)
	} else {
		customers, err = h.service.GetByOrganization(access.OrganizationID, page, pageSize)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// UpdateCustomer handles PUT /api/v1/customers/:id
// @Summary Update a customer
// @Description Update a customer within the caller's organization
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param customer body service.UpdateCustomerRequest true "Customer data"
// @Success 200 {object} service.CustomerResponse "Successfully updated customer"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
// @Summary Delete a customer
// @Description Delete a customer within the caller's organization
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 204 "Successfully deleted customer"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete customer")
		return
	}

	c.Status(http.StatusNoContent)
}
