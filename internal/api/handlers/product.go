package handlers

import (
	"net/http"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProduct handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a product in the caller's organization
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} service.ProductResponse "Successfully created product"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Product with this SKU already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.Create(access.OrganizationID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /api/v1/products/:id
// @Summary Get product by ID
// @Description Get a product within the caller's organization
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} service.ProductResponse "Successfully retrieved product"
// @Failure 400 {object} map[string]interface{} "Invalid product ID"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Description Get products of the caller's organization with pagination
// @Tags products
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProductListResponse "Successfully retrieved products"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	products, err := h.service.GetByOrganization(access.OrganizationID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct handles PUT /api/v1/products/:id
// @Summary Update a product
// @Description Update a product within the caller's organization
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body service.UpdateProductRequest true "Product data"
// @Success 200 {object} service.ProductResponse "Successfully updated product"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 409 {object} map[string]interface{} "Product with this SKU already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// AdjustStock handles POST /api/v1/products/:id/stock
// @Summary Adjust product stock
// @Description Apply a signed delta to a product's stock quantity
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param adjustment body service.AdjustStockRequest true "Stock adjustment"
// @Success 200 {object} service.ProductResponse "Successfully adjusted stock"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /products/{id}/stock [post]
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.service.AdjustStock(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to adjust stock")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Description Delete a product within the caller's organization
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Successfully deleted product"
// @Failure 400 {object} map[string]interface{} "Invalid product ID"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}
