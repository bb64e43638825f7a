package handlers

import (
	"net/http"

	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/repository"
	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TicketHandler handles HTTP requests for service desk tickets
type TicketHandler struct {
	service service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(service service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{service: service}
}

// CreateTicket handles POST /api/v1/tickets
// @Summary Create a new ticket
// @Description Create a ticket raised by the caller
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} service.TicketResponse "Successfully created ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.Create(access.OrganizationID, access.User.ID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetTicket handles GET /api/v1/tickets/:id
// @Summary Get ticket by ID
// @Description Get a ticket within the caller's organization
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} service.TicketResponse "Successfully retrieved ticket"
// @Failure 400 {object} map[string]interface{} "Invalid ticket ID"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// ListTickets handles GET /api/v1/tickets
// @Summary List tickets
// @Description Get tickets of the caller's organization, filtered by status, priority or assignee
// @Tags tickets
// @Accept json
// @Produce json
// @Param status query string false "Ticket status" Enums(open, in_progress, resolved, closed)
// @Param priority query string false "Ticket priority" Enums(low, medium, high, critical)
// @Param assignee_id query string false "Assignee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TicketListResponse "Successfully retrieved tickets"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	filter := repository.TicketFilter{
		Status:   models.TicketStatus(c.Query("status")),
		Priority: models.TicketPriority(c.Query("priority")),
	}
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignee_id: invalid UUID format"})
			return
		}
		filter.AssigneeID = &id
	}

	tickets, err := h.service.GetByOrganization(access.OrganizationID, filter, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// UpdateTicket handles PUT /api/v1/tickets/:id
// @Summary Update a ticket
// @Description Update a ticket within the caller's organization
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param ticket body service.UpdateTicketRequest true "Ticket data"
// @Success 200 {object} service.TicketResponse "Successfully updated ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// AssignTicket handles POST /api/v1/tickets/:id/assign
// @Summary Assign a ticket
// @Description Set or clear the assignee of a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param assignment body service.AssignTicketRequest true "Assignment data"
// @Success 200 {object} service.TicketResponse "Successfully assigned ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/assign [post]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ticket, err := h.service.Assign(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to assign ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// DeleteTicket handles DELETE /api/v1/tickets/:id
// @Summary Delete a ticket
// @Description Delete a ticket within the caller's organization
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 204 "Successfully deleted ticket"
// @Failure 400 {object} map[string]interface{} "Invalid ticket ID"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete ticket")
		return
	}

	c.Status(http.StatusNoContent)
}
