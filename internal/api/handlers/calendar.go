package handlers

import (
	"net/http"
	"time"

	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for calendar events
type CalendarHandler struct {
	service service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// CreateEvent handles POST /api/v1/calendar/events
// @Summary Create a new calendar event
// @Description Create a calendar event owned by the caller
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Successfully created event"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.service.Create(access.OrganizationID, access.User.ID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create calendar event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /api/v1/calendar/events/:id
// @Summary Get calendar event by ID
// @Description Get a calendar event within the caller's organization
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.EventResponse "Successfully retrieved event"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/events/{id} [get]
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.service.GetByID(access.OrganizationID, id)
	if err != nil {
		respondServiceError(c, err, "Failed to get calendar event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEvents handles GET /api/v1/calendar/events
// @Summary List calendar events
// @Description Get calendar events of the caller's organization overlapping a time window
// @Tags calendar
// @Accept json
// @Produce json
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EventListResponse "Successfully retrieved events"
// @Failure 400 {object} map[string]interface{} "Invalid time window"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from: expected RFC 3339 timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to: expected RFC 3339 timestamp"})
		return
	}

	events, err := h.service.GetInRange(access.OrganizationID, from, to, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "Failed to list calendar events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpdateEvent handles PUT /api/v1/calendar/events/:id
// @Summary Update a calendar event
// @Description Update a calendar event within the caller's organization
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Event data"
// @Success 200 {object} service.EventResponse "Successfully updated event"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.service.Update(access.OrganizationID, id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update calendar event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/v1/calendar/events/:id
// @Summary Delete a calendar event
// @Description Delete a calendar event within the caller's organization
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Successfully deleted event"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	access, ok := requireAccess(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(access.OrganizationID, id); err != nil {
		respondServiceError(c, err, "Failed to delete calendar event")
		return
	}

	c.Status(http.StatusNoContent)
}
