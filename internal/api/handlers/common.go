package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"business-suite-backend/internal/auth"
	apperrors "business-suite-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// requireAccess pulls the tenant scope set by the access middleware. A
// missing scope means the route was wired without RequireAccess.
func requireAccess(c *gin.Context) (*auth.Access, bool) {
	access, ok := auth.GetAccess(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	return access, true
}

// parseUUIDParam parses a path parameter as UUID, responding 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page and page_size query parameters. Out-of-range
// values are clamped by the service layer.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// respondServiceError maps service errors to HTTP status codes. Not-found
// errors become 404 so callers cannot distinguish foreign records from
// missing ones.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrVoucherNotEditable),
		errors.Is(err, apperrors.ErrRoleAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrVoucherPartyMissing),
		errors.Is(err, apperrors.ErrVoucherItemsMissing),
		errors.Is(err, apperrors.ErrManufacturingDirections),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrRoleNotAssigned),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrSuperAdminFlagNotSettable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
