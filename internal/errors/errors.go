package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. Cross-tenant
// lookups surface as NotFoundError too, so unauthorized callers cannot tell
// a foreign record from a missing one.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrRoleNotFound          = &NotFoundError{Entity: "role"}
	ErrCustomerNotFound      = &NotFoundError{Entity: "customer"}
	ErrVendorNotFound        = &NotFoundError{Entity: "vendor"}
	ErrProductNotFound       = &NotFoundError{Entity: "product"}
	ErrVoucherNotFound       = &NotFoundError{Entity: "voucher"}
	ErrTaskNotFound          = &NotFoundError{Entity: "task"}
	ErrCalendarEventNotFound = &NotFoundError{Entity: "calendar event"}
	ErrTicketNotFound        = &NotFoundError{Entity: "ticket"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name or subdomain"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrRoleExists         = &AlreadyExistsError{Entity: "role", Context: "with this name in the organization"}
	ErrCustomerExists     = &AlreadyExistsError{Entity: "customer", Context: "with this name in the organization"}
	ErrVendorExists       = &AlreadyExistsError{Entity: "vendor", Context: "with this name in the organization"}
	ErrProductExists      = &AlreadyExistsError{Entity: "product", Context: "with this SKU in the organization"}
	ErrRoleAssigned       = &AlreadyExistsError{Entity: "role assignment", Context: "for this user"}
)

// Business Logic Errors
var (
	ErrInvalidStatus             = errors.New("invalid status")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrVoucherNotEditable        = errors.New("voucher can only be edited in draft status")
	ErrVoucherPartyMissing       = errors.New("voucher requires a customer or vendor party")
	ErrVoucherItemsMissing       = errors.New("voucher requires at least one line item")
	ErrManufacturingDirections   = errors.New("manufacturing journal items require a consumed or produced direction")
	ErrInvalidTimeRange          = errors.New("invalid time range")
	ErrRoleNotAssigned           = errors.New("role is not assigned to this user")
	ErrInvalidPaginationParams   = errors.New("invalid pagination parameters")
	ErrOrganizationRequired      = errors.New("user has no organization assigned")
	ErrInsufficientPermission    = errors.New("insufficient permission")
	ErrUserInactive              = errors.New("user account is inactive")
	ErrSuperAdminFlagNotSettable = errors.New("super admin flag cannot be set through the API")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrUserNotInContext    = &AuthenticationError{Message: "user not found in request context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
