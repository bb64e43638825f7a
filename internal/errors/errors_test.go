package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "customer"}
		assert.Equal(t, "customer not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "customer"}
		err2 := &NotFoundError{Entity: "customer"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "customer"}
		err2 := &NotFoundError{Entity: "voucher"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCustomerNotFound, ErrCustomerNotFound))
		assert.False(t, errors.Is(ErrCustomerNotFound, ErrVoucherNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCustomerNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrVoucherNotFound)))
		assert.False(t, IsNotFound(ErrCustomerExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "customer", Context: "with this name in the organization"}
		assert.Equal(t, "customer already exists with this name in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "customer"}
		assert.Equal(t, "customer already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "product", Context: "in org"}
		err2 := &AlreadyExistsError{Entity: "product", Context: "in org"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProductExists))
		assert.False(t, IsAlreadyExists(ErrProductNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "unit_price", Message: "must not be negative"}
		assert.Equal(t, "validation error: unit_price - must not be negative", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "something is off"}
		assert.Equal(t, "validation error: something is off", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "required")))
		assert.False(t, IsValidation(ErrCustomerNotFound))
	})
}

func TestAuthenticationAndAuthorization(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrUserNotInContext))
		assert.False(t, IsAuthentication(ErrInvalidRefreshToken))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(&AuthorizationError{Message: "forbidden"}))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}

func TestBusinessErrors(t *testing.T) {
	t.Run("wrapped status transition error", func(t *testing.T) {
		err := fmt.Errorf("%w: approved to draft", ErrInvalidStatusTransition)
		assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
		assert.Contains(t, err.Error(), "approved to draft")
	})

	t.Run("voucher lifecycle sentinels are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrVoucherNotEditable, ErrInvalidStatusTransition))
		assert.False(t, errors.Is(ErrVoucherItemsMissing, ErrVoucherPartyMissing))
	})
}
