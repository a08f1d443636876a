package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "product not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("order not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "order not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "password", Message: "too short"},
	}

	err := NewValidationError("validation failed", details...)

	assert.NotNil(t, err)
	assert.Equal(t, "validation failed", err.Message)
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "email", ve.Details[0].Field)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("insufficient stock")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "insufficient stock", ce.Message)

	_, ok = IsConflictError(errors.New("other"))
	assert.False(t, ok)
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("insufficient role")

	fe, ok := IsForbiddenError(err)
	assert.True(t, ok)
	assert.Equal(t, "insufficient role", fe.Message)
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("invalid credentials")

	ue, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid credentials", ue.Message)
}

func TestDeadlockError(t *testing.T) {
	err := NewDeadlockError("checkout contention")

	de, ok := IsDeadlockError(err)
	assert.True(t, ok)
	assert.Equal(t, "checkout contention", de.Message)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("querying products", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "querying products: connection refused", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NoCause(t *testing.T) {
	err := NewInternalError("unexpected state", nil)

	assert.Equal(t, "unexpected state", err.Error())
	assert.Nil(t, err.Unwrap())
}
