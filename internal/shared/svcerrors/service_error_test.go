package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad value")
	err := NewInvalidArgumentError("CUS_1000", "name is required", cause)

	assert.Equal(t, categoryInvalidArgument, err.Category)
	assert.Equal(t, "CUS_1000", err.Code)
	assert.Equal(t, "name is required", err.Message)
	assert.Equal(t, 400, err.HttpStatusCode)
	assert.Equal(t, cause, err.Cause)
	assert.False(t, err.IsInternalError())
}

func TestNewNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("ORD_1001", "order not found", nil)

	assert.Equal(t, categoryNotFound, err.Category)
	assert.Equal(t, 404, err.HttpStatusCode)
	assert.False(t, err.IsInternalError())
}

func TestNewResourceConflictError(t *testing.T) {
	t.Parallel()

	err := NewResourceConflictError("CUS_1001", "phone already registered", nil)

	assert.Equal(t, categoryResourceConflict, err.Category)
	assert.Equal(t, 409, err.HttpStatusCode)
}

func TestNewInternalError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := NewInternalError("RPT_9000", cause)

	assert.Equal(t, categoryInternal, err.Category)
	assert.Equal(t, "internal server error", err.Message)
	assert.Equal(t, 500, err.HttpStatusCode)
	assert.True(t, err.IsInternalError())
}

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := NewInternalError("SYS_9001", cause)

	assert.Equal(t, "SYS_9001: internal server error", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestAsServiceError(t *testing.T) {
	t.Parallel()

	svcErr := NewInvalidArgumentError("IMP_1000", "invalid payload", nil)
	wrapped := fmt.Errorf("handler: %w", svcErr)

	got, ok := AsServiceError(wrapped)
	require.True(t, ok)
	assert.Equal(t, svcErr, got)

	_, ok = AsServiceError(errors.New("plain error"))
	assert.False(t, ok)
}
