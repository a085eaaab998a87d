package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  New("NOT_FOUND", "resource not found", http.StatusNotFound),
			want: "NOT_FOUND: resource not found",
		},
		{
			name: "with cause",
			err:  New("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError).WithErr(errors.New("connection refused")),
			want: "INTERNAL_ERROR: internal server error: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_WithErr(t *testing.T) {
	cause := errors.New("boom")
	wrapped := ErrInternal.WithErr(cause)

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, ErrInternal.Code, wrapped.Code)

	// original sentinel must not be mutated
	assert.Nil(t, ErrInternal.Err)
}

func TestAppError_WithMessage(t *testing.T) {
	custom := ErrBadRequest.WithMessage("role name is required")

	assert.Equal(t, "role name is required", custom.Message)
	assert.Equal(t, ErrBadRequest.Code, custom.Code)
	assert.Equal(t, http.StatusBadRequest, custom.HTTPStatus)
	assert.Equal(t, "invalid request", ErrBadRequest.Message)
}

func TestAppError_WithMessagef(t *testing.T) {
	custom := ErrBadRequest.WithMessagef("invalid %s", "roleId")
	assert.Equal(t, "invalid roleId", custom.Message)
}

func TestAsAppError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		appErr, ok := AsAppError(ErrForbidden)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("wrapped in fmt chain", func(t *testing.T) {
		err := fmt.Errorf("handling request: %w", ErrUserNotFound.WithErr(errors.New("sql: no rows")))
		appErr, ok := AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "USER_NOT_FOUND", appErr.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		appErr, ok := AsAppError(errors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, appErr)
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", ErrFieldNotFound, http.StatusNotFound},
		{"wrapped app error", fmt.Errorf("ctx: %w", ErrFileTooLarge), http.StatusRequestEntityTooLarge},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"custom", New("TEAPOT", "short and stout", http.StatusTeapot), http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
