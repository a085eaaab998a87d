package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		handler     gin.HandlerFunc
		wantCode    int
		wantMessage string
	}{
		{
			name: "app error renders its status and message",
			handler: func(c *gin.Context) {
				_ = c.Error(apperrors.ErrFieldNotFound)
				c.Abort()
			},
			wantCode:    http.StatusNotFound,
			wantMessage: "required field not found",
		},
		{
			name: "app error with custom message",
			handler: func(c *gin.Context) {
				_ = c.Error(apperrors.ErrBadRequest.WithMessage("invalid roleId"))
				c.Abort()
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: "invalid roleId",
		},
		{
			name: "wrapped app error unwraps",
			handler: func(c *gin.Context) {
				_ = c.Error(apperrors.ErrForbidden.WithErr(errors.New("cause")))
				c.Abort()
			},
			wantCode:    http.StatusForbidden,
			wantMessage: "insufficient permissions",
		},
		{
			name: "plain error becomes 500 without leaking detail",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("pq: connection refused"))
				c.Abort()
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "An internal error occurred",
		},
		{
			name: "last error wins",
			handler: func(c *gin.Context) {
				_ = c.Error(apperrors.ErrNotFound)
				_ = c.Error(apperrors.ErrConflict)
				c.Abort()
			},
			wantCode:    http.StatusConflict,
			wantMessage: "resource already exists",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/x", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestErrorHandler_NoErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		rid := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("propagated when supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "rid-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "rid-123", w.Body.String())
	})
}
