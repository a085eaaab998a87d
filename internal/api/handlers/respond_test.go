package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/api/middleware"
	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

func TestSuccessEnvelopes(t *testing.T) {
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) {
		OK(c, "fetched", gin.H{"id": 1})
	})
	r.POST("/created", func(c *gin.Context) {
		Created(c, "created", gin.H{"id": 2})
	})
	r.GET("/nodata", func(c *gin.Context) {
		OK(c, "done", nil)
	})

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"fetched","data":{"id":1}}`, w.Body.String())
	})

	t.Run("created", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/created", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"created","data":{"id":2}}`, w.Body.String())
	})

	t.Run("nil data omitted", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nodata", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"done"}`, w.Body.String())
	})
}

func TestFail_RendersThroughErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		Fail(c, apperrors.ErrFieldNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"required field not found"}`, w.Body.String())
}
