package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"etree.io/etree/internal/domain"
)

func rbacTestRouter(role string, roleID int, allowed ...string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Request = c.Request.WithContext(
				SetUserContext(c.Request.Context(), "u1", "a@b.c", role, roleID),
			)
		}
		c.Next()
	})
	r.GET("/admin", RequireRoles(allowed...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{
			name:     "allowed role",
			role:     domain.RoleAdmin,
			allowed:  []string{domain.RoleSuperUser, domain.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "super user allowed",
			role:     domain.RoleSuperUser,
			allowed:  []string{domain.RoleSuperUser, domain.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "role not in list",
			role:     "Student",
			allowed:  []string{domain.RoleSuperUser, domain.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "role match is exact",
			role:     "admin",
			allowed:  []string{domain.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unauthenticated",
			role:     "",
			allowed:  []string{domain.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rbacTestRouter(tt.role, 1, tt.allowed...)
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequirePermission_AdminBypass(t *testing.T) {
	// nil checker: the bypass path must never consult the database
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			SetUserContext(c.Request.Context(), "u1", "a@b.c", domain.RoleSuperUser, 1),
		)
		c.Next()
	})
	r.GET("/fields", RequirePermission(nil, "user_required_fields"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/fields", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission_Unauthenticated(t *testing.T) {
	r := gin.New()
	r.GET("/fields", RequirePermission(nil, "user_required_fields"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/fields", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
