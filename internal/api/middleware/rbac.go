package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"etree.io/etree/ent"
	entpermission "etree.io/etree/ent/permission"
	entrole "etree.io/etree/ent/role"
	"etree.io/etree/internal/domain"
)

// RequireRoles returns middleware that allows only users whose role name
// is in the given list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c.Request.Context())
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "error", "message": "not authenticated",
			})
			return
		}
		if slices.Contains(roles, role) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status": "error", "message": "insufficient permissions",
		})
	}
}

// PermissionChecker answers whether a role holds a table/method permission.
type PermissionChecker struct {
	client *ent.Client
}

// NewPermissionChecker creates a new checker.
func NewPermissionChecker(client *ent.Client) *PermissionChecker {
	return &PermissionChecker{client: client}
}

// HasPermission reports whether the role has been granted the permission
// identified by table name and HTTP method.
func (p *PermissionChecker) HasPermission(ctx context.Context, roleID int, tableName, method string) (bool, error) {
	return p.client.Role.Query().
		Where(entrole.IDEQ(roleID)).
		QueryPermissions().
		Where(
			entpermission.TableNameEQ(tableName),
			entpermission.MethodEQ(strings.ToUpper(method)),
		).
		Exist(ctx)
}

// RequirePermission returns middleware that checks role-based table
// permissions. Super User and Admin bypass the check.
func RequirePermission(checker *PermissionChecker, tableName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c.Request.Context())
		if domain.IsAdminRole(role) {
			c.Next()
			return
		}

		roleID := GetRoleID(c.Request.Context())
		if roleID == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "error", "message": "not authenticated",
			})
			return
		}

		ok, err := checker.HasPermission(c.Request.Context(), roleID, tableName, c.Request.Method)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status": "error", "message": "permission check failed",
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "error", "message": "insufficient permissions",
			})
			return
		}

		c.Next()
	}
}
