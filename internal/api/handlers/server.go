// Package handlers implements the HTTP API of the Etree admin service.
//
// Every response uses the Envelope shape; failures flow through
// middleware.ErrorHandler via Fail(). Handlers bind input, call a
// service, and render — no business rules live here.
package handlers

import (
	"github.com/gin-gonic/gin"

	"etree.io/etree/ent"
	"etree.io/etree/internal/api/middleware"
	"etree.io/etree/internal/service"
)

// Server holds the handler dependencies.
type Server struct {
	client       *ent.Client
	jwtCfg       middleware.JWTConfig
	cookieSecure bool
	cookieDomain string
	users        *service.UserService
	roles        *service.RoleService
	permissions  *service.PermissionService
	fields       *service.FieldService
	values       *service.ValueService
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient    *ent.Client
	JWTCfg       middleware.JWTConfig
	CookieSecure bool
	CookieDomain string
	Users        *service.UserService
	Roles        *service.RoleService
	Permissions  *service.PermissionService
	Fields       *service.FieldService
	Values       *service.ValueService
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		jwtCfg:       deps.JWTCfg,
		cookieSecure: deps.CookieSecure,
		cookieDomain: deps.CookieDomain,
		users:        deps.Users,
		roles:        deps.Roles,
		permissions:  deps.Permissions,
		fields:       deps.Fields,
		values:       deps.Values,
	}
}

// actorFromCtx builds the acting identity from the authenticated
// request context.
func actorFromCtx(c *gin.Context) service.Actor {
	ctx := c.Request.Context()
	return service.Actor{
		UserID:   middleware.GetUserID(ctx),
		RoleID:   middleware.GetRoleID(ctx),
		RoleName: middleware.GetRole(ctx),
	}
}
