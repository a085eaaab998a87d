package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"etree.io/etree/internal/api/handlers"
	"etree.io/etree/internal/api/middleware"
	"etree.io/etree/internal/config"
	"etree.io/etree/internal/domain"
)

func newRouter(cfg *config.Config, server *handlers.Server, deps handlers.ServerDeps) *gin.Engine {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public profile pictures.
	router.Static("/media", cfg.Media.Dir)

	api := router.Group("/api")

	// Public surface: signup, login, password reset, and the role list
	// the signup page renders.
	api.POST("/auth/signup", server.Signup)
	api.POST("/auth/login", server.Login)
	api.POST("/auth/otp/generate", server.GenerateOTP)
	api.POST("/auth/otp/verify", server.VerifyOTP)
	api.GET("/roles/signup-roles", server.ListSignupRoles)

	authed := api.Group("", middleware.AuthRequired(deps.JWTCfg))

	authed.POST("/auth/logout", server.Logout)
	authed.GET("/auth/me", server.Me)
	authed.POST("/auth/me/profile-picture", server.UpdateProfilePicture)

	// Field form: any authenticated user; per-field fill/edit ownership
	// is enforced in the value service.
	authed.GET("/users/me/fields", server.GetUserFields)
	authed.POST("/users/me/fields/:fieldId", server.SetFieldValue)
	authed.POST("/users/me/fields/:fieldId/upload", server.UploadFieldDocument)
	authed.GET("/users/me/fields/:fieldId/download", server.DownloadFieldDocument)
	authed.DELETE("/users/me/fields/:fieldId/file", server.DeleteFieldDocument)

	// Creatable roles and user creation: open to any authenticated
	// actor; the handler checks the actor's role against the target.
	authed.GET("/roles/creatable", server.ListCreatableRoles)
	authed.POST("/users/", server.CreateUser)

	admin := authed.Group("", middleware.RequireRoles(domain.RoleSuperUser, domain.RoleAdmin))

	admin.POST("/roles/", server.CreateRole)
	admin.GET("/roles/", server.ListRoles)
	admin.GET("/roles/:roleId", server.GetRole)
	admin.GET("/roles/by-name/:name", server.GetRoleByName)
	admin.PUT("/roles/:roleId", server.UpdateRole)
	admin.DELETE("/roles/:roleId", server.DeleteRole)

	admin.POST("/role-permissions/permissions/", server.CreatePermission)
	admin.GET("/role-permissions/permissions/", server.ListPermissions)
	admin.POST("/role-permissions/permissions/assign", server.AssignPermission)
	admin.DELETE("/role-permissions/permissions/remove/:roleId/:permissionId", server.RemovePermission)
	admin.GET("/role-permissions/permissions/role/:roleId", server.ListRolePermissions)

	admin.GET("/users/role/:roleId", server.ListUsersByRole)
	admin.GET("/users/:userId", server.GetUser)
	admin.PUT("/users/:userId", server.UpdateUser)
	admin.PATCH("/users/:userId/deactivate", server.DeactivateUser)

	// Field definitions: table-permission gated, admin roles bypass.
	checker := middleware.NewPermissionChecker(deps.EntClient)
	fields := authed.Group("/user-required-fields", middleware.RequirePermission(checker, "user_required_fields"))
	fields.POST("/", server.CreateField)
	fields.PUT("/:fieldId", server.UpdateField)
	fields.GET("/:fieldId", server.GetField)
	fields.DELETE("/:fieldId", server.DeleteField)
	fields.PATCH("/:fieldId/activate", server.ActivateField)
	fields.PATCH("/:fieldId/deactivate", server.DeactivateField)
	fields.GET("/role/:roleId", server.ListFieldsByRole)
	fields.GET("/role/:roleId/name/:fieldName", server.GetFieldByName)
	fields.GET("/active", server.ListActiveFields)
	fields.GET("/field-types", server.ListFieldTypes)
	fields.GET("/validators-by-type/:type", server.ListValidatorsByType)

	return router
}
