// internal/app/router.go
package app

import (
	authHandler "portfolio-service/internal/handlers/auth"
	contactHandler "portfolio-service/internal/handlers/contact"
	profileHandler "portfolio-service/internal/handlers/profile"
	projectHandler "portfolio-service/internal/handlers/projects"
	settingsHandler "portfolio-service/internal/handlers/settings"
	skillHandler "portfolio-service/internal/handlers/skills"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *authHandler.AuthHandler
	Profile  *profileHandler.ProfileHandler
	Skills   *skillHandler.SkillHandler
	Projects *projectHandler.ProjectHandler
	Contact  *contactHandler.ContactHandler
	Settings *settingsHandler.SettingsHandler

	AuthMiddleware   gin.HandlerFunc
	ContactRateLimit gin.HandlerFunc
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.Auth.Register)
		authPublic.POST("/login", h.Auth.Login)
		authPublic.POST("/reset-password", h.Auth.ResetPassword)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware)
	{
		authProtected.GET("/me", h.Auth.Me)
		authProtected.PUT("/change-password", h.Auth.ChangePassword)
		authProtected.GET("/sessions", h.Auth.ListSessions)
		authProtected.DELETE("/sessions", h.Auth.RevokeSessions)
		authProtected.DELETE("/sessions/:id", h.Auth.RevokeSession)
	}

	// ==================== Public Content ====================
	api.GET("/profile", h.Profile.Get)
	api.GET("/skills", h.Skills.ListPublic)
	api.GET("/projects", h.Projects.ListPublic)
	api.GET("/projects/:id", h.Projects.GetPublic)
	api.GET("/settings", h.Settings.Get)
	api.POST("/contact", h.ContactRateLimit, h.Contact.Submit)

	// ==================== Admin Content ====================
	adminAPI := api.Group("/admin")
	adminAPI.Use(h.AuthMiddleware)
	{
		adminAPI.PUT("/profile", h.Profile.Update)

		adminAPI.GET("/skills", h.Skills.ListAll)
		adminAPI.POST("/skills", h.Skills.Create)
		adminAPI.PUT("/skills/:id", h.Skills.Update)
		adminAPI.DELETE("/skills/:id", h.Skills.Delete)

		adminAPI.GET("/projects", h.Projects.ListAll)
		adminAPI.POST("/projects", h.Projects.Create)
		adminAPI.PUT("/projects/:id", h.Projects.Update)
		adminAPI.DELETE("/projects/:id", h.Projects.Delete)

		adminAPI.GET("/contacts", h.Contact.List)
		adminAPI.GET("/contacts/count/unread", h.Contact.UnreadCount)
		adminAPI.PUT("/contacts/:id/read", h.Contact.MarkRead)
		adminAPI.DELETE("/contacts/:id", h.Contact.Delete)

		adminAPI.PUT("/settings", h.Settings.Update)
	}
}
