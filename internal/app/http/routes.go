package routes

import (
	authapi "notes-app/internal/api/auth"
	healthapi "notes-app/internal/api/health"
	notesapi "notes-app/internal/api/notes"
	tenantsapi "notes-app/internal/api/tenants"
	"notes-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	authHandler := authapi.NewHandler(db, jwtSecret)
	notesHandler := notesapi.NewHandler(db)
	tenantsHandler := tenantsapi.NewHandler(db)
	healthHandler := healthapi.NewHandler(db)

	api := r.Group("/api")

	api.GET("/health", healthHandler.Check)

	public := api.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/auth/login", authHandler.Login)

	// Authenticated
	auth := api.Group("/")
	auth.Use(middleware.RequireAuth(db, jwtSecret))
	auth.GET("/notes", notesHandler.List)
	auth.POST("/notes", notesHandler.Create)
	auth.GET("/notes/:id", notesHandler.Get)
	auth.PUT("/notes/:id", notesHandler.Update)
	auth.DELETE("/notes/:id", notesHandler.Delete)

	// Admin routes
	admin := api.Group("/tenants")
	admin.Use(middleware.RequireAuth(db, jwtSecret), middleware.RequireAdmin())
	admin.POST("/:slug/upgrade", tenantsHandler.Upgrade)
}
