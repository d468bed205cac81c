package router

import (
	"github.com/agnesederberg/Final-project-2/internal/handlers"
	"github.com/agnesederberg/Final-project-2/internal/middleware"
	"github.com/agnesederberg/Final-project-2/internal/session"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Folder   *handlers.FolderHandler
	Note     *handlers.NoteHandler
	Category *handlers.CategoryHandler
}

// SetupRouter registers all routes. Everything below the site routes
// requires a live session.
func SetupRouter(router *gin.Engine, sessions *session.Manager, h Handlers) {
	SiteRoutes(router, h.Auth)

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(sessions))

	ProfileRoutes(protected, h.Profile)
	FolderRoutes(protected, h.Folder, h.Note)
	NoteRoutes(protected, h.Note)

	protected.GET("/categories", h.Category.ListCategories)
}
