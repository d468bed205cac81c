package router

import (
	"github.com/agnesederberg/Final-project-2/internal/handlers"

	"github.com/gin-gonic/gin"
)

// NoteRoutes defines routes for note management.
func NoteRoutes(rg *gin.RouterGroup, noteHandler *handlers.NoteHandler) {
	notes := rg.Group("/notes")
	{
		notes.GET("/:noteId", noteHandler.GetNote)
		notes.POST("/:noteId/delete", noteHandler.DeleteNote)
	}
}
