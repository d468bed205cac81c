package router

import (
	"github.com/agnesederberg/Final-project-2/internal/handlers"

	"github.com/gin-gonic/gin"
)

// FolderRoutes defines routes for folder management. Deletion is a POST
// with an explicit action path, never a GET.
func FolderRoutes(rg *gin.RouterGroup, folderHandler *handlers.FolderHandler, noteHandler *handlers.NoteHandler) {
	folders := rg.Group("/folders")
	{
		folders.GET("", folderHandler.ListFolders)
		folders.POST("", folderHandler.CreateFolder)
		folders.GET("/:folderId", folderHandler.GetFolder)
		folders.POST("/:folderId/delete", folderHandler.DeleteFolder)

		// Note creation within folder
		folders.POST("/:folderId/notes", noteHandler.CreateNote)
	}
}
