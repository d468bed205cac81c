package handlers

import (
	"errors"
	"net/http"

	"github.com/agnesederberg/Final-project-2/internal/dto"
	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/internal/forms"
	"github.com/agnesederberg/Final-project-2/internal/middleware"
	"github.com/agnesederberg/Final-project-2/internal/models"
	"github.com/agnesederberg/Final-project-2/internal/repository"
	"github.com/agnesederberg/Final-project-2/pkg/logger"
	"github.com/agnesederberg/Final-project-2/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FolderHandler struct {
	repo  repository.Repository
	audit AuditPublisher
}

func NewFolderHandler(repo repository.Repository, audit AuditPublisher) *FolderHandler {
	return &FolderHandler{repo: repo, audit: audit}
}

// CreateFolder creates a folder owned by the current user.
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	values := postedValues(c, "name", "category_id")
	form := forms.NewFolderForm(values, h.repo)
	if !form.Validate(c.Request.Context()) {
		responses.Redisplay(c, http.StatusUnprocessableEntity, form, "")
		return
	}

	categoryID, _ := uuid.Parse(form.Get("category_id"))
	folder := models.Folder{
		Name:       form.Get("name"),
		UserID:     principal.ID,
		CategoryID: categoryID,
	}
	if err := h.repo.CreateFolder(c.Request.Context(), &folder); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create folder")
		responses.Redisplay(c, failureStatus(err), form,
			"There was an error while creating the folder. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.FolderCreated, events.EntityFolder, folder.ID, principal.ID))
	responses.Redirect(c, "/folders", "Folder created successfully!")
}

// ListFolders returns the current user's folders with note counts.
func (h *FolderHandler) ListFolders(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	folders, err := h.repo.ListFoldersByUser(c.Request.Context(), principal.ID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list folders")
		responses.Error(c, http.StatusInternalServerError, "Could not load your folders. "+tryAgainLater)
		return
	}

	views := make([]dto.FolderView, 0, len(folders))
	for _, folder := range folders {
		view := dto.FolderView{
			ID:         folder.ID,
			Name:       folder.Name,
			CategoryID: folder.CategoryID,
		}
		if category, err := h.repo.FindCategoryByID(c.Request.Context(), folder.CategoryID); err == nil {
			view.CategoryName = category.Name
		}
		if notes, err := h.repo.ListNotesByFolder(c.Request.Context(), folder.ID); err == nil {
			view.NoteCount = len(notes)
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"message": responses.PopFlash(c), "data": views})
}

// GetFolder returns one folder with its notes. Only the owner may see it.
func (h *FolderHandler) GetFolder(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	folder, err := h.repo.FindFolderByID(c.Request.Context(), folderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Folder not found")
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to load folder")
		responses.Error(c, http.StatusInternalServerError, "Could not load the folder. "+tryAgainLater)
		return
	}
	if folder.UserID != principal.ID {
		responses.Error(c, http.StatusForbidden, "You do not have access to this folder")
		return
	}

	notes, err := h.repo.ListNotesByFolder(c.Request.Context(), folder.ID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to load notes")
		responses.Error(c, http.StatusInternalServerError, "Could not load the folder. "+tryAgainLater)
		return
	}

	view := dto.FolderDetailView{
		FolderView: dto.FolderView{
			ID:         folder.ID,
			Name:       folder.Name,
			CategoryID: folder.CategoryID,
			NoteCount:  len(notes),
		},
		Notes: notes,
	}
	if category, err := h.repo.FindCategoryByID(c.Request.Context(), folder.CategoryID); err == nil {
		view.CategoryName = category.Name
	}

	c.JSON(http.StatusOK, gin.H{"message": responses.PopFlash(c), "data": view})
}

// DeleteFolder removes a folder and its notes. The route only accepts
// an explicit POST; deleting a folder that is already gone succeeds.
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid folder ID")
		return
	}

	folder, err := h.repo.FindFolderByID(c.Request.Context(), folderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			responses.Redirect(c, "/folders", "Folder deleted.")
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to load folder for deletion")
		responses.Error(c, http.StatusInternalServerError,
			"There was an error while deleting the folder. "+tryAgainLater)
		return
	}
	if folder.UserID != principal.ID {
		responses.Error(c, http.StatusForbidden, "You do not have access to this folder")
		return
	}

	if err := h.repo.DeleteFolder(c.Request.Context(), folderID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Log.Error().Err(err).Msg("Failed to delete folder")
		responses.Error(c, failureStatus(err),
			"There was an error while deleting the folder. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.FolderDeleted, events.EntityFolder, folderID, principal.ID))
	responses.Redirect(c, "/folders", "Folder deleted.")
}
