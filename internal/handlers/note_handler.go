package handlers

import (
	"errors"
	"net/http"

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

type NoteHandler struct {
	repo  repository.Repository
	audit AuditPublisher
}

func NewNoteHandler(repo repository.Repository, audit AuditPublisher) *NoteHandler {
	return &NoteHandler{repo: repo, audit: audit}
}

// ownedFolder loads a folder and checks it belongs to the current user.
// It writes the response itself on failure and returns nil.
func (h *NoteHandler) ownedFolder(c *gin.Context, folderID uuid.UUID) *models.Folder {
	principal := middleware.CurrentPrincipal(c)

	folder, err := h.repo.FindFolderByID(c.Request.Context(), folderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Folder not found")
			return nil
		}
		logger.Log.Error().Err(err).Msg("Failed to load folder")
		responses.Error(c, http.StatusInternalServerError, "Could not load the folder. "+tryAgainLater)
		return nil
	}
	if folder.UserID != principal.ID {
		responses.Error(c, http.StatusForbidden, "You do not have access to this folder")
		return nil
	}
	return folder
}

// CreateNote adds a note to one of the current user's folders.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid folder ID")
		return
	}
	folder := h.ownedFolder(c, folderID)
	if folder == nil {
		return
	}

	values := postedValues(c, "data")
	form := forms.NewNoteForm(values)
	if !form.Validate(c.Request.Context()) {
		responses.Redisplay(c, http.StatusUnprocessableEntity, form, "")
		return
	}

	note := models.Note{Data: form.Get("data"), FolderID: folder.ID}
	if err := h.repo.CreateNote(c.Request.Context(), &note); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create note")
		responses.Redisplay(c, failureStatus(err), form,
			"There was an error while creating the note. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.NoteCreated, events.EntityNote, note.ID, principal.ID))
	responses.Redirect(c, "/folders/"+folder.ID.String(), "Note created successfully!")
}

// GetNote returns one note, owner only.
func (h *NoteHandler) GetNote(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := h.repo.FindNoteByID(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Note not found")
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to load note")
		responses.Error(c, http.StatusInternalServerError, "Could not load the note. "+tryAgainLater)
		return
	}
	if h.ownedFolder(c, note.FolderID) == nil {
		return
	}

	responses.JSON(c, http.StatusOK, note)
}

// DeleteNote removes a note. Deleting one that is already gone succeeds.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := h.repo.FindNoteByID(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			responses.Redirect(c, "/folders", "Note deleted.")
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to load note for deletion")
		responses.Error(c, http.StatusInternalServerError,
			"There was an error while deleting the note. "+tryAgainLater)
		return
	}
	folder := h.ownedFolder(c, note.FolderID)
	if folder == nil {
		return
	}

	if err := h.repo.DeleteNote(c.Request.Context(), noteID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Log.Error().Err(err).Msg("Failed to delete note")
		responses.Error(c, failureStatus(err),
			"There was an error while deleting the note. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.NoteDeleted, events.EntityNote, noteID, principal.ID))
	responses.Redirect(c, "/folders/"+folder.ID.String(), "Note deleted.")
}
