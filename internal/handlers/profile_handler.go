package handlers

import (
	"errors"
	"net/http"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/dto"
	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/internal/forms"
	"github.com/agnesederberg/Final-project-2/internal/middleware"
	"github.com/agnesederberg/Final-project-2/internal/repository"
	"github.com/agnesederberg/Final-project-2/internal/session"
	"github.com/agnesederberg/Final-project-2/pkg/logger"
	"github.com/agnesederberg/Final-project-2/pkg/responses"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	repo     repository.Repository
	sessions *session.Manager
	audit    AuditPublisher
}

func NewProfileHandler(repo repository.Repository, sessions *session.Manager, audit AuditPublisher) *ProfileHandler {
	return &ProfileHandler{repo: repo, sessions: sessions, audit: audit}
}

// GetProfile returns the current user for the profile page.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	c.JSON(http.StatusOK, gin.H{
		"message": responses.PopFlash(c),
		"data":    dto.ProfileView{ID: principal.ID, Name: principal.Name, Email: principal.Email},
	})
}

// UpdateProfile changes the user's display name.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	values := postedValues(c, "name")
	form := forms.NewUpdateProfileForm(values)
	if !form.Validate(c.Request.Context()) {
		responses.Redisplay(c, http.StatusUnprocessableEntity, form, "")
		return
	}

	if err := h.repo.UpdateUserName(c.Request.Context(), principal.ID, form.Get("name")); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to update profile")
		responses.Redisplay(c, failureStatus(err), form,
			"There was an error while updating your profile. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.UserProfileUpdated, events.EntityUser, principal.ID, principal.ID))
	responses.Redirect(c, "/profile", "Profile updated successfully!")
}

// UpdatePassword replaces the stored credential digest. The current
// password is re-verified by the form; a failed verification never
// touches the stored hash. Success closes the session so the user logs
// in again with the new password.
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	values := postedValues(c, "current_password", "new_password", "confirm_password")
	form := forms.NewUpdatePasswordForm(values, h.repo, principal.ID)
	if !form.Validate(c.Request.Context()) {
		status := http.StatusUnprocessableEntity
		if _, bad := form.Errors["current_password"]; bad {
			status = http.StatusUnauthorized
		}
		responses.Redisplay(c, status, form, "")
		return
	}

	hash, err := auth.HashPassword(form.Get("new_password"))
	if err != nil {
		logger.Log.Error().Err(err).Msg("Password hashing failed")
		responses.Redisplay(c, http.StatusInternalServerError, form,
			"There was an error while updating your password. "+tryAgainLater)
		return
	}

	if err := h.repo.UpdateUserPassword(c.Request.Context(), principal.ID, hash); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to update password")
		responses.Redisplay(c, failureStatus(err), form,
			"There was an error while updating your password. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.UserPasswordChanged, events.EntityUser, principal.ID, principal.ID))

	token, _ := c.Cookie(middleware.SessionCookie)
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to close session after password change")
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	responses.Redirect(c, "/login", "Password updated successfully! Log in with your new password!")
}

// DeleteAccount removes the user with all folders and notes. Deleting
// an already-deleted account behaves like a successful delete.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	err := h.repo.DeleteUser(c.Request.Context(), principal.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Log.Error().Err(err).Msg("Failed to delete account")
		responses.Error(c, failureStatus(err),
			"There was an error while deleting your account. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.UserDeleted, events.EntityUser, principal.ID, principal.ID))

	token, _ := c.Cookie(middleware.SessionCookie)
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to close session after account deletion")
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	responses.Redirect(c, "/", "Your account has been deleted.")
}
