package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/internal/forms"
	"github.com/agnesederberg/Final-project-2/internal/middleware"
	"github.com/agnesederberg/Final-project-2/internal/models"
	"github.com/agnesederberg/Final-project-2/internal/repository"
	"github.com/agnesederberg/Final-project-2/internal/session"
	"github.com/agnesederberg/Final-project-2/pkg/logger"
	"github.com/agnesederberg/Final-project-2/pkg/responses"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	repo        repository.Repository
	sessions    *session.Manager
	audit       AuditPublisher
	rememberTTL time.Duration
}

func NewAuthHandler(repo repository.Repository, sessions *session.Manager, audit AuditPublisher, rememberTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		repo:        repo,
		sessions:    sessions,
		audit:       audit,
		rememberTTL: rememberTTL,
	}
}

// alreadyAuthenticated short-circuits register/login for logged-in users.
func (h *AuthHandler) alreadyAuthenticated(c *gin.Context) bool {
	token, _ := c.Cookie(middleware.SessionCookie)
	if token == "" {
		return false
	}
	_, err := h.sessions.Current(c.Request.Context(), token)
	return err == nil
}

// Register creates a new user from the registration form.
func (h *AuthHandler) Register(c *gin.Context) {
	if h.alreadyAuthenticated(c) {
		responses.Redirect(c, "/", "")
		return
	}

	values := postedValues(c, "name", "email", "password", "confirm_password")
	form := forms.NewRegistrationForm(values, h.repo)
	if !form.Validate(c.Request.Context()) {
		responses.Redisplay(c, http.StatusUnprocessableEntity, form, "")
		return
	}

	hash, err := auth.HashPassword(form.Get("password"))
	if err != nil {
		logger.Log.Error().Err(err).Msg("Password hashing failed")
		responses.Redisplay(c, http.StatusInternalServerError, form,
			"There was an error while creating your user. "+tryAgainLater)
		return
	}

	user := models.User{
		Name:         form.Get("name"),
		Email:        form.Get("email"),
		PasswordHash: hash,
	}
	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create user")
		responses.Redisplay(c, failureStatus(err), form,
			"There was an error while creating your user. "+tryAgainLater)
		return
	}

	publishAudit(h.audit, c.Request.Context(),
		events.NewAuditEvent(events.UserRegistered, events.EntityUser, user.ID, user.ID))
	responses.Redirect(c, "/login", "User successfully created. Please log in!")
}

// Login opens a session for valid credentials. The failure message
// never says whether the email or the password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.alreadyAuthenticated(c) {
		responses.Redirect(c, "/", "")
		return
	}

	values := postedValues(c, "email", "password", "remember")
	form := forms.NewLoginForm(values)
	if !form.Validate(c.Request.Context()) {
		responses.Redisplay(c, http.StatusUnprocessableEntity, form, "")
		return
	}

	remember := forms.Remember(values)
	token, err := h.sessions.Login(c.Request.Context(), form.Get("email"), form.Get("password"), remember)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			responses.Redisplay(c, http.StatusUnauthorized, form,
				"Login Unsuccessful. Please check email and password.")
			return
		}
		logger.Log.Error().Err(err).Msg("Login failed")
		responses.Redisplay(c, http.StatusInternalServerError, form,
			"There was an error while logging you in. "+tryAgainLater)
		return
	}

	// Without remember the cookie lives only for the browser session.
	maxAge := 0
	if remember {
		maxAge = int(h.rememberTTL.Seconds())
	}
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
	responses.Redirect(c, safeNext(c.Query("next")), "Welcome!")
}

// Logout closes the session. Logging out while anonymous is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to close session")
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	responses.Redirect(c, "/login", "Logout successful!")
}
