package middleware

import (
	"errors"
	"net/url"

	"github.com/agnesederberg/Final-project-2/internal/session"
	"github.com/agnesederberg/Final-project-2/pkg/logger"
	"github.com/agnesederberg/Final-project-2/pkg/responses"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session"

const principalKey = "principal"

// RequireAuth gates routes behind a live session. Anonymous requests
// are sent to the login page with the requested destination preserved
// in the `next` query parameter, so a successful login can resume there.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)
		principal, err := sessions.Current(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				responses.Redirect(c, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()),
					"Please log in to access this page.")
				c.Abort()
				return
			}
			logger.Log.Error().Err(err).Msg("Session lookup failed")
			responses.Error(c, 500, "Something went wrong. Please try again later.")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// CurrentPrincipal returns the principal set by RequireAuth, or nil
// when the request is anonymous.
func CurrentPrincipal(c *gin.Context) *session.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := v.(*session.Principal)
	return principal
}
