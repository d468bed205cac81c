// Package responses shapes handler outcomes: either a redirect carrying
// a flash message, or a redisplay of the submitted form with per-field
// errors. The rendering layer consumes these; nothing here produces HTML.
package responses

import (
	"net/http"
	"net/url"

	"github.com/agnesederberg/Final-project-2/internal/forms"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Redirect sends a 303 to location and stashes the flash message for
// the next page load.
func Redirect(c *gin.Context, location, flash string) {
	if flash != "" {
		c.SetCookie(flashCookie, url.QueryEscape(flash), 60, "/", "", false, true)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// PopFlash returns and clears the pending flash message, if any.
func PopFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// Redisplay returns the form for re-rendering: the submitted values
// (secrets excluded), the per-field errors, and an overall message.
func Redisplay(c *gin.Context, status int, form *forms.Form, message string) {
	c.JSON(status, gin.H{
		"form":    form.Name,
		"message": message,
		"values":  form.Values(),
		"errors":  form.Errors,
	})
}

// JSON wraps plain data payloads for the read-only routes.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// Error reports a failure without form context.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
