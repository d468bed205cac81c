// Package handlers translates validated form input into repository
// mutations and session transitions. Each handler runs one form's
// validator chains, performs at most one mutation, and produces a
// redirect-or-redisplay outcome.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/agnesederberg/Final-project-2/internal/events"
	"github.com/agnesederberg/Final-project-2/internal/forms"
	"github.com/agnesederberg/Final-project-2/internal/repository"

	"github.com/gin-gonic/gin"
)

// AuditPublisher is what handlers need from the Kafka producer. A nil
// publisher disables auditing; publish failures never fail the request.
type AuditPublisher interface {
	PublishAuditEvent(ctx context.Context, event *events.AuditEvent) error
}

// tryAgainLater is the only message shown for storage-level failures;
// the underlying cause goes to the log, never to the user.
const tryAgainLater = "Please try again later."

// postedValues collects the raw field values of a submitted form.
func postedValues(c *gin.Context, names ...string) forms.Values {
	v := make(forms.Values, len(names))
	for _, name := range names {
		v[name] = strings.TrimSpace(c.PostForm(name))
	}
	return v
}

// failureStatus maps repository failures onto a redisplay status.
func failureStatus(err error) int {
	if errors.Is(err, repository.ErrConstraint) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// safeNext keeps post-login resumes on-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

func publishAudit(audit AuditPublisher, ctx context.Context, event *events.AuditEvent) {
	if audit == nil {
		return
	}
	// Best effort only; the producer logs its own failures.
	_ = audit.PublishAuditEvent(ctx, event)
}
