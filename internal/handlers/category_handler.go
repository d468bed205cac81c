package handlers

import (
	"net/http"

	"github.com/agnesederberg/Final-project-2/internal/repository"
	"github.com/agnesederberg/Final-project-2/pkg/logger"
	"github.com/agnesederberg/Final-project-2/pkg/responses"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	repo repository.Repository
}

func NewCategoryHandler(repo repository.Repository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// ListCategories returns all categories, used to populate the folder form.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.repo.ListCategories(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list categories")
		responses.Error(c, http.StatusInternalServerError, "Could not load categories. "+tryAgainLater)
		return
	}
	responses.JSON(c, http.StatusOK, categories)
}
